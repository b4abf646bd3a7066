package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"holdem-server/internal/rng"
)

// ErrInsufficientCards is returned when more cards are requested than the deck holds
var ErrInsufficientCards = errors.New("cannot draw more cards than in existence")

// Deck is a circular buffer of the 52 card identifiers.
// Drawn cards are moved to the back of the buffer, so the deck never runs out, but
// a card repeats once all 52 have been issued since the last shuffle. Callers
// must not draw more than 52 cards between two shuffles if cards must be unique.
type Deck struct {
	cards  []Card
	head   int
	issued int
	rng    rng.Generator
}

// New returns a new deck of cards in identifier order (0..51).
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]Card, NumCards)
	for i := range cards {
		cards[i] = Card(i)
	}

	return &Deck{
		cards: cards,
		rng:   rng.Crypto{},
	}
}

// NewFromCards returns a deck in the specified order
// The cards must be a permutation of the 52 identifiers. This is mostly useful for tests
func NewFromCards(cards []Card) (*Deck, error) {
	if len(cards) != NumCards {
		return nil, fmt.Errorf("%w: deck must contain %d cards, got %d", ErrOutOfRange, NumCards, len(cards))
	}

	var seen [NumCards]bool
	for _, card := range cards {
		if !card.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrOutOfRange, int(card))
		}

		if seen[card] {
			return nil, fmt.Errorf("duplicate card in deck: %s", card)
		}

		seen[card] = true
	}

	d := New()
	copy(d.cards, cards)
	return d, nil
}

// SetGenerator replaces the random number generator used by Shuffle()
func (d *Deck) SetGenerator(g rng.Generator) {
	d.rng = g
}

// SetSeed will shuffle with a deterministic generator from now on
// This should only be used by tests and simulations
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.NewSeeded(seed)
}

// Shuffle performs an in-place Fisher-Yates shuffle of the full deck
// Any ordering handed out by a previous Draw() is no longer meaningful afterwards
func (d *Deck) Shuffle() {
	d.rotate()

	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	d.issued = 0
}

// Draw returns the next n cards and moves them to the back of the deck
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d", ErrInsufficientCards, n)
	}

	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		cards[i] = d.cards[d.head]
		d.head = (d.head + 1) % len(d.cards)
	}

	d.issued += n
	return cards, nil
}

// CanDraw returns true if {want} cards can be drawn without repeating a card issued
// since the last shuffle
func (d *Deck) CanDraw(want int) bool {
	return want >= 0 && d.issued+want <= len(d.cards)
}

// Issued returns the number of cards drawn since the last shuffle
func (d *Deck) Issued() int {
	return d.issued
}

// Cards returns a copy of the deck in the order cards will be drawn
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	for i := range cards {
		cards[i] = d.cards[(d.head+i)%len(d.cards)]
	}

	return cards
}

// HashCode returns a SHA1 hash code of the draw order
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards() {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// rotate normalizes the buffer so the head is at index 0
func (d *Deck) rotate() {
	if d.head == 0 {
		return
	}

	d.cards = d.Cards()
	d.head = 0
}
