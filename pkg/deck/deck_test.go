package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/internal/rng"
)

const unshuffledHash = "9d95122fefc6df8e01bb2a5889d125c7be424b45"

func assertPermutation(t *testing.T, cards []Card) {
	t.Helper()

	assert.Equal(t, NumCards, len(cards))
	_, dupe := Hand(cards).FirstDuplicate()
	assert.False(t, dupe)
	for _, c := range cards {
		assert.True(t, c.Valid())
	}
}

func TestNewDeck(t *testing.T) {
	deck := New()

	cards := deck.Cards()
	assertPermutation(t, cards)
	assert.Equal(t, Card(0), cards[0])
	assert.Equal(t, Card(51), cards[51])
	assert.Equal(t, unshuffledHash, deck.HashCode())

	deck.SetSeed(1)
	deck.Shuffle()
	assertPermutation(t, deck.Cards())

	shuffled := deck.HashCode()
	assert.NotEqual(t, unshuffledHash, shuffled)

	deck.Shuffle()
	assert.NotEqual(t, shuffled, deck.HashCode())
}

func TestDeck_ShuffleIsDeterministicWithSeed(t *testing.T) {
	d1 := New()
	d1.SetSeed(99)
	d1.Shuffle()

	d2 := New()
	d2.SetSeed(99)
	d2.Shuffle()

	assert.Equal(t, d1.Cards(), d2.Cards())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	deck := New()
	deck.SetSeed(7)
	deck.Shuffle()

	a.True(deck.CanDraw(52))
	a.False(deck.CanDraw(53))

	seen := make(map[Card]bool)
	for i := 0; i < 13; i++ {
		cards, err := deck.Draw(4)
		a.NoError(err)
		a.Len(cards, 4)

		for _, c := range cards {
			a.False(seen[c], "card %s drawn twice in one cycle", c)
			seen[c] = true
		}
	}

	a.Len(seen, 52)
	a.Equal(52, deck.Issued())
	a.False(deck.CanDraw(1))

	// the deck is circular, so the next draw repeats the first card of the cycle
	first := deck.Cards()[0]
	cards, err := deck.Draw(1)
	a.NoError(err)
	a.Equal(first, cards[0])

	deck.Shuffle()
	a.Equal(0, deck.Issued())
	a.True(deck.CanDraw(52))
}

func TestDeck_DrawAll(t *testing.T) {
	deck := New()
	deck.Shuffle()

	cards, err := deck.Draw(52)
	assert.NoError(t, err)
	assertPermutation(t, cards)

	// the full population is still there
	assertPermutation(t, deck.Cards())
}

func TestDeck_DrawErrors(t *testing.T) {
	a := assert.New(t)
	deck := New()

	cards, err := deck.Draw(53)
	a.Nil(cards)
	a.True(errors.Is(err, ErrInsufficientCards))
	a.EqualError(err, "cannot draw more cards than in existence: requested 53")

	_, err = deck.Draw(-1)
	a.True(errors.Is(err, ErrInsufficientCards))

	cards, err = deck.Draw(0)
	a.NoError(err)
	a.Len(cards, 0)
}

func TestDeck_DrawRotates(t *testing.T) {
	a := assert.New(t)
	deck := New()

	cards, err := deck.Draw(3)
	a.NoError(err)
	a.Equal([]Card{0, 1, 2}, cards)

	order := deck.Cards()
	a.Equal(Card(3), order[0])
	a.Equal([]Card{0, 1, 2}, order[49:])
	a.Equal("9931dc170526516caf4750e1448adee4e233f4e6", deck.HashCode())
}

func TestNewFromCards(t *testing.T) {
	a := assert.New(t)

	order := make([]Card, 52)
	for i := range order {
		order[i] = Card(51 - i)
	}

	d, err := NewFromCards(order)
	a.NoError(err)
	a.Equal(order, d.Cards())

	// a fixed generator keeps a stacked deck in place
	d.SetGenerator(rng.Fixed{})
	d.Shuffle()
	a.Equal(order, d.Cards())

	_, err = NewFromCards(order[1:])
	a.EqualError(err, "card out of range: deck must contain 52 cards, got 51")

	order[0] = 0
	_, err = NewFromCards(order)
	a.EqualError(err, "duplicate card in deck: A♣")

	order[0] = 52
	_, err = NewFromCards(order)
	a.True(errors.Is(err, ErrOutOfRange))
}
