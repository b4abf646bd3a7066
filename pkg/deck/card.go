package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrOutOfRange is returned when a card identifier, rank or suit is outside its domain
var ErrOutOfRange = errors.New("card out of range")

// Card is a playing card identifier in [0, 52).
// The rank is id / 4 and the suit is id % 4.
type Card int

// NumCards is the number of cards in a standard deck
const NumCards = 52

// ranks are 0-indexed, Ace is the lowest index
const (
	Ace = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King

	NumRanks = 13
)

// suit constants
const (
	Clubs = iota
	Diamonds
	Hearts
	Spades

	NumSuits = 4
)

var suitSymbols = [NumSuits]string{"♣", "♢", "♡", "♠"}
var suitLetters = [NumSuits]string{"c", "d", "h", "s"}

// RankOf returns the rank of the card identifier
func RankOf(id int) (int, error) {
	if id < 0 || id >= NumCards {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, id)
	}

	return id / NumSuits, nil
}

// SuitOf returns the suit of the card identifier
func SuitOf(id int) (int, error) {
	if id < 0 || id >= NumCards {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, id)
	}

	return id % NumSuits, nil
}

// NewCard returns the card with the specified rank and suit
func NewCard(rank, suit int) (Card, error) {
	if rank < 0 || rank >= NumRanks {
		return 0, fmt.Errorf("%w: rank %d", ErrOutOfRange, rank)
	}

	if suit < 0 || suit >= NumSuits {
		return 0, fmt.Errorf("%w: suit %d", ErrOutOfRange, suit)
	}

	return Card(rank*NumSuits + suit), nil
}

// Valid returns true if the identifier is within [0, 52)
func (c Card) Valid() bool {
	return c >= 0 && c < NumCards
}

// Rank returns the 0-indexed rank (Ace = 0, King = 12)
// The caller is responsible for checking Valid() first
func (c Card) Rank() int {
	return int(c) / NumSuits
}

// Suit returns the suit of the card
func (c Card) Suit() int {
	return int(c) % NumSuits
}

// RankName returns the display name of a rank: Ace, King, Queen, Jack, or 2-10
func RankName(rank int) string {
	switch rank {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return strconv.Itoa(rank + 1)
	}
}

func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", int(c))
	}

	var rank string
	switch c.Rank() {
	case Ace:
		rank = "A"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	default:
		rank = strconv.Itoa(c.Rank() + 1)
	}

	return rank + suitSymbols[c.Suit()]
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-4])([cdhs])\z`)

// ParseCard parses a card in the format of <rank><suit>
// The rank is 1-14 where both 1 and 14 represent an Ace, and the suit is one of [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return 0, fmt.Errorf("could not parse card: %q", s)
	}

	rank, _ := strconv.Atoi(match[1])
	if rank == 14 {
		rank = 1
	}

	suit := strings.Index("cdhs", strings.ToLower(match[2]))

	return NewCard(rank-1, suit)
}

// ParseCards parses a comma-separated list of cards
func ParseCards(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		card, err := ParseCard(part)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString is like ParseCard, but it panics if the card cannot be parsed
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// CardsFromString will return a slice of cards, i.e., "14s,13s,12s"
// It panics if a card cannot be parsed
func CardsFromString(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err.Error())
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(c Card) string {
	rank := c.Rank() + 1
	if c.Rank() == Ace {
		rank = 14
	}

	return fmt.Sprintf("%d%s", rank, suitLetters[c.Suit()])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
