package poker

import (
	"errors"
	"fmt"

	"holdem-server/pkg/deck"
)

// errors returned by the evaluator and comparator
var (
	ErrInvalidHandSize = errors.New("invalid hand size")
	ErrDuplicateCard   = errors.New("duplicate card")
	ErrUnknownCategory = errors.New("unknown category")
)

// hand size limits: two hole cards plus three to five community cards
const (
	MinHandSize = 5
	MaxHandSize = 7
)

// Hand is a poker hand category, i.e., royal flush
type Hand int

// Constants for hand
const (
	HighCard Hand = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// Ranking is the result of evaluating a set of cards
type Ranking struct {
	Hand Hand `json:"hand"`

	// HighCard is the best rank in the cards. It is only part of the label when Hand is HighCard
	HighCard int `json:"highCard"`
}

// String returns the category label
// A high card hand is labelled by its best rank (Ace, King, Queen, Jack, 2-10)
func (r Ranking) String() string {
	if r.Hand == HighCard {
		return deck.RankName(r.HighCard)
	}

	return r.Hand.String()
}

// Evaluate returns the best category the cards can make
func Evaluate(cards []deck.Card) (Ranking, error) {
	h, err := NewHandAnalyzer(cards)
	if err != nil {
		return Ranking{}, err
	}

	return h.GetRanking(), nil
}
