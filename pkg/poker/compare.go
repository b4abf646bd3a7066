package poker

import (
	"encoding/json"
	"fmt"

	"holdem-server/pkg/deck"
)

// Outcome is the verdict of comparing two rankings
type Outcome int

// Outcome constants
const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalJSON encodes the outcome as its name
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// labels from lowest to highest
// High card labels come first, one per rank, followed by the other categories
var rankingLabels = []string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace",
	"Pair", "Two Pairs", "Three of a Kind", "Straight", "Flush", "Full House",
	"Four of a Kind", "Straight Flush", "Royal Flush",
}

var rankingByLabel = buildRankingIndex()

func buildRankingIndex() map[string]Ranking {
	index := make(map[string]Ranking, len(rankingLabels))
	for rank := 0; rank < deck.NumRanks; rank++ {
		index[deck.RankName(rank)] = Ranking{Hand: HighCard, HighCard: rank}
	}

	for h := Pair; h <= RoyalFlush; h++ {
		index[h.String()] = Ranking{Hand: h}
	}

	if len(index) != len(rankingLabels) {
		panic("ranking labels are out of sync with the hand categories")
	}

	return index
}

// ParseRanking returns the ranking for a category label such as "Two Pairs" or "Queen"
func ParseRanking(label string) (Ranking, error) {
	r, ok := rankingByLabel[label]
	if !ok {
		return Ranking{}, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}

	return r, nil
}

// Compare decides which ranking wins
// Only the category is compared. Two hands of the same category tie, which includes
// two high card hands with different high cards.
func Compare(first, second Ranking) Outcome {
	switch {
	case first.Hand > second.Hand:
		return FirstWins
	case first.Hand < second.Hand:
		return SecondWins
	default:
		return Tie
	}
}

// CompareLabels is like Compare, but operates on category labels
func CompareLabels(first, second string) (Outcome, error) {
	r1, err := ParseRanking(first)
	if err != nil {
		return Tie, err
	}

	r2, err := ParseRanking(second)
	if err != nil {
		return Tie, err
	}

	return Compare(r1, r2), nil
}

// Labels returns every category label from lowest to highest
func Labels() []string {
	labels := make([]string, len(rankingLabels))
	copy(labels, rankingLabels)

	return labels
}
