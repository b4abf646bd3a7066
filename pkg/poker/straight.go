package poker

import (
	"sort"

	"holdem-server/pkg/deck"
)

// straightLength is the number of consecutive ranks needed
const straightLength = 5

// aceHighValue orders ranks for straights. The Ace only plays above the King,
// so A-2-3-4-5 never forms a straight while 10-J-Q-K-A does.
func aceHighValue(rank int) int {
	if rank == deck.Ace {
		return deck.King + 1
	}

	return rank
}

// hasStraight returns true if the cards contain five consecutive ranks
func hasStraight(cards deck.Hand) bool {
	var present [deck.NumRanks + 1]bool
	values := make([]int, 0, len(cards))
	for _, card := range cards {
		v := aceHighValue(card.Rank())
		if !present[v] {
			present[v] = true
			values = append(values, v)
		}
	}

	sort.Ints(values)
	for i := 0; i+straightLength-1 < len(values); i++ {
		// values are distinct, so the run is consecutive if it spans exactly four steps
		if values[i+straightLength-1]-values[i] == straightLength-1 {
			return true
		}
	}

	return false
}
