package poker

import (
	"fmt"

	"holdem-server/pkg/deck"
)

// ranks from best to worst, the Ace is high outside of straights too
var ranksHighToLow = [deck.NumRanks]int{
	deck.Ace, deck.King, deck.Queen, deck.Jack, deck.Ten, deck.Nine, deck.Eight,
	deck.Seven, deck.Six, deck.Five, deck.Four, deck.Three, deck.Two,
}

var royalRanks = [...]int{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace}

// HandAnalyzer can analyze a hand of five to seven cards
type HandAnalyzer struct {
	cards      deck.Hand
	rankCounts [deck.NumRanks]int
	suitCounts [deck.NumSuits]int

	ranking Ranking
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The cards are copied, the caller's slice is never retained
func NewHandAnalyzer(cards []deck.Card) (*HandAnalyzer, error) {
	if n := len(cards); n < MinHandSize || n > MaxHandSize {
		return nil, fmt.Errorf("%w: expected %d to %d cards, got %d", ErrInvalidHandSize, MinHandSize, MaxHandSize, n)
	}

	for _, card := range cards {
		if !card.Valid() {
			return nil, fmt.Errorf("%w: %d", deck.ErrOutOfRange, int(card))
		}
	}

	hand := deck.Hand(cards).Clone()
	if card, dupe := hand.FirstDuplicate(); dupe {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
	}

	h := &HandAnalyzer{
		cards: hand,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h, nil
}

// analyzeHand tallies the cards per rank and per suit
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	for _, card := range h.cards {
		h.rankCounts[card.Rank()]++
		h.suitCounts[card.Suit()]++
	}
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.ranking.Hand
}

// GetRanking returns the hand along with the high card
func (h *HandAnalyzer) GetRanking() Ranking {
	return h.ranking
}

// GetRoyalFlush will return true if a single suit holds 10, J, Q, K and A
func (h *HandAnalyzer) GetRoyalFlush() bool {
	var royalSuitCounts [deck.NumSuits]int
	for _, card := range h.cards {
		for _, rank := range royalRanks {
			if card.Rank() == rank {
				royalSuitCounts[card.Suit()]++
				break
			}
		}
	}

	for _, count := range royalSuitCounts {
		if count == len(royalRanks) {
			return true
		}
	}

	return false
}

// GetStraightFlush will return true if the most common suit forms a straight
func (h *HandAnalyzer) GetStraightFlush() bool {
	suit := 0
	for s, count := range h.suitCounts {
		if count > h.suitCounts[suit] {
			suit = s
		}
	}

	if h.suitCounts[suit] < straightLength {
		return false
	}

	suited := make(deck.Hand, 0, h.suitCounts[suit])
	for _, card := range h.cards {
		if card.Suit() == suit {
			suited = append(suited, card)
		}
	}

	return hasStraight(suited)
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	return h.bestRankWithCount(4)
}

// GetFullHouse will return the rank of the three of a kind and the pair, if possible
// Only an exact pair completes the full house. Two sets of three of a kind do not.
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	trips, ok := h.bestRankWithCount(3)
	if !ok {
		return nil, false
	}

	pair, ok := h.bestRankWithCount(2)
	if !ok {
		return nil, false
	}

	return []int{trips, pair}, true
}

// GetFlush will return the suit of the flush, if possible
func (h *HandAnalyzer) GetFlush() (int, bool) {
	for suit, count := range h.suitCounts {
		if count >= straightLength {
			return suit, true
		}
	}

	return 0, false
}

// GetStraight will return true if the cards contain a straight, regardless of suit
func (h *HandAnalyzer) GetStraight() bool {
	return hasStraight(h.cards)
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	return h.bestRankWithCount(3)
}

// GetTwoPair will return the best two pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	pairs := h.ranksWithCount(2)
	if len(pairs) >= 2 {
		return pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	return h.bestRankWithCount(2)
}

// GetHighCard will return the high card
func (h *HandAnalyzer) GetHighCard() int {
	for _, rank := range ranksHighToLow {
		if h.rankCounts[rank] > 0 {
			return rank
		}
	}

	// unreachable, a hand always has at least five cards
	panic("no cards to analyze")
}

// ranksWithCount returns every rank held exactly {count} times, best first
func (h *HandAnalyzer) ranksWithCount(count int) []int {
	ranks := make([]int, 0, 1)
	for _, rank := range ranksHighToLow {
		if h.rankCounts[rank] == count {
			ranks = append(ranks, rank)
		}
	}

	return ranks
}

func (h *HandAnalyzer) bestRankWithCount(count int) (int, bool) {
	for _, rank := range ranksHighToLow {
		if h.rankCounts[rank] == count {
			return rank, true
		}
	}

	return 0, false
}

// calculateHand will determine the best hand
// The categories are checked from best to worst and the first match wins
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	h.ranking.HighCard = h.GetHighCard()

	if h.GetRoyalFlush() {
		h.ranking.Hand = RoyalFlush
	} else if h.GetStraightFlush() {
		h.ranking.Hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.ranking.Hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.ranking.Hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.ranking.Hand = Flush
	} else if h.GetStraight() {
		h.ranking.Hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.ranking.Hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.ranking.Hand = TwoPairs
	} else if _, ok := h.GetPair(); ok {
		h.ranking.Hand = Pair
	} else {
		h.ranking.Hand = HighCard
	}
}
