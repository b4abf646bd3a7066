package deck

import "sort"

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i] < h[j]
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds cards to the hand
func (h *Hand) AddCard(cards ...Card) {
	*h = append(*h, cards...)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// FirstDuplicate returns the first card that appears more than once
func (h Hand) FirstDuplicate() (Card, bool) {
	var seen [NumCards]bool
	for _, c := range h {
		if !c.Valid() {
			continue
		}

		if seen[c] {
			return c, true
		}

		seen[c] = true
	}

	return 0, false
}

// Combine returns a new hand with the cards of both hands
// Neither hand is modified
func (h Hand) Combine(other Hand) Hand {
	combined := make(Hand, 0, len(h)+len(other))
	combined = append(combined, h...)
	return append(combined, other...)
}

// Sorted returns a sorted copy of the hand
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Sort(h2)

	return h2
}

// Strings returns the display string of each card, i.e., ["A♠", "10♡"]
func (h Hand) Strings() []string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.String()
	}

	return s
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
