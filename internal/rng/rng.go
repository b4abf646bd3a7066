package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// NewSeeded returns a deterministic generator
// This should only be used by tests and simulations. Live sessions use Crypto
func NewSeeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Fixed is a Generator that always picks the highest index it is allowed to.
// A Fisher-Yates shuffle driven by Fixed leaves the order untouched, which lets
// tests stack a deck.
type Fixed struct{}

// Intn returns n-1
func (Fixed) Intn(n int) int {
	return n - 1
}
