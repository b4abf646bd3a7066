package holdem

import "errors"

// Options configures the stakes of a heads-up game
type Options struct {
	// Ante is paid by both sides at the start of every round
	Ante int `json:"ante"`

	// BetStep is the default bet and the increment of IncreaseBet() and DecreaseBet()
	BetStep int `json:"betStep"`
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Ante:    20,
		BetStep: 10,
	}
}

func validateOptions(opts Options) error {
	if opts.Ante <= 0 {
		return errors.New("ante must be > 0")
	}

	if opts.BetStep <= 0 {
		return errors.New("bet step must be > 0")
	}

	return nil
}
