package holdem

import (
	"fmt"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

// Participant is the person playing against the computer
type Participant struct {
	balance int
	cards   deck.Hand
}

// NewParticipant returns a participant with the specified starting balance
func NewParticipant(balance int) *Participant {
	return &Participant{
		balance: balance,
		cards:   make(deck.Hand, 0, 2),
	}
}

// Balance returns the cash the participant has
func (p *Participant) Balance() int {
	return p.balance
}

// Win adds the amount won to the balance
func (p *Participant) Win(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: cannot win %d", ErrNegativeAmount, amount)
	}

	p.balance += amount
	return nil
}

// Lose subtracts the amount from the balance
func (p *Participant) Lose(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: cannot lose %d", ErrNegativeAmount, amount)
	}

	if p.balance-amount < 0 {
		return fmt.Errorf("%w: balance %d, owes %d", ErrInsufficientFunds, p.balance, amount)
	}

	p.balance -= amount
	return nil
}

// Cards returns a copy of the participant's hole cards
func (p *Participant) Cards() deck.Hand {
	return p.cards.Clone()
}

// bestHand evaluates the hole cards together with the community cards
func bestHand(hole, community deck.Hand) (poker.Ranking, error) {
	return poker.Evaluate(hole.Combine(community))
}
