package holdem

import "errors"

// errors returned by the game
var (
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrInsufficientFunds = errors.New("not enough cash to pay")
	ErrRoundOver         = errors.New("the round is over")
	ErrRoundInProgress   = errors.New("the round is still in progress")
	ErrOutOfMoney        = errors.New("not enough cash to pay the ante")
)

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}
