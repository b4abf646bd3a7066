package holdem

import (
	"fmt"
	"strings"
)

// Action is something the player can do during a round
type Action string

// actions
const (
	ActionFold     Action = "fold"
	ActionCheck    Action = "check"
	ActionRaise    Action = "raise"
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
	ActionDouble   Action = "double"
	ActionNext     Action = "next"
)

var validActions = map[Action]bool{
	ActionFold:     true,
	ActionCheck:    true,
	ActionRaise:    true,
	ActionIncrease: true,
	ActionDecrease: true,
	ActionDouble:   true,
	ActionNext:     true,
}

// ActionFromString returns the action with the specified name
func ActionFromString(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	if !validActions[a] {
		return "", UserError(fmt.Sprintf("%s is not a valid action", name))
	}

	return a, nil
}

// Action performs the action on the game
func (g *Game) Action(a Action) error {
	switch a {
	case ActionFold:
		return g.Fold()
	case ActionCheck:
		return g.Check()
	case ActionRaise:
		return g.Raise()
	case ActionIncrease:
		return g.IncreaseBet()
	case ActionDecrease:
		return g.DecreaseBet()
	case ActionDouble:
		return g.DoubleBet()
	case ActionNext:
		return g.NextRound()
	}

	return UserError(fmt.Sprintf("%s is not a valid action", a))
}
