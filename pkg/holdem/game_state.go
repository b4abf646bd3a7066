package holdem

import "holdem-server/pkg/deck"

type cardJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func cardsJSON(cards deck.Hand) []cardJSON {
	c := make([]cardJSON, len(cards))
	for i, card := range cards {
		c[i] = cardJSON{
			ID:   int(card),
			Name: card.String(),
		}
	}

	return c
}

// GameState is the state of the game as seen by the participant
// The computer's cards are only included once they have been revealed at showdown
type GameState struct {
	Round         int         `json:"round"`
	DealerState   DealerState `json:"dealerState"`
	Balance       int         `json:"balance"`
	Pot           int         `json:"pot"`
	Bet           int         `json:"bet"`
	Community     []cardJSON  `json:"community"`
	Cards         []cardJSON  `json:"cards"`
	Hand          string      `json:"hand"`
	ComputerCards []cardJSON  `json:"computerCards"`
	ComputerHand  string      `json:"computerHand"`
	Result        string      `json:"result"`
	Message       string      `json:"message"`
	Actions       []Action    `json:"actions"`
}

// GetGameState returns the state of the game
func (g *Game) GetGameState() *GameState {
	state := &GameState{
		Round:       g.round,
		DealerState: g.dealerState,
		Balance:     g.player.Balance(),
		Pot:         g.pot,
		Bet:         g.bet,
		Community:   cardsJSON(g.community),
		Cards:       cardsJSON(g.player.cards),
		Result:      string(g.result),
		Message:     g.Message(),
		Actions:     g.availableActions(),
	}

	if g.result == resultPending {
		if r, err := bestHand(g.player.cards, g.community); err == nil {
			state.Hand = r.String()
		}
	} else if g.result != resultFolded {
		state.Hand = g.playerHand.String()
		state.ComputerCards = cardsJSON(g.computer)
		state.ComputerHand = g.computerHand.String()
	}

	return state
}

func (g *Game) availableActions() []Action {
	if g.InBettingRound() {
		return []Action{ActionFold, ActionCheck, ActionRaise, ActionIncrease, ActionDecrease, ActionDouble}
	}

	if g.CanPlayAgain() {
		return []Action{ActionNext}
	}

	return []Action{}
}
