package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/poker"
)

type strategy string

const (
	strategyCheck strategy = "check"
	strategyRaise strategy = "raise"
)

func parseStrategy(s string) (strategy, error) {
	switch strategy(s) {
	case strategyCheck, strategyRaise:
		return strategy(s), nil
	}

	return "", fmt.Errorf("unknown strategy: %s", s)
}

type simulation struct {
	Rounds          int
	Seed            int64
	Strategy        strategy
	StartingBalance int
	Options         holdem.Options
}

type summary struct {
	Played     int
	Balance    int
	Results    map[string]int
	Hands      map[poker.Hand]int
	OutOfMoney bool
}

// run plays rounds until the requested number has been played or the participant is out of money
func (s simulation) run(logger logrus.FieldLogger) (*summary, error) {
	d := deck.New()
	d.SetSeed(s.Seed)

	game, err := holdem.NewGame(logger, holdem.NewParticipant(s.StartingBalance), d, s.Options)
	if err != nil {
		return nil, err
	}

	sum := &summary{
		Results: make(map[string]int),
		Hands:   make(map[poker.Hand]int),
	}

	for {
		for game.InBettingRound() {
			if err := s.act(game); err != nil {
				return nil, err
			}
		}

		state := game.GetGameState()
		sum.Played++
		sum.Results[state.Message]++

		ranking, err := poker.Evaluate(game.Participant().Cards().Combine(game.Community()))
		if err != nil {
			return nil, err
		}

		sum.Hands[ranking.Hand]++
		sum.Balance = game.Participant().Balance()

		if sum.Played >= s.Rounds {
			return sum, nil
		}

		if err := game.NextRound(); err != nil {
			if errors.Is(err, holdem.ErrOutOfMoney) {
				sum.OutOfMoney = true
				return sum, nil
			}

			return nil, err
		}
	}
}

func (s simulation) act(game *holdem.Game) error {
	if s.Strategy == strategyRaise && game.Bet() > 0 {
		err := game.Raise()
		if !errors.Is(err, holdem.ErrInsufficientFunds) {
			return err
		}
	}

	return game.Check()
}
