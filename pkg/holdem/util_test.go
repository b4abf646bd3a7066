package holdem

import (
	"github.com/sirupsen/logrus"
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
)

// the deal order is: flop (3), participant (2), computer (2), turn, river
const (
	// participant makes two pairs, the computer makes three of a kind
	dealLose = "10h,7h,11d,10c,7d,11s,4d,9d,11h"
	dealWin  = "10h,7h,11d,11s,4d,10c,7d,9d,11h"

	// both sides make a pair
	dealTie = "2c,5d,9h,2d,13c,2h,12c,7s,3c"
)

// stackedDeck returns a deck that deals the specified cards first, shuffling does not change the order
func stackedDeck(cards string) *deck.Deck {
	top := deck.Hand(deck.CardsFromString(cards))
	order := make([]deck.Card, 0, deck.NumCards)
	order = append(order, top...)
	for id := 0; id < deck.NumCards; id++ {
		if !top.HasCard(deck.Card(id)) {
			order = append(order, deck.Card(id))
		}
	}

	d, err := deck.NewFromCards(order)
	if err != nil {
		panic(err)
	}

	d.SetGenerator(rng.Fixed{})
	return d
}

func setupGame(balance int, cards string) *Game {
	game, err := NewGame(logrus.StandardLogger(), NewParticipant(balance), stackedDeck(cards), DefaultOptions())
	if err != nil {
		panic(err)
	}

	return game
}
