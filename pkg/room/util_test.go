package room

import (
	"github.com/sirupsen/logrus"
	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/holdem"
)

// the participant makes two pairs, the computer makes three of a kind
const dealLose = "10h,7h,11d,10c,7d,11s,4d,9d,11h"

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

func setupPitBoss(maxSessions int) *PitBoss {
	p, err := NewPitBoss(logrus.StandardLogger(), Options{
		Game:            holdem.DefaultOptions(),
		StartingBalance: 1000,
		MaxSessions:     maxSessions,
	})
	if err != nil {
		panic(err)
	}

	p.names = rng.Fixed{}
	p.SetDeckFactory(func() *deck.Deck {
		return stackedDeck(dealLose)
	})

	return p
}
