package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"holdem-server/internal/config"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/poker"
)

var (
	rounds       = flag.Int("rounds", 100, "the number of rounds to play")
	seed         = flag.Int64("seed", 1, "the seed used to shuffle the deck")
	strategyFlag = flag.String("strategy", "check", "the participant's strategy: check or raise")
	verbose      = flag.Bool("v", false, "log every round")
)

func main() {
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	strat, err := parseStrategy(*strategyFlag)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	cfg := config.Instance()
	sim := simulation{
		Rounds:          *rounds,
		Seed:            *seed,
		Strategy:        strat,
		StartingBalance: cfg.Game.StartingBalance,
		Options: holdem.Options{
			Ante:    cfg.Game.Ante,
			BetStep: cfg.Game.BetStep,
		},
	}

	sum, err := sim.run(logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}

	render(sim, sum)
}

func render(sim simulation, sum *summary) {
	pterm.DefaultSection.Printf("%d rounds, strategy %s, seed %d", sum.Played, sim.Strategy, sim.Seed)

	results := pterm.TableData{{"Result", "Rounds"}}
	for _, msg := range []string{"You Win!", "Tie Game", "You Lose"} {
		results = append(results, []string{msg, strconv.Itoa(sum.Results[msg])})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(results).Render(); err != nil {
		logrus.WithError(err).Error("could not render results")
	}

	hands := pterm.TableData{{"Hand", "Rounds"}}
	for h := poker.RoyalFlush; h >= poker.HighCard; h-- {
		hands = append(hands, []string{h.String(), strconv.Itoa(sum.Hands[h])})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(hands).Render(); err != nil {
		logrus.WithError(err).Error("could not render hands")
	}

	balance := pterm.Sprintf("Started with %d, finished with %d", sim.StartingBalance, sum.Balance)
	if sum.OutOfMoney {
		balance += pterm.LightRed(fmt.Sprintf("\nOut of money after %d rounds", sum.Played))
	}

	pterm.DefaultBox.WithTitle("Balance").Println(balance)
}
