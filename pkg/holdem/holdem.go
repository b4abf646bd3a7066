package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

type result string

const (
	resultPending result = ""
	resultFolded  result = "folded"
	resultLost    result = "lost"
	resultWon     result = "won"
	resultTied    result = "tied"
)

// Game is a heads-up game of Texas Hold'em between a participant and the computer.
// The computer has no balance, it matches the ante and every raise.
// A Game is not safe for concurrent use.
type Game struct {
	options     Options
	logger      logrus.FieldLogger
	deck        *deck.Deck
	player      *Participant
	computer    deck.Hand
	community   deck.Hand
	dealerState DealerState
	round       int
	pot         int
	bet         int

	result       result
	playerHand   poker.Ranking
	computerHand poker.Ranking
}

// NewGame returns a new game and deals the first round
// If d is nil, a new deck is created. The game owns the deck from now on
func NewGame(logger logrus.FieldLogger, player *Participant, d *deck.Deck, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if player == nil {
		return nil, UserError("a participant is required")
	}

	if d == nil {
		d = deck.New()
	}

	g := &Game{
		options: opts,
		logger:  logger,
		deck:    d,
		player:  player,
	}

	if err := g.startRound(); err != nil {
		return nil, err
	}

	return g, nil
}

// startRound collects the ante, shuffles and deals the flop and the hole cards
func (g *Game) startRound() error {
	if g.player.Balance() < g.options.Ante {
		return fmt.Errorf("%w: balance %d, ante %d", ErrOutOfMoney, g.player.Balance(), g.options.Ante)
	}

	if err := g.player.Lose(g.options.Ante); err != nil {
		return err
	}

	g.round++
	g.pot = g.options.Ante * 2
	g.resetBet()
	g.result = resultPending
	g.playerHand = poker.Ranking{}
	g.computerHand = poker.Ranking{}
	g.deck.Shuffle()

	var err error
	if g.community, err = g.draw(3); err != nil {
		return err
	}

	if g.player.cards, err = g.draw(2); err != nil {
		return err
	}

	if g.computer, err = g.draw(2); err != nil {
		return err
	}

	g.dealerState = DealerStateFlopBettingRound
	g.logger.WithFields(logrus.Fields{
		"round":     g.round,
		"balance":   g.player.Balance(),
		"community": g.community.String(),
	}).Debug("dealt new round")

	return nil
}

func (g *Game) draw(n int) (deck.Hand, error) {
	if !g.deck.CanDraw(n) {
		return nil, fmt.Errorf("%w: %d cards already issued this round", deck.ErrInsufficientCards, g.deck.Issued())
	}

	cards, err := g.deck.Draw(n)
	if err != nil {
		return nil, err
	}

	return cards, nil
}

// resetBet sets the bet back to the default, or zero if the participant cannot afford it
func (g *Game) resetBet() {
	if g.player.Balance() >= g.options.BetStep {
		g.bet = g.options.BetStep
	} else {
		g.bet = 0
	}
}

// InBettingRound returns true if the participant still has to act
func (g *Game) InBettingRound() bool {
	return g.dealerState == DealerStateFlopBettingRound || g.dealerState == DealerStateTurnBettingRound
}

// Fold forfeits the pot
func (g *Game) Fold() error {
	if !g.InBettingRound() {
		return ErrRoundOver
	}

	g.result = resultFolded
	g.pot = 0
	g.dealerState = DealerStateRevealWinner

	g.logger.WithField("round", g.round).Info("participant folded")
	return nil
}

// Check deals the next card without betting
func (g *Game) Check() error {
	return g.advance(false)
}

// Raise pays the current bet, which the computer matches, then deals the next card
func (g *Game) Raise() error {
	return g.advance(true)
}

func (g *Game) advance(raise bool) error {
	if !g.InBettingRound() {
		return ErrRoundOver
	}

	if raise {
		if err := g.player.Lose(g.bet); err != nil {
			return err
		}

		g.pot += g.bet * 2
	}

	switch g.dealerState {
	case DealerStateFlopBettingRound:
		turn, err := g.draw(1)
		if err != nil {
			return err
		}

		g.community.AddCard(turn...)
		g.dealerState = DealerStateTurnBettingRound
		g.resetBet()
		return nil
	case DealerStateTurnBettingRound:
		river, err := g.draw(1)
		if err != nil {
			return err
		}

		g.community.AddCard(river...)
		return g.showdown()
	}

	return nil
}

// showdown compares both hands and pays the participant
func (g *Game) showdown() error {
	playerHand, err := bestHand(g.player.cards, g.community)
	if err != nil {
		return err
	}

	computerHand, err := bestHand(g.computer, g.community)
	if err != nil {
		return err
	}

	g.playerHand = playerHand
	g.computerHand = computerHand

	var winnings int
	switch poker.Compare(playerHand, computerHand) {
	case poker.Tie:
		g.result = resultTied
		winnings = g.pot / 2
	case poker.FirstWins:
		g.result = resultWon
		winnings = g.pot
	default:
		g.result = resultLost
	}

	if err := g.player.Win(winnings); err != nil {
		return err
	}

	g.logger.WithFields(logrus.Fields{
		"round":        g.round,
		"playerHand":   playerHand.String(),
		"computerHand": computerHand.String(),
		"result":       g.result,
		"pot":          g.pot,
		"winnings":     winnings,
	}).Info("showdown")

	g.pot = 0
	g.dealerState = DealerStateRevealWinner
	return nil
}

// IncreaseBet raises the bet by one step if the participant can afford it
func (g *Game) IncreaseBet() error {
	if !g.InBettingRound() {
		return ErrRoundOver
	}

	if g.player.Balance() < g.bet+g.options.BetStep {
		return fmt.Errorf("%w: balance %d, bet %d", ErrInsufficientFunds, g.player.Balance(), g.bet+g.options.BetStep)
	}

	g.bet += g.options.BetStep
	return nil
}

// DecreaseBet lowers the bet by one step, the bet cannot go below one step
func (g *Game) DecreaseBet() error {
	if !g.InBettingRound() {
		return ErrRoundOver
	}

	if g.bet-g.options.BetStep <= 0 {
		return UserError(fmt.Sprintf("bet cannot be lower than %d", g.options.BetStep))
	}

	g.bet -= g.options.BetStep
	return nil
}

// DoubleBet doubles the bet, or goes all in if the participant cannot afford double
func (g *Game) DoubleBet() error {
	if !g.InBettingRound() {
		return ErrRoundOver
	}

	if g.player.Balance() >= g.bet*2 {
		g.bet *= 2
	} else {
		g.bet = g.player.Balance()
	}

	return nil
}

// NextRound starts a new round once the winner has been revealed
func (g *Game) NextRound() error {
	if g.dealerState != DealerStateRevealWinner {
		return ErrRoundInProgress
	}

	return g.startRound()
}

// CanPlayAgain returns true if the participant can pay the next ante
func (g *Game) CanPlayAgain() bool {
	return g.player.Balance() >= g.options.Ante
}

// DealerState returns the state of the round
func (g *Game) DealerState() DealerState {
	return g.dealerState
}

// Round returns the round number, starting at one
func (g *Game) Round() int {
	return g.round
}

// Pot returns the cash in the pot
func (g *Game) Pot() int {
	return g.pot
}

// Bet returns the amount the next raise will cost
func (g *Game) Bet() int {
	return g.bet
}

// Community returns a copy of the community cards
func (g *Game) Community() deck.Hand {
	return g.community.Clone()
}

// Participant returns the participant
func (g *Game) Participant() *Participant {
	return g.player
}

// Message returns the result as shown to the participant
func (g *Game) Message() string {
	switch g.result {
	case resultWon:
		return "You Win!"
	case resultTied:
		return "Tie Game"
	case resultLost, resultFolded:
		return "You Lose"
	}

	return ""
}
