package holdem

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	game := setupGame(1000, dealLose)
	a.Equal(1, game.Round())
	a.Equal(980, game.Participant().Balance())
	a.Equal(40, game.Pot())
	a.Equal(10, game.Bet())
	a.Equal(DealerStateFlopBettingRound, game.DealerState())
	a.Equal("10h,7h,11d", game.Community().String())
	a.Equal("10c,7d", game.Participant().Cards().String())
	a.Equal("11s,4d", game.computer.String())
	a.Equal("", game.Message())
}

func TestNewGame_errors(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), NewParticipant(10), nil, DefaultOptions())
	a.Nil(game)
	a.True(errors.Is(err, ErrOutOfMoney))
	a.EqualError(err, "not enough cash to pay the ante: balance 10, ante 20")

	_, err = NewGame(logrus.StandardLogger(), NewParticipant(100), nil, Options{Ante: 0, BetStep: 10})
	a.EqualError(err, "ante must be > 0")

	_, err = NewGame(logrus.StandardLogger(), NewParticipant(100), nil, Options{Ante: 20, BetStep: 0})
	a.EqualError(err, "bet step must be > 0")

	_, err = NewGame(logrus.StandardLogger(), nil, nil, DefaultOptions())
	a.EqualError(err, "a participant is required")
}

func TestNewGame_shufflesDeck(t *testing.T) {
	game, err := NewGame(logrus.StandardLogger(), NewParticipant(1000), nil, DefaultOptions())
	assert.NoError(t, err)
	assert.NotEqual(t, deck.New().HashCode(), game.deck.HashCode())
	assert.Equal(t, 7, game.deck.Issued())
}

func TestGame_checkAndLose(t *testing.T) {
	a := assert.New(t)
	game := setupGame(1000, dealLose)

	a.NoError(game.Check())
	a.Equal(DealerStateTurnBettingRound, game.DealerState())
	a.Equal("10h,7h,11d,9d", game.Community().String())
	a.Equal(40, game.Pot())

	a.NoError(game.Check())
	a.Equal(DealerStateRevealWinner, game.DealerState())
	a.Equal("10h,7h,11d,9d,11h", game.Community().String())
	a.Equal(0, game.Pot())
	a.Equal(980, game.Participant().Balance())
	a.Equal("You Lose", game.Message())
	a.Equal(poker.TwoPairs, game.playerHand.Hand)
	a.Equal(poker.ThreeOfAKind, game.computerHand.Hand)
	a.Equal(resultLost, game.result)
}

func TestGame_raiseAndWin(t *testing.T) {
	a := assert.New(t)
	game := setupGame(1000, dealWin)

	a.NoError(game.Raise())
	a.Equal(970, game.Participant().Balance())
	a.Equal(60, game.Pot())
	a.Equal(10, game.Bet(), "bet is reset after the turn is dealt")

	a.NoError(game.IncreaseBet())
	a.NoError(game.Raise())
	a.Equal(DealerStateRevealWinner, game.DealerState())
	a.Equal(0, game.Pot())

	// 950 after the second raise, plus the pot of 100
	a.Equal(1050, game.Participant().Balance())
	a.Equal("You Win!", game.Message())
	a.Equal(resultWon, game.result)
}

func TestGame_tieSplitsPot(t *testing.T) {
	a := assert.New(t)
	game := setupGame(1000, dealTie)

	a.NoError(game.Check())
	a.NoError(game.Check())
	a.Equal(poker.Pair, game.playerHand.Hand)
	a.Equal(poker.Pair, game.computerHand.Hand)
	a.Equal("Tie Game", game.Message())

	// ante of 20 back from the pot of 40
	a.Equal(1000, game.Participant().Balance())
}

func TestGame_Fold(t *testing.T) {
	a := assert.New(t)
	game := setupGame(1000, dealWin)

	a.NoError(game.Raise())
	a.NoError(game.Fold())
	a.Equal(DealerStateRevealWinner, game.DealerState())
	a.Equal(0, game.Pot())
	a.Equal(970, game.Participant().Balance())
	a.Equal("You Lose", game.Message())
	a.Equal(resultFolded, game.result)

	a.Equal(ErrRoundOver, game.Fold())
	a.Equal(ErrRoundOver, game.Check())
	a.Equal(ErrRoundOver, game.Raise())
	a.Equal(ErrRoundOver, game.IncreaseBet())
	a.Equal(ErrRoundOver, game.DecreaseBet())
	a.Equal(ErrRoundOver, game.DoubleBet())
}

func TestGame_betAdjustments(t *testing.T) {
	a := assert.New(t)
	game := setupGame(1000, dealWin)

	a.NoError(game.IncreaseBet())
	a.Equal(20, game.Bet())
	a.NoError(game.DoubleBet())
	a.Equal(40, game.Bet())
	a.NoError(game.DecreaseBet())
	a.Equal(30, game.Bet())
	a.NoError(game.DecreaseBet())
	a.NoError(game.DecreaseBet())
	a.Equal(10, game.Bet())

	err := game.DecreaseBet()
	a.EqualError(err, "bet cannot be lower than 10")
	var ue UserError
	a.True(errors.As(err, &ue))
	a.Equal(10, game.Bet())
}

func TestGame_betIsCappedByBalance(t *testing.T) {
	a := assert.New(t)

	// 25 left after the ante
	game := setupGame(45, dealWin)
	a.Equal(25, game.Participant().Balance())
	a.Equal(10, game.Bet())

	a.NoError(game.DoubleBet())
	a.Equal(20, game.Bet())

	// cannot afford 40, so all in
	a.NoError(game.DoubleBet())
	a.Equal(25, game.Bet())

	err := game.IncreaseBet()
	a.True(errors.Is(err, ErrInsufficientFunds))
	a.Equal(25, game.Bet())

	a.NoError(game.Raise())
	a.Equal(0, game.Participant().Balance())
	a.Equal(90, game.Pot())
	a.Equal(0, game.Bet(), "no default bet when the balance is empty")

	a.NoError(game.Check())
	a.Equal(90, game.Participant().Balance())
}

func TestGame_NextRound(t *testing.T) {
	a := assert.New(t)
	game := setupGame(1000, dealLose)

	a.Equal(ErrRoundInProgress, game.NextRound())

	a.NoError(game.Check())
	a.NoError(game.Check())
	a.NoError(game.NextRound())

	a.Equal(2, game.Round())
	a.Equal(960, game.Participant().Balance())
	a.Equal(40, game.Pot())
	a.Equal(DealerStateFlopBettingRound, game.DealerState())
	a.Equal("", game.Message())

	a.NoError(game.Check())
	a.NoError(game.Check())

	// nine distinct cards were dealt in the round
	dealt := game.Community().Combine(game.Participant().Cards()).Combine(game.computer)
	a.Len(dealt, 9)
	_, dupe := dealt.FirstDuplicate()
	a.False(dupe)
	for _, c := range deck.CardsFromString(dealLose) {
		a.False(dealt.HasCard(c), "cards of the previous round are not dealt again")
	}
}

func TestGame_outOfMoney(t *testing.T) {
	a := assert.New(t)
	game := setupGame(20, dealLose)
	a.Equal(0, game.Participant().Balance())
	a.Equal(0, game.Bet())

	a.NoError(game.Fold())
	a.False(game.CanPlayAgain())

	err := game.NextRound()
	a.True(errors.Is(err, ErrOutOfMoney))
	a.Equal(DealerStateRevealWinner, game.DealerState())
	a.Equal(1, game.Round())
}

func TestGame_Action(t *testing.T) {
	a := assert.New(t)
	game := setupGame(1000, dealWin)

	a.NoError(game.Action(ActionIncrease))
	a.Equal(20, game.Bet())
	a.NoError(game.Action(ActionRaise))
	a.Equal(DealerStateTurnBettingRound, game.DealerState())
	a.NoError(game.Action(ActionCheck))
	a.NoError(game.Action(ActionNext))
	a.Equal(2, game.Round())
	a.NoError(game.Action(ActionFold))

	a.EqualError(game.Action(Action("bluff")), "bluff is not a valid action")
}

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	action, err := ActionFromString(" Raise ")
	a.NoError(err)
	a.Equal(ActionRaise, action)

	_, err = ActionFromString("all-in")
	a.EqualError(err, "all-in is not a valid action")
}
