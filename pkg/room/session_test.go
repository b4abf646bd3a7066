package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/holdem"
)

func TestSession_Action(t *testing.T) {
	a := assert.New(t)
	p := setupPitBoss(0)
	s, _ := p.OpenSession()

	state := s.State()
	a.Equal(s.UUID, state.UUID)
	a.Equal("Prime Panda", state.Opponent)
	a.Equal(980, state.Game.Balance)
	a.Empty(state.Log)

	state, err := s.Action(holdem.ActionCheck)
	a.NoError(err)
	a.Equal(holdem.DealerStateTurnBettingRound, state.Game.DealerState)
	a.Empty(state.Log)

	state, err = s.Action(holdem.ActionCheck)
	a.NoError(err)
	a.Equal(holdem.DealerStateRevealWinner, state.Game.DealerState)
	if a.Len(state.Log, 1) {
		a.Equal(1, state.Log[0].Round)
		a.Equal("You Lose with Two Pairs against Three of a Kind", state.Log[0].Message)
		a.NotEmpty(state.Log[0].UUID)
	}

	_, err = s.Action(holdem.ActionCheck)
	a.Equal(holdem.ErrRoundOver, err)

	state, err = s.ActionFromString("NEXT")
	a.NoError(err)
	a.Equal(2, state.Game.Round)

	state, err = s.ActionFromString("fold")
	a.NoError(err)
	if a.Len(state.Log, 2) {
		a.Equal("You Lose after folding", state.Log[1].Message)
	}

	_, err = s.ActionFromString("bluff")
	a.EqualError(err, "bluff is not a valid action")
}

func TestSession_broadcast(t *testing.T) {
	a := assert.New(t)
	p := setupPitBoss(0)
	s, _ := p.OpenSession()

	c := NewClient(nil, s)
	s.AddClient(c)
	<-c.SendChan()

	c.ReceivedMessage(&PayloadIn{Action: "raise", Context: "abc"})

	// the broadcast goes out first, then the reply to the sender
	broadcast := (<-c.SendChan()).(*Response)
	a.Equal("", broadcast.Context)
	a.Equal("turn-betting-round", broadcast.Value)

	reply := (<-c.SendChan()).(*Response)
	a.Equal("abc", reply.Context)
	a.Equal(970, reply.Data.(*SessionState).Game.Balance)

	c.ReceivedMessage(&PayloadIn{Action: "next", Context: "def"})
	reply = (<-c.SendChan()).(*Response)
	a.Equal("error", reply.Key)
	a.Equal("def", reply.Context)
	a.Equal("the round is still in progress", reply.Value)
}

func TestSession_addLogMessages(t *testing.T) {
	s := &Session{}
	for i := 0; i < logMessageLimit+5; i++ {
		s.addLogMessages(newLogMessage(i, "round %d", i))
	}

	assert.Len(t, s.logMessages, logMessageLimit)
	assert.Equal(t, "round 5", s.logMessages[0].Message)
}
