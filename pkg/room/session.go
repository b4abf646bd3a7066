package room

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"holdem-server/pkg/holdem"
)

// Session is a game between one participant and the computer
// Any number of websocket clients may watch a session, all of them receive the state after every action
type Session struct {
	UUID    string
	Created time.Time

	// Opponent is the display name of the computer
	Opponent string

	logger      logrus.FieldLogger
	lock        sync.Mutex
	game        *holdem.Game
	logMessages []*LogMessage

	clientsLock sync.RWMutex
	clients     map[*Client]bool
}

func newSession(uuid, opponent string, game *holdem.Game, logger logrus.FieldLogger) *Session {
	return &Session{
		UUID:     uuid,
		Created:  time.Now(),
		Opponent: opponent,
		logger:  logger,
		game:    game,
		clients: make(map[*Client]bool),
	}
}

// State returns the current state of the session
func (s *Session) State() *SessionState {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.state()
}

// Note: the session lock must be held
func (s *Session) state() *SessionState {
	log := make([]*LogMessage, len(s.logMessages))
	copy(log, s.logMessages)

	return &SessionState{
		UUID:     s.UUID,
		Opponent: s.Opponent,
		Game:     s.game.GetGameState(),
		Log:      log,
	}
}

// ActionFromString parses the action and performs it
func (s *Session) ActionFromString(name string) (*SessionState, error) {
	a, err := holdem.ActionFromString(name)
	if err != nil {
		return nil, err
	}

	return s.Action(a)
}

// Action performs the action on the game and sends the new state to every connected client
func (s *Session) Action(a holdem.Action) (*SessionState, error) {
	s.lock.Lock()
	wasBetting := s.game.InBettingRound()
	if err := s.game.Action(a); err != nil {
		s.lock.Unlock()
		return nil, err
	}

	if wasBetting && !s.game.InBettingRound() {
		s.addLogMessages(s.roundLogMessage())
	}

	state := s.state()
	s.lock.Unlock()

	s.logger.WithFields(logrus.Fields{
		"uuid":   s.UUID,
		"action": a,
		"state":  state.Game.DealerState.String(),
	}).Debug("performed action")

	s.broadcast(newStateResponse("", state))
	return state, nil
}

// Note: the session lock must be held
func (s *Session) roundLogMessage() *LogMessage {
	gs := s.game.GetGameState()
	if gs.ComputerHand == "" {
		return newLogMessage(gs.Round, "%s after folding", gs.Message)
	}

	return newLogMessage(gs.Round, "%s with %s against %s", gs.Message, gs.Hand, gs.ComputerHand)
}

// Clients will return a slice of connected (at the time) clients
func (s *Session) Clients() []*Client {
	s.clientsLock.RLock()
	defer s.clientsLock.RUnlock()

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient adds a client and sends it the current state
func (s *Session) AddClient(client *Client) {
	s.clientsLock.Lock()
	client.session = s
	s.clients[client] = true
	s.clientsLock.Unlock()

	client.Send(newStateResponse("", s.State()))
}

// RemoveClient removes a client
func (s *Session) RemoveClient(client *Client) (lastClient bool) {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()

	delete(s.clients, client)
	return len(s.clients) == 0
}

func (s *Session) broadcast(msg interface{}) {
	for _, client := range s.Clients() {
		if !client.Send(msg) {
			s.logger.WithField("client", client.String()).Warn("client is not keeping up, dropped message")
		}
	}
}

// end disconnects every client
func (s *Session) end(reason string) {
	for _, client := range s.Clients() {
		client.close(reason)
	}
}

// Summary is a short description of a session
type Summary struct {
	UUID     string    `json:"uuid"`
	Opponent string    `json:"opponent"`
	Created  time.Time `json:"created"`
	Round    int       `json:"round"`
	Balance  int       `json:"balance"`
	Clients  int       `json:"clients"`
}

// Summary returns a short description of the session
func (s *Session) Summary() Summary {
	s.lock.Lock()
	round := s.game.Round()
	balance := s.game.Participant().Balance()
	s.lock.Unlock()

	s.clientsLock.RLock()
	clients := len(s.clients)
	s.clientsLock.RUnlock()

	return Summary{
		UUID:     s.UUID,
		Opponent: s.Opponent,
		Created:  s.Created,
		Round:    round,
		Balance:  balance,
		Clients:  clients,
	}
}
