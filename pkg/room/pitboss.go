package room

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/internal/rng"
	"holdem-server/internal/util"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/holdem"
)

// errors returned by the PitBoss
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many open sessions")
)

// Options configures the PitBoss
type Options struct {
	Game            holdem.Options
	StartingBalance int

	// MaxSessions is the number of sessions that may be open at once, zero means no limit
	MaxSessions int
}

// DeckFactory returns the deck for a new session
type DeckFactory func() *deck.Deck

// PitBoss is responsible for opening sessions and dispatching clients to them
type PitBoss struct {
	lock        sync.RWMutex
	sessions    map[string]*Session
	options     Options
	logger      logrus.FieldLogger
	deckFactory DeckFactory
	names       rng.Generator
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, opts Options) (*PitBoss, error) {
	if opts.StartingBalance < opts.Game.Ante {
		return nil, fmt.Errorf("starting balance (%d) must be at least the ante (%d)", opts.StartingBalance, opts.Game.Ante)
	}

	if opts.MaxSessions < 0 {
		return nil, errors.New("max sessions cannot be negative")
	}

	return &PitBoss{
		sessions:    make(map[string]*Session),
		options:     opts,
		logger:      logger,
		deckFactory: deck.New,
		names:       rng.Crypto{},
	}, nil
}

// SetDeckFactory sets the function used to create a deck for new sessions
func (p *PitBoss) SetDeckFactory(fn DeckFactory) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.deckFactory = fn
}

// OpenSession deals a new game and returns its session
func (p *PitBoss) OpenSession() (*Session, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.options.MaxSessions > 0 && len(p.sessions) >= p.options.MaxSessions {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManySessions, p.options.MaxSessions)
	}

	id := uuid.New().String()
	logger := p.logger.WithField("uuid", id)
	participant := holdem.NewParticipant(p.options.StartingBalance)
	game, err := holdem.NewGame(logger, participant, p.deckFactory(), p.options.Game)
	if err != nil {
		return nil, err
	}

	s := newSession(id, util.RandomName(p.names), game, logger)
	p.sessions[id] = s

	logger.Info("opened session")
	return s, nil
}

// GetSession returns the session with the specified UUID
func (p *PitBoss) GetSession(id string) (*Session, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	s, found := p.sessions[id]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return s, nil
}

// CloseSession removes the session and disconnects its clients
func (p *PitBoss) CloseSession(id string) error {
	p.lock.Lock()
	s, found := p.sessions[id]
	delete(p.sessions, id)
	p.lock.Unlock()

	if !found {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.end("session closed")
	p.logger.WithField("uuid", id).Info("closed session")
	return nil
}

// Len returns the number of open sessions
func (p *PitBoss) Len() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.sessions)
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.logger.WithField("client", client.String()).Debug("client connected")
	client.session.AddClient(client)
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.logger.WithField("client", client.String()).Debug("client disconnected")
	client.session.RemoveClient(client)
}

// Sessions returns up to {rows} sessions starting at offset {start}, oldest first
func (p *PitBoss) Sessions(start, rows int) []*Session {
	p.lock.RLock()
	sessions := make([]*Session, 0, len(p.sessions))
	for _, s := range p.sessions {
		sessions = append(sessions, s)
	}
	p.lock.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Created.Equal(sessions[j].Created) {
			return sessions[i].UUID < sessions[j].UUID
		}

		return sessions[i].Created.Before(sessions[j].Created)
	})

	if start >= len(sessions) {
		return []*Session{}
	}

	end := start + rows
	if end > len(sessions) {
		end = len(sessions)
	}

	return sessions[start:end]
}
