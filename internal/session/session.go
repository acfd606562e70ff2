package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/beesweeper-server/internal/beesweeper"
)

var ErrNotFound = errors.New("game session not found")

// Session is one live game. Every access to the game goes through Do, which
// holds the session mutex for the whole operation.
type Session struct {
	ID string

	mu         sync.Mutex
	game       *beesweeper.Game
	lastActive time.Time
	now        func() time.Time
}

func (s *Session) Do(fn func(g *beesweeper.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = s.now()
	fn(s.game)
}

func (s *Session) idleSince(t time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Sub(s.lastActive)
}

// Store keeps live games in memory.
type Store struct {
	log *logrus.Logger
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(log *logrus.Logger) *Store {
	return &Store{
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

func (s *Store) Create(game *beesweeper.Game) *Session {
	session := &Session{
		ID:         uuid.NewString(),
		game:       game,
		lastActive: s.now(),
		now:        s.now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"game_id": session.ID,
		"game":    game.String(),
	}).Debug("session created")

	return session
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Reap drops every session that has been idle for longer than idle and
// returns how many were dropped.
func (s *Store) Reap(idle time.Duration) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, session := range s.sessions {
		if session.idleSince(now) > idle {
			delete(s.sessions, id)
			n++
		}
	}
	if n > 0 {
		s.log.WithFields(logrus.Fields{
			"reaped": n,
			"live":   len(s.sessions),
		}).Info("reaped idle sessions")
	}
	return n
}

// Run reaps idle sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval, idle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Reap(idle)
		}
	}
}
