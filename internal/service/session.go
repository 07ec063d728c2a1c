package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tourguide-gateway/internal/domain"
)

// DefaultSessionIdle is how long an unused session survives unless
// WithIdleTimeout says otherwise.
const DefaultSessionIdle = 24 * time.Hour

// Session is what a logged-in client carries between requests: who it is and
// which guides it has marked favorite. Sessions live in memory only.
type Session struct {
	ID        uuid.UUID
	User      domain.User
	Favorites *Favorites

	lastSeen time.Time // guarded by SessionStore.mu
}

// SessionOption configures a SessionStore.
type SessionOption func(*SessionStore)

// WithIdleTimeout drops sessions not used for d. Zero or negative keeps
// sessions until they are ended.
func WithIdleTimeout(d time.Duration) SessionOption {
	return func(s *SessionStore) { s.idle = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionStore) { s.now = now }
}

// SessionStore holds open sessions keyed by id.
// Expired sessions are treated as absent by Get and removed in bulk by Sweep,
// which Open runs at most once per idle period.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*Session
	idle      time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewSessionStore returns an empty store.
func NewSessionStore(opts ...SessionOption) *SessionStore {
	s := &SessionStore{
		sessions: make(map[uuid.UUID]*Session),
		idle:     DefaultSessionIdle,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastSweep = s.now()
	return s
}

// Open starts a session for user with an empty favorites set.
func (s *SessionStore) Open(user domain.User) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.idle > 0 && now.Sub(s.lastSweep) >= s.idle {
		s.sweep(now)
	}
	sess := &Session{
		ID:        uuid.New(),
		User:      user,
		Favorites: NewFavorites(),
		lastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given id and marks it as used.
// Returns domain.ErrSessionNotFound if there is none or it has expired.
func (s *SessionStore) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[id]
	if ok && s.expired(sess, now) {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		return nil, fmt.Errorf("service.SessionStore.Get: %w", domain.ErrSessionNotFound)
	}
	sess.lastSeen = now
	return sess, nil
}

// End discards a session and its favorites.
// Returns domain.ErrSessionNotFound if there is none.
func (s *SessionStore) End(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("service.SessionStore.End: %w", domain.ErrSessionNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// Sweep removes every expired session and returns how many it removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweep(s.now())
}

// Len returns the number of sessions held, expired ones included until swept.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) sweep(now time.Time) int {
	s.lastSweep = now
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *SessionStore) expired(sess *Session, now time.Time) bool {
	return s.idle > 0 && now.Sub(sess.lastSeen) >= s.idle
}
