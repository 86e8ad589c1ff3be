// Package session holds the per-visitor state the browser held in the
// original storefront: one cart and one checkout orchestrator per session,
// in memory only. Nothing survives a restart and sessions expire after an
// idle TTL.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/goldcrust/storefront/internal/cart"
	"github.com/goldcrust/storefront/internal/checkout"
	"github.com/google/uuid"
)

// Session is one visitor's storefront state.
type Session struct {
	ID       string
	Cart     *cart.Cart
	Checkout *checkout.Orchestrator

	lastSeen time.Time
}

// Store is an in-memory session registry keyed by opaque UUIDs.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *slog.Logger

	newSession func(id string) *Session
}

// NewStore creates a session store. newSession builds the session's cart and
// orchestrator so the store stays ignorant of checkout wiring.
func NewStore(ttl time.Duration, log *slog.Logger, newSession func(id string) *Session) *Store {
	return &Store{
		sessions:   make(map[string]*Session),
		ttl:        ttl,
		log:        log,
		newSession: newSession,
	}
}

// Get returns the session for id if it exists and has not expired.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess, true
}

// Create registers a new session with a fresh id.
func (s *Store) Create() *Session {
	id := uuid.New().String()
	sess := s.newSession(id)
	sess.lastSeen = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
	return sess
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run sweeps expired sessions until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.log.Debug("swept expired sessions", "removed", removed, "remaining", len(s.sessions))
	}
}
