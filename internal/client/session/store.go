package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	clientapi "github.com/sharebox/sharebox/internal/client/api"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Store owns the in-process session state. All mutation goes through
// Replace and Clear; every other component only reads. The optional
// persistent backend is kept in step so a torn-down session cannot be
// resurrected from disk.
type Store struct {
	storage Storage
	current Session
	mu      sync.RWMutex
}

// Store is the credential source and teardown target for the API client
var _ clientapi.SessionState = (*Store)(nil)

// NewStore creates a session store. storage may be nil, in which case the
// session is process-scoped.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// AccessToken returns the current access token, or "" when absent
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.AccessToken
}

// RefreshToken returns the current refresh token, or "" when absent
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.RefreshToken
}

// CurrentUser returns the cached profile snapshot, or nil when logged out.
// Never performs a network call.
func (s *Store) CurrentUser() *pkgapi.UserSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current.User == nil {
		return nil
	}
	u := *s.current.User
	return &u
}

// IsAuthenticated reports whether both an access token and a user snapshot
// are present. The two can never diverge: Replace and Clear move them
// together.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.AccessToken != "" && s.current.User != nil
}

// Get returns a snapshot of the whole session
func (s *Store) Get() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace installs a new session atomically
func (s *Store) Replace(sess Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}

// Clear drops tokens and user together and removes any persisted record.
// Idempotent: clearing an already-empty store is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()

	if s.storage != nil {
		// Best effort: the in-memory state is authoritative either way
		if err := s.storage.DeleteSession(context.Background()); err != nil && !errors.Is(err, ErrSessionNotFound) {
			slog.Warn("failed to delete persisted session", "error", err)
		}
	}
}
