package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sharebox/sharebox/internal/crypto"
	"github.com/sharebox/sharebox/internal/validation"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// API is the slice of the request client the session lifecycle needs
type API interface {
	// Token exchanges credentials for a token pair
	Token(ctx context.Context, req pkgapi.TokenRequest) (*pkgapi.TokenResponse, error)

	// ProfileWithToken fetches the profile for a not-yet-committed token
	ProfileWithToken(ctx context.Context, accessToken string) (*pkgapi.UserSummary, error)
}

// Service exposes the only entry and exit points for session state
type Service struct {
	api     API
	store   *Store
	storage Storage
}

// NewService creates the session lifecycle service. storage may be nil;
// then Login ignores remember and Unlock always fails with
// ErrSessionNotFound.
func NewService(api API, store *Store, storage Storage) *Service {
	return &Service{
		api:     api,
		store:   store,
		storage: storage,
	}
}

// Login exchanges credentials for a token pair, fetches the profile for
// the authenticated principal, and commits both to the store as one unit.
// On any failure nothing changes: either tokens and user are all set, or
// the pre-call state is intact.
//
// With remember set, the committed session is additionally sealed under a
// key derived from the password and written to persistent storage.
func (s *Service) Login(ctx context.Context, identifier, secret string, remember bool) (*pkgapi.UserSummary, error) {
	if err := validation.ValidateIdentifier(identifier); err != nil {
		return nil, fmt.Errorf("invalid identifier: %w", err)
	}
	if secret == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	tok, err := s.api.Token(ctx, pkgapi.TokenRequest{Identifier: identifier, Secret: secret})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// The token pair is not committed yet, so a failure here leaves the
	// store untouched.
	user, err := s.api.ProfileWithToken(ctx, tok.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	sess := Session{
		User:         user,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ClientID:     uuid.New().String(),
	}
	s.store.Replace(sess)

	if remember && s.storage != nil {
		// Persistence is best effort: the in-memory session is already
		// committed and valid without it.
		if err := s.persist(ctx, sess, identifier, secret); err != nil {
			slog.Warn("failed to persist session", "error", err)
		}
	}

	return user, nil
}

// Logout clears tokens and user unconditionally, including any persisted
// record. Always succeeds; calling it when already logged out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	s.store.Clear()
	return nil
}

// Unlock restores a previously persisted session. The secret must be the
// password the session was remembered with: it re-derives the sealing key.
// An expired access token discards the record instead of restoring it.
func (s *Service) Unlock(ctx context.Context, secret string) (*pkgapi.UserSummary, error) {
	if s.storage == nil {
		return nil, ErrSessionNotFound
	}

	rec, err := s.storage.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveSealingKey(secret, rec.Identifier, rec.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive sealing key: %w", err)
	}

	plain, err := crypto.Open(rec.Sealed, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLocked, "wrong password or corrupted record")
	}

	var sess Session
	if err := json.Unmarshal(plain, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}

	if exp, ok := TokenExpiry(sess.AccessToken); ok && time.Now().After(exp) {
		if err := s.storage.DeleteSession(ctx); err != nil && !errors.Is(err, ErrSessionNotFound) {
			slog.Warn("failed to delete expired session record", "error", err)
		}
		return nil, fmt.Errorf("persisted session has expired, log in again")
	}

	s.store.Replace(sess)
	return sess.User, nil
}

// HasPersistedSession reports whether a remembered session record exists
func (s *Service) HasPersistedSession(ctx context.Context) bool {
	if s.storage == nil {
		return false
	}
	_, err := s.storage.GetSession(ctx)
	return err == nil
}

func (s *Service) persist(ctx context.Context, sess Session, identifier, secret string) error {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}

	key, err := crypto.DeriveSealingKey(secret, identifier, salt)
	if err != nil {
		return err
	}

	plain, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	sealed, err := crypto.Seal(plain, key)
	if err != nil {
		return err
	}

	rec := &Record{
		Identifier: identifier,
		Salt:       salt,
		Sealed:     sealed,
		SavedAt:    time.Now().UTC(),
	}
	return s.storage.SaveSession(ctx, rec)
}
