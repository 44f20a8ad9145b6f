package session

import (
	"context"
	"errors"
	"time"

	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Session is the tab-scoped authenticated identity plus its credential
// tokens. User is valid only together with AccessToken: the two are written
// and cleared as one unit, never separately.
type Session struct {
	User         *pkgapi.UserSummary
	AccessToken  string
	RefreshToken string
	ClientID     string
}

// Record is the persisted form of a session: the JSON-encoded Session
// sealed under a key derived from the account password. Only the
// identifier and the salt are stored in the clear — both are needed to
// re-derive the sealing key on unlock.
type Record struct {
	Identifier string    `json:"identifier"`
	Salt       []byte    `json:"salt"`
	Sealed     []byte    `json:"sealed"`
	SavedAt    time.Time `json:"saved_at"`
}

// Storage persists a single session record across restarts. The default
// deployment uses no storage at all: the session dies with the process.
type Storage interface {
	// SaveSession stores the record, replacing any previous one
	SaveSession(ctx context.Context, rec *Record) error

	// GetSession retrieves the stored record.
	// Returns ErrSessionNotFound if none exists.
	GetSession(ctx context.Context) (*Record, error)

	// DeleteSession removes the stored record (logout, teardown)
	DeleteSession(ctx context.Context) error
}

// ErrSessionNotFound indicates that no persisted session record exists
var ErrSessionNotFound = errors.New("session not found")

// ErrLocked indicates a persisted record exists but could not be opened
// with the provided secret
var ErrLocked = errors.New("persisted session could not be unlocked")
