package access

import (
	"context"
	"errors"

	clientapi "github.com/sharebox/sharebox/internal/client/api"
	"github.com/sharebox/sharebox/internal/client/dialog"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Outcome is the terminal state of a single access attempt
type Outcome int

const (
	// OutcomeGranted means the caller may navigate to the resource
	OutcomeGranted Outcome = iota

	// OutcomeAbandoned means the user cancelled the secret prompt. No
	// navigation, no error surfaced.
	OutcomeAbandoned
)

// Result describes how an access attempt ended. Secret carries the
// verified secret forward so the destination view can read the resource
// without prompting again; it is empty when no secret was needed.
type Result struct {
	Secret  string
	Denials int
	Outcome Outcome
}

// Verifier issues the verification call for a candidate secret. Satisfied
// by the API client: fetching the folder with the secret attached is the
// verification.
type Verifier interface {
	Folder(ctx context.Context, id pkgapi.ID, secret string) (*pkgapi.Folder, error)
}

// CurrentUser exposes the session's cached identity
type CurrentUser interface {
	CurrentUser() *pkgapi.UserSummary
}

// Gate mediates access to folders that may be private. Each Open is an
// independent attempt: nothing is remembered across invocations, denied
// or otherwise.
type Gate struct {
	api     Verifier
	session CurrentUser
	dialogs dialog.Dialogs
}

// New creates an access gate
func New(api Verifier, session CurrentUser, dialogs dialog.Dialogs) *Gate {
	return &Gate{
		api:     api,
		session: session,
		dialogs: dialogs,
	}
}

// Open runs one access attempt for the described folder.
//
// Public folders and folders owned by the current user are granted without
// prompting. Ownership is compared numerically: the backend emits ids as
// both strings and numbers, and the representations must never be compared
// raw. Otherwise the user is prompted for the secret and the candidate is
// verified against the server; a rejection notifies the user and returns
// to the prompt, a cancel abandons the attempt silently.
func (g *Gate) Open(ctx context.Context, desc pkgapi.FolderDescriptor) (*Result, error) {
	if desc.IsPublic {
		return &Result{Outcome: OutcomeGranted}, nil
	}

	if user := g.session.CurrentUser(); user != nil && user.ID.Int64() == desc.OwnerID.Int64() {
		return &Result{Outcome: OutcomeGranted}, nil
	}

	denials := 0
	for {
		secret, ok, err := g.dialogs.PromptSecret(ctx, "Private Folder", "Enter folder password")
		if err != nil {
			return nil, err
		}
		if !ok {
			return &Result{Outcome: OutcomeAbandoned, Denials: denials}, nil
		}

		_, err = g.api.Folder(ctx, desc.ID, secret)
		if err == nil {
			return &Result{Outcome: OutcomeGranted, Secret: secret, Denials: denials}, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		denials++
		if errors.Is(err, clientapi.ErrAccessDenied) {
			if alertErr := g.dialogs.Alert(ctx, "Access Denied", "Wrong password. Please try again."); alertErr != nil {
				return nil, alertErr
			}
			continue
		}

		// Network and server failures are also a denial: notify and let
		// the user retry or cancel.
		if alertErr := g.dialogs.Alert(ctx, "Error", "Could not verify folder access. Please try again."); alertErr != nil {
			return nil, alertErr
		}
	}
}
