package api

import (
	"errors"
	"fmt"
)

// Failure classes the rest of the client branches on. Callers match with
// errors.Is; everything else surfaces as *Error.
var (
	// ErrInvalidCredentials indicates the credential exchange was rejected.
	// Session state is untouched.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized indicates the server rejected the session's access
	// token. The session has already been torn down when this is returned.
	ErrUnauthorized = errors.New("session no longer valid")

	// ErrAccessDenied indicates a secret-gated resource rejected the
	// provided secret. Local to the access flow, does not affect the session.
	ErrAccessDenied = errors.New("access denied")
)

// Error represents any other non-2xx server response
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
