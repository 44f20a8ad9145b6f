package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sharebox/sharebox/internal/client/session"
)

// Status shows the current session state without touching the network
func (c *Cli) Status(ctx context.Context) error {
	user := c.store.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in.")
		if c.sessions.HasPersistedSession(ctx) {
			fmt.Println("A remembered session exists; run 'sharebox unlock'.")
		}
		return nil
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Email)

	if exp, ok := session.TokenExpiry(c.store.AccessToken()); ok {
		if time.Now().After(exp) {
			fmt.Printf("Access token expired at %s; the next call will require a new login\n", exp.Format(time.RFC3339))
		} else {
			fmt.Printf("Access token valid until %s\n", exp.Format(time.RFC3339))
		}
	}

	if c.sessions.HasPersistedSession(ctx) {
		fmt.Println("Session is remembered on disk (encrypted).")
	}
	return nil
}
