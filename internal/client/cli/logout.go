package cli

import (
	"context"
	"fmt"
)

// Logout clears the session. Safe to run when already logged out.
func (c *Cli) Logout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
