package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/sharebox/sharebox/internal/client/api"
)

// Login prompts for credentials and establishes a session
func (c *Cli) Login(ctx context.Context, remember bool) error {
	identifier, ok, err := c.dialogs.Prompt(ctx, "Login", "Username or email")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("login cancelled")
	}

	secret, ok, err := c.dialogs.PromptSecret(ctx, "Login", "Password")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("login cancelled")
	}

	user, err := c.sessions.Login(ctx, identifier, secret, remember)
	if err != nil {
		if errors.Is(err, clientapi.ErrInvalidCredentials) {
			return fmt.Errorf("invalid credentials")
		}
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Username)
	if remember {
		fmt.Println("Session remembered. Later commands will ask for your password to unlock it.")
	} else {
		fmt.Println("Note: the session lives only in this process. Use --remember to keep it across commands.")
	}
	return nil
}

// Unlock restores a remembered session
func (c *Cli) Unlock(ctx context.Context) error {
	if !c.sessions.HasPersistedSession(ctx) {
		return fmt.Errorf("no remembered session. Please run 'sharebox login --remember' first")
	}

	secret, ok, err := c.dialogs.PromptSecret(ctx, "Unlock", "Password")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unlock cancelled")
	}

	user, err := c.sessions.Unlock(ctx, secret)
	if err != nil {
		return err
	}

	fmt.Printf("Session restored for %s\n", user.Username)
	return nil
}
