package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	clientapi "github.com/sharebox/sharebox/internal/client/api"
	"github.com/sharebox/sharebox/internal/client/search"
	"github.com/sharebox/sharebox/internal/validation"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Register creates a new account. When the chosen username is taken the
// server's suggestions are offered and the prompt repeats.
func (c *Cli) Register(ctx context.Context) error {
	email, ok, err := c.dialogs.Prompt(ctx, "Register", "Email")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("registration cancelled")
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	secret, ok, err := c.dialogs.PromptSecret(ctx, "Register", "Password")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("registration cancelled")
	}
	if err := validation.ValidatePassword(secret); err != nil {
		return err
	}

	// Each attempted username supersedes the previous suggestion lookup,
	// the same way typing in the signup form does.
	suggester := search.NewUsernameSuggester(c.api, 0, func(username string, suggestions []string) {
		if len(suggestions) > 0 {
			fmt.Printf("Available: %s\n", strings.Join(suggestions, ", "))
		}
	})
	defer suggester.Close()

	for {
		username, ok, err := c.dialogs.Prompt(ctx, "Register", "Username")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("registration cancelled")
		}
		if err := validation.ValidateUsername(username); err != nil {
			fmt.Println(err)
			continue
		}

		_, err = c.api.Register(ctx, pkgapi.RegisterRequest{
			Username: username,
			Email:    email,
			Secret:   secret,
		})
		if err == nil {
			fmt.Printf("Account %s created. Run 'sharebox login' to sign in.\n", username)
			return nil
		}

		if clientapi.IsStatus(err, http.StatusConflict) {
			fmt.Printf("Username %s is taken.\n", username)
			suggester.Input(ctx, username)
			continue
		}
		return err
	}
}
