package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/sharebox/sharebox/internal/client/api"
	"github.com/sharebox/sharebox/internal/client/guard"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// File shows a file's metadata and comment thread. A file in a private
// folder needs the folder password; the prompt repeats on a wrong one and
// a cancel leaves silently, the same flow the access gate runs for folders.
func (c *Cli) File(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewFile); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	secret := ""
	var file *pkgapi.File
	for {
		f, fetchErr := c.api.File(ctx, id, secret)
		if fetchErr == nil {
			file = f
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !errors.Is(fetchErr, clientapi.ErrAccessDenied) {
			return fetchErr
		}
		if secret != "" {
			if alertErr := c.dialogs.Alert(ctx, "Access Denied", "Wrong password. Please try again."); alertErr != nil {
				return alertErr
			}
		}
		s, ok, promptErr := c.dialogs.PromptSecret(ctx, "Private File", "Enter folder password")
		if promptErr != nil {
			return promptErr
		}
		if !ok {
			return nil
		}
		secret = s
	}

	fmt.Printf("%s (id %s, folder %s)\n", file.Name, file.ID, file.FolderID)
	if file.URL != "" {
		fmt.Printf("  %s\n", file.URL)
	}

	comments, err := c.api.FileComments(ctx, id)
	if err == nil && len(comments) > 0 {
		fmt.Println("Comments:")
		for _, comment := range comments {
			fmt.Printf("  %s: %s\n", comment.OwnerUsername, comment.Text)
		}
	}

	siblings, err := c.api.Files(ctx, file.FolderID, secret)
	if err == nil && len(siblings) > 1 {
		fmt.Println("In the same folder:")
		c.printFiles(siblings)
	}

	return nil
}

// FileComment posts a comment on a file
func (c *Cli) FileComment(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewFile); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	text, ok, err := c.dialogs.Prompt(ctx, "Comment", "Write a comment")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	comment, err := c.api.PostFileComment(ctx, pkgapi.PostFileCommentRequest{FileID: id, Text: text})
	if err != nil {
		return err
	}
	fmt.Printf("Comment posted as %s.\n", comment.OwnerUsername)
	return nil
}
