package cli

import (
	"context"
	"fmt"

	"github.com/sharebox/sharebox/internal/client/guard"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Comments shows a folder's comment thread
func (c *Cli) Comments(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewFolder); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	comments, err := c.api.FolderComments(ctx, id)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		fmt.Println("No comments.")
		return nil
	}
	for _, comment := range comments {
		fmt.Printf("%s: %s\n", comment.OwnerUsername, comment.Text)
	}
	return nil
}

// Comment posts a comment on a folder
func (c *Cli) Comment(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewFolder); err != nil {
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

	comment, err := c.api.PostComment(ctx, pkgapi.PostCommentRequest{FolderID: id, Text: text})
	if err != nil {
		return err
	}
	fmt.Printf("Comment posted as %s.\n", comment.OwnerUsername)
	return nil
}
