package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sharebox/sharebox/internal/client/access"
	clientapi "github.com/sharebox/sharebox/internal/client/api"
	"github.com/sharebox/sharebox/internal/client/guard"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Open shows a folder's detail, subfolders and comments. Private folders
// go through the access gate; the verified secret is carried forward for
// every read in this view so the user is prompted at most once.
func (c *Cli) Open(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewFolder); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	// Probe without a secret first: that settles public folders and the
	// owner's own folders in one round trip and yields the descriptor.
	folder, err := c.api.Folder(ctx, id, "")
	secret := ""
	switch {
	case err == nil:
		// Granted; run the gate on the real descriptor anyway so the
		// decision has one home.
		res, gateErr := c.gate.Open(ctx, folder.Descriptor())
		if gateErr != nil {
			return gateErr
		}
		if res.Outcome != access.OutcomeGranted {
			return nil
		}
	case errors.Is(err, clientapi.ErrAccessDenied):
		// Private and not ours: only the id is known at this point
		res, gateErr := c.gate.Open(ctx, pkgapi.FolderDescriptor{ID: id})
		if gateErr != nil {
			return gateErr
		}
		if res.Outcome != access.OutcomeGranted {
			// Abandoned: no navigation, no error
			return nil
		}
		secret = res.Secret
		folder, err = c.api.Folder(ctx, id, secret)
		if err != nil {
			return err
		}
	default:
		return err
	}

	c.printFolderDetail(folder)

	subfolders, err := c.api.Subfolders(ctx, id, secret)
	if err == nil && len(subfolders) > 0 {
		fmt.Println("Subfolders:")
		c.printFolders(subfolders)
	}

	files, err := c.api.Files(ctx, id, secret)
	if err == nil && len(files) > 0 {
		fmt.Println("Files:")
		c.printFiles(files)
	}

	comments, err := c.api.FolderComments(ctx, id)
	if err == nil && len(comments) > 0 {
		fmt.Println("Comments:")
		for _, comment := range comments {
			fmt.Printf("  %s: %s\n", comment.OwnerUsername, comment.Text)
		}
	}

	return nil
}

func (c *Cli) printFolderDetail(folder *pkgapi.Folder) {
	visibility := "public"
	if !folder.IsPublic {
		visibility = "private"
	}
	fmt.Printf("%s (id %s)\n", folder.Name, folder.ID)
	if folder.Description != "" {
		fmt.Printf("  %s\n", folder.Description)
	}
	fmt.Printf("  owner: %s  %s  likes:%d views:%d\n",
		folder.OwnerUsername, visibility, folder.LikeCount, folder.ViewCount)
	if folder.FolderCode != "" {
		fmt.Printf("  code: %s\n", folder.FolderCode)
	}
}
