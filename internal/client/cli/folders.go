package cli

import (
	"context"
	"fmt"

	"github.com/sharebox/sharebox/internal/client/guard"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Feed lists public folders in the feed
func (c *Cli) Feed(ctx context.Context) error {
	if err := c.requireView(ctx, guard.ViewFeed); err != nil {
		return err
	}
	folders, err := c.api.Feed(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Feed:")
	c.printFolders(folders)
	return nil
}

// Following lists feed folders of followed users
func (c *Cli) Following(ctx context.Context) error {
	if err := c.requireView(ctx, guard.ViewFollowing); err != nil {
		return err
	}
	folders, err := c.api.FollowingFeed(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Following feed:")
	c.printFolders(folders)
	return nil
}

// Liked lists folders the user has liked
func (c *Cli) Liked(ctx context.Context) error {
	if err := c.requireView(ctx, guard.ViewLiked); err != nil {
		return err
	}
	folders, err := c.api.LikedFolders(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Liked folders:")
	c.printFolders(folders)
	return nil
}

// Mine lists the user's own folders
func (c *Cli) Mine(ctx context.Context) error {
	if err := c.requireView(ctx, guard.ViewDashboard); err != nil {
		return err
	}
	folders, err := c.api.MyFolders(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Your folders:")
	c.printFolders(folders)
	return nil
}

// Mkdir creates a folder. Private folders require a password.
func (c *Cli) Mkdir(ctx context.Context, name string) error {
	if err := c.requireView(ctx, guard.ViewDashboard); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("folder name cannot be empty")
	}

	public, err := c.dialogs.Confirm(ctx, "Create Folder", "Make this folder public?")
	if err != nil {
		return err
	}

	req := pkgapi.CreateFolderRequest{Name: name, IsPublic: public}
	if !public {
		secret, ok, err := c.dialogs.PromptSecret(ctx, "Create Folder", "Password for the private folder")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("a private folder requires a password")
		}
		req.Secret = secret
	}

	folder, err := c.api.CreateFolder(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Created folder %s (id %s)\n", folder.Name, folder.ID)
	return nil
}

// Rename changes a folder's name
func (c *Cli) Rename(ctx context.Context, idArg, name string) error {
	if err := c.requireView(ctx, guard.ViewFolder); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("folder name cannot be empty")
	}

	folder, err := c.api.UpdateFolder(ctx, id, pkgapi.UpdateFolderRequest{Name: &name})
	if err != nil {
		return err
	}
	fmt.Printf("Folder renamed to %s\n", folder.Name)
	return nil
}

// Visibility toggles a folder between public and private. Going private
// requires a new password.
func (c *Cli) Visibility(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewFolder); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	folder, err := c.api.Folder(ctx, id, "")
	if err != nil {
		return err
	}

	if folder.IsPublic {
		secret, ok, err := c.dialogs.PromptSecret(ctx, "Make Private", "Set password for private folder")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("a private folder requires a password")
		}
		private := false
		updated, err := c.api.UpdateFolder(ctx, id, pkgapi.UpdateFolderRequest{IsPublic: &private, Secret: &secret})
		if err != nil {
			return err
		}
		fmt.Printf("Folder %s is now private\n", updated.Name)
		return nil
	}

	public := true
	empty := ""
	updated, err := c.api.UpdateFolder(ctx, id, pkgapi.UpdateFolderRequest{IsPublic: &public, Secret: &empty})
	if err != nil {
		return err
	}
	fmt.Printf("Folder %s is now public\n", updated.Name)
	return nil
}

// Rm deletes a folder after confirmation
func (c *Cli) Rm(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewFolder); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	confirmed, err := c.dialogs.Confirm(ctx, "Delete Folder", "Delete folder permanently?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := c.api.DeleteFolder(ctx, id); err != nil {
		return err
	}
	fmt.Println("Folder deleted.")
	return nil
}

// Like toggles a like on a folder
func (c *Cli) Like(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewFolder); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	res, err := c.api.ToggleLike(ctx, id)
	if err != nil {
		return err
	}
	if res.Liked {
		fmt.Printf("Liked. The folder now has %d likes.\n", res.LikeCount)
	} else {
		fmt.Printf("Like removed. The folder now has %d likes.\n", res.LikeCount)
	}
	return nil
}
