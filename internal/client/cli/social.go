package cli

import (
	"context"
	"fmt"

	"github.com/sharebox/sharebox/internal/client/guard"
)

// User shows another user's profile and public folders
func (c *Cli) User(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewProfile); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	user, err := c.api.User(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (id %s)\n", user.Username, user.ID)
	fmt.Printf("  followers: %d", user.FollowersCount)
	if user.Following {
		fmt.Print("  [following]")
	}
	fmt.Println()

	folders, err := c.api.UserFolders(ctx, id)
	if err != nil {
		return err
	}
	if len(folders) > 0 {
		fmt.Println("Folders:")
		c.printFolders(folders)
	}
	return nil
}

// Follow toggles following another user
func (c *Cli) Follow(ctx context.Context, idArg string) error {
	if err := c.requireView(ctx, guard.ViewProfile); err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}

	res, err := c.api.ToggleFollow(ctx, id)
	if err != nil {
		return err
	}
	if res.Following {
		fmt.Printf("Following. They now have %d followers.\n", res.FollowersCount)
	} else {
		fmt.Printf("Unfollowed. They now have %d followers.\n", res.FollowersCount)
	}
	return nil
}
