package cli

import (
	"context"
	"fmt"

	"github.com/sharebox/sharebox/internal/client/access"
	clientapi "github.com/sharebox/sharebox/internal/client/api"
	"github.com/sharebox/sharebox/internal/client/dialog"
	"github.com/sharebox/sharebox/internal/client/guard"
	"github.com/sharebox/sharebox/internal/client/session"
	"github.com/sharebox/sharebox/internal/config"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Cli wires the client components behind the command surface
type Cli struct {
	api      *clientapi.Client
	store    *session.Store
	sessions *session.Service
	guard    *guard.Guard
	gate     *access.Gate
	dialogs  dialog.Dialogs
	cfg      *config.Config
}

// New creates the command-line surface
func New(
	api *clientapi.Client,
	store *session.Store,
	sessions *session.Service,
	g *guard.Guard,
	gate *access.Gate,
	dialogs dialog.Dialogs,
	cfg *config.Config,
) *Cli {
	return &Cli{
		api:      api,
		store:    store,
		sessions: sessions,
		guard:    g,
		gate:     gate,
		dialogs:  dialogs,
		cfg:      cfg,
	}
}

// requireView runs the route guard for a destination. Each command runs in
// its own process, so a fresh store starts empty; when the guard denies and
// a remembered session exists on disk, the unlock prompt runs right here
// and the hydrated session is re-checked before giving up. The guard
// decision itself stays pure; translating a redirect into a login hint is
// the CLI's version of rendering the login view instead.
func (c *Cli) requireView(ctx context.Context, view guard.View) error {
	if c.guard.Check(view).Allowed {
		return nil
	}

	if c.sessions.HasPersistedSession(ctx) {
		secret, ok, err := c.dialogs.PromptSecret(ctx, "Unlock", "Password")
		if err != nil {
			return err
		}
		if ok {
			user, err := c.sessions.Unlock(ctx, secret)
			if err != nil {
				return err
			}
			fmt.Printf("Session restored for %s\n", user.Username)
			if c.guard.Check(view).Allowed {
				return nil
			}
		}
	}

	return fmt.Errorf("not logged in. Please run 'sharebox login --remember' first")
}

func (c *Cli) printFiles(files []pkgapi.File) {
	for _, f := range files {
		fmt.Printf("  %s  %-30s  comments:%d\n", f.ID, f.Name, f.CommentCount)
	}
}

func (c *Cli) printFolders(folders []pkgapi.Folder) {
	if len(folders) == 0 {
		fmt.Println("No folders.")
		return
	}
	for _, f := range folders {
		visibility := "public"
		if !f.IsPublic {
			visibility = "private"
		}
		liked := ""
		if f.Liked {
			liked = " [liked]"
		}
		fmt.Printf("  %s  %-30s  %s  by %s  likes:%d views:%d%s\n",
			f.ID, f.Name, visibility, f.OwnerUsername, f.LikeCount, f.ViewCount, liked)
	}
}

// PrintUsage prints the command overview
func PrintUsage() {
	fmt.Println("sharebox client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sharebox [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     API base URL (default from SHAREBOX_API_URL)")
	fmt.Println("  --db PATH        Path to the local session database")
	fmt.Println()
	fmt.Println("Account:")
	fmt.Println("  register              Create a new account")
	fmt.Println("  login [--remember]    Log in; --remember keeps an encrypted session on disk")
	fmt.Println("  unlock                Restore a remembered session")
	fmt.Println("  logout                Log out and forget the session")
	fmt.Println("  status                Show session status")
	fmt.Println()
	fmt.Println("Folders:")
	fmt.Println("  feed                  Public feed")
	fmt.Println("  following             Feed of followed users")
	fmt.Println("  liked                 Folders you liked")
	fmt.Println("  mine                  Your folders")
	fmt.Println("  open <folderID>       Open a folder (prompts for the password when private)")
	fmt.Println("  mkdir <name>          Create a folder")
	fmt.Println("  rename <folderID> <name>")
	fmt.Println("  visibility <folderID> Toggle a folder between public and private")
	fmt.Println("  rm <folderID>         Delete a folder")
	fmt.Println("  like <folderID>       Toggle like")
	fmt.Println("  search                Incremental folder search")
	fmt.Println()
	fmt.Println("Files:")
	fmt.Println("  file <fileID>         Show file details and comments")
	fmt.Println()
	fmt.Println("Comments:")
	fmt.Println("  comments <folderID>   Show a folder's comments")
	fmt.Println("  comment <folderID>    Post a comment on a folder")
	fmt.Println("  filecomment <fileID>  Post a comment on a file")
	fmt.Println()
	fmt.Println("People:")
	fmt.Println("  user <userID>         Show a profile")
	fmt.Println("  follow <userID>       Toggle follow")
	fmt.Println()
	fmt.Println("Chat:")
	fmt.Println("  chats                 Inbox")
	fmt.Println("  chat <userID>         Open a conversation (polls for new messages)")
}
