package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sharebox/sharebox/internal/client/access"
	clientapi "github.com/sharebox/sharebox/internal/client/api"
	"github.com/sharebox/sharebox/internal/client/cli"
	"github.com/sharebox/sharebox/internal/client/dialog"
	"github.com/sharebox/sharebox/internal/client/guard"
	"github.com/sharebox/sharebox/internal/client/session"
	"github.com/sharebox/sharebox/internal/client/session/boltdb"
	"github.com/sharebox/sharebox/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "API base URL (overrides SHAREBOX_API_URL)")
	dbPath := flag.String("db", "", "Path to local session database (overrides SHAREBOX_DB)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.BaseURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	setupLogger(cfg)

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	store := session.NewStore(boltStorage)
	apiClient := clientapi.NewClient(cfg.BaseURL, store, cfg.HTTPTimeout)
	sessions := session.NewService(apiClient, store, boltStorage)
	dialogs := dialog.NewStdio()
	routes := guard.New(store)
	gate := access.New(apiClient, store, dialogs)

	c := cli.New(apiClient, store, sessions, routes, gate, dialogs, cfg)

	if err := run(ctx, c, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Cli, args []string) error {
	command := args[0]
	args = args[1:]

	switch command {
	case "register":
		return c.Register(ctx)
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		remember := fs.Bool("remember", false, "Keep an encrypted session on disk")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return c.Login(ctx, *remember)
	case "unlock":
		return c.Unlock(ctx)
	case "logout":
		return c.Logout(ctx)
	case "status":
		return c.Status(ctx)
	case "feed":
		return c.Feed(ctx)
	case "following":
		return c.Following(ctx)
	case "liked":
		return c.Liked(ctx)
	case "mine":
		return c.Mine(ctx)
	case "open":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox open <folderID>")
		}
		return c.Open(ctx, args[0])
	case "mkdir":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox mkdir <name>")
		}
		return c.Mkdir(ctx, args[0])
	case "rename":
		if len(args) != 2 {
			return fmt.Errorf("usage: sharebox rename <folderID> <name>")
		}
		return c.Rename(ctx, args[0], args[1])
	case "visibility":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox visibility <folderID>")
		}
		return c.Visibility(ctx, args[0])
	case "rm":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox rm <folderID>")
		}
		return c.Rm(ctx, args[0])
	case "like":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox like <folderID>")
		}
		return c.Like(ctx, args[0])
	case "search":
		return c.Search(ctx)
	case "file":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox file <fileID>")
		}
		return c.File(ctx, args[0])
	case "filecomment":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox filecomment <fileID>")
		}
		return c.FileComment(ctx, args[0])
	case "comments":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox comments <folderID>")
		}
		return c.Comments(ctx, args[0])
	case "comment":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox comment <folderID>")
		}
		return c.Comment(ctx, args[0])
	case "user":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox user <userID>")
		}
		return c.User(ctx, args[0])
	case "follow":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox follow <userID>")
		}
		return c.Follow(ctx, args[0])
	case "chats":
		return c.Chats(ctx)
	case "chat":
		if len(args) != 1 {
			return fmt.Errorf("usage: sharebox chat <userID>")
		}
		return c.Chat(ctx, args[0])
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func printVersion() {
	fmt.Printf("ShareBox Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
