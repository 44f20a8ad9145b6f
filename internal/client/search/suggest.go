package search

import (
	"context"
	"time"

	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Default debounce windows, matching the UI's feel: folder search fires a
// touch faster than username suggestions.
const (
	DefaultFolderDelay   = 300 * time.Millisecond
	DefaultUsernameDelay = 350 * time.Millisecond
)

// FolderSearcher issues the folder search call
type FolderSearcher interface {
	SearchFolders(ctx context.Context, query string) ([]pkgapi.Folder, error)
}

// UsernameSource issues the username suggestions call
type UsernameSource interface {
	UsernameSuggestions(ctx context.Context, username string) ([]string, error)
}

// NewFolderSuggester returns a debouncer over incremental folder search
func NewFolderSuggester(api FolderSearcher, delay time.Duration, deliver func(query string, folders []pkgapi.Folder)) *Debouncer[[]pkgapi.Folder] {
	if delay <= 0 {
		delay = DefaultFolderDelay
	}
	return NewDebouncer(delay, api.SearchFolders, deliver, nil)
}

// NewUsernameSuggester returns a debouncer over username availability
// suggestions during registration
func NewUsernameSuggester(api UsernameSource, delay time.Duration, deliver func(username string, suggestions []string)) *Debouncer[[]string] {
	if delay <= 0 {
		delay = DefaultUsernameDelay
	}
	return NewDebouncer(delay, api.UsernameSuggestions, deliver, nil)
}
