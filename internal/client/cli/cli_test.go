package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharebox/sharebox/internal/client/access"
	clientapi "github.com/sharebox/sharebox/internal/client/api"
	"github.com/sharebox/sharebox/internal/client/dialog"
	"github.com/sharebox/sharebox/internal/client/guard"
	"github.com/sharebox/sharebox/internal/client/session"
	"github.com/sharebox/sharebox/internal/config"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:        baseURL,
		HTTPTimeout:    5 * time.Second,
		PollInterval:   10 * time.Millisecond,
		SearchDebounce: 10 * time.Millisecond,
	}
}

// newTestCli wires the full client stack against an httptest handler
func newTestCli(t *testing.T, handler http.Handler, dialogs dialog.Dialogs) (*Cli, *session.Store) {
	t.Helper()
	c, store, _ := newPersistentCli(t, handler, dialogs, nil)
	return c, store
}

// newPersistentCli is newTestCli with a session storage backend attached.
// Calling it twice with the same storage simulates consecutive process
// invocations sharing one database file.
func newPersistentCli(t *testing.T, handler http.Handler, dialogs dialog.Dialogs, storage session.Storage) (*Cli, *session.Store, string) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStore(storage)
	api := clientapi.NewClient(server.URL, store, 5*time.Second)
	sessions := session.NewService(api, store, storage)
	gate := access.New(api, store, dialogs)

	return New(api, store, sessions, guard.New(store), gate, dialogs, testConfig(server.URL)), store, server.URL
}

// memSessionStorage is an in-memory session.Storage standing in for the
// bbolt file two processes would share
type memSessionStorage struct {
	rec *session.Record
}

func (m *memSessionStorage) SaveSession(ctx context.Context, rec *session.Record) error {
	m.rec = rec
	return nil
}

func (m *memSessionStorage) GetSession(ctx context.Context) (*session.Record, error) {
	if m.rec == nil {
		return nil, session.ErrSessionNotFound
	}
	return m.rec, nil
}

func (m *memSessionStorage) DeleteSession(ctx context.Context) error {
	if m.rec == nil {
		return session.ErrSessionNotFound
	}
	m.rec = nil
	return nil
}

func authenticate(store *session.Store) {
	store.Replace(session.Session{
		User:        &pkgapi.UserSummary{ID: 7, Username: "alice"},
		AccessToken: "token-abc",
	})
}

func TestCli_ProtectedCommandsRequireSession(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	c, _ := newTestCli(t, handler, &dialog.DialogsMock{})
	ctx := context.Background()

	commands := map[string]func() error{
		"feed":      func() error { return c.Feed(ctx) },
		"following": func() error { return c.Following(ctx) },
		"liked":     func() error { return c.Liked(ctx) },
		"mine":      func() error { return c.Mine(ctx) },
		"open":      func() error { return c.Open(ctx, "1") },
		"mkdir":     func() error { return c.Mkdir(ctx, "docs") },
		"like":      func() error { return c.Like(ctx, "1") },
		"search":    func() error { return c.Search(ctx) },
		"comments":  func() error { return c.Comments(ctx, "1") },
		"user":      func() error { return c.User(ctx, "1") },
		"chats":     func() error { return c.Chats(ctx) },
		"chat":      func() error { return c.Chat(ctx, "1") },
	}

	for name, cmd := range commands {
		t.Run(name, func(t *testing.T) {
			err := cmd()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not logged in")
		})
	}

	// The guard decided locally: nothing reached the network
	assert.Equal(t, 0, requests)
}

func TestCli_LoginThenFeed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Identifier)
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "access-1"})
	})
	mux.HandleFunc("/accounts/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(pkgapi.UserSummary{ID: 7, Username: "alice"})
	})
	mux.HandleFunc("/folders/feed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]pkgapi.Folder{{ID: 1, Name: "docs", IsPublic: true}})
	})

	dialogs := &dialog.DialogsMock{
		PromptFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "alice", true, nil
		},
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "password1", true, nil
		},
	}

	c, store := newTestCli(t, mux, dialogs)
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, false))
	assert.True(t, store.IsAuthenticated())

	require.NoError(t, c.Feed(ctx))
}

func TestCli_Login_InvalidCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	dialogs := &dialog.DialogsMock{
		PromptFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "alice", true, nil
		},
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "wrong-password", true, nil
		},
	}

	c, store := newTestCli(t, handler, dialogs)

	err := c.Login(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.False(t, store.IsAuthenticated())
}

// Each command runs in its own process. A session remembered by one
// invocation must let the next invocation run a protected command after
// the unlock prompt, with nothing but the shared database between them.
func TestCli_RememberedSessionHydratesNextInvocation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "access-1"})
	})
	mux.HandleFunc("/accounts/profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.UserSummary{ID: 7, Username: "alice"})
	})
	mux.HandleFunc("/folders/feed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]pkgapi.Folder{})
	})

	dialogs := &dialog.DialogsMock{
		PromptFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "alice", true, nil
		},
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "password1", true, nil
		},
	}

	storage := &memSessionStorage{}
	ctx := context.Background()

	// First invocation: login --remember, then the process dies
	first, firstStore, _ := newPersistentCli(t, mux, dialogs, storage)
	require.NoError(t, first.Login(ctx, true))
	require.True(t, firstStore.IsAuthenticated())

	// Second invocation: fresh empty store, same database
	second, secondStore, _ := newPersistentCli(t, mux, dialogs, storage)
	require.False(t, secondStore.IsAuthenticated())

	require.NoError(t, second.Feed(ctx))
	assert.True(t, secondStore.IsAuthenticated())
	assert.Equal(t, "alice", secondStore.CurrentUser().Username)
}

// A wrong unlock password at the hydration prompt fails the command
// without establishing anything.
func TestCli_HydrationWrongPassword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "access-1"})
	})
	mux.HandleFunc("/accounts/profile", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.UserSummary{ID: 7, Username: "alice"})
	})

	secret := "password1"
	dialogs := &dialog.DialogsMock{
		PromptFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "alice", true, nil
		},
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return secret, true, nil
		},
	}

	storage := &memSessionStorage{}
	ctx := context.Background()

	first, _, _ := newPersistentCli(t, mux, dialogs, storage)
	require.NoError(t, first.Login(ctx, true))

	secret = "not-the-password"
	second, secondStore, _ := newPersistentCli(t, mux, dialogs, storage)

	err := second.Feed(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrLocked)
	assert.False(t, secondStore.IsAuthenticated())
}

// An expired session discovered mid-command tears itself down: the next
// guard check goes back to the login hint.
func TestCli_ExpiredSessionTearsDownOnFirstUse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, store := newTestCli(t, handler, &dialog.DialogsMock{})
	authenticate(store)

	ctx := context.Background()
	err := c.Feed(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, clientapi.ErrUnauthorized)
	assert.False(t, store.IsAuthenticated())

	// The very next protected command is already blocked locally
	err = c.Mine(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestCli_Open_PrivateFolderPromptsOnce(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/folders/5", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("password") != "hunter2" {
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Message: "wrong password"})
			return
		}
		_ = json.NewEncoder(w).Encode(pkgapi.Folder{
			ID: 5, Name: "secrets", OwnerID: 9, OwnerUsername: "bob",
		})
	})
	mux.HandleFunc("/folders", func(w http.ResponseWriter, r *http.Request) {
		// Subfolder listing carries the verified secret without re-prompting
		assert.Equal(t, "hunter2", r.URL.Query().Get("password"))
		_ = json.NewEncoder(w).Encode([]pkgapi.Folder{})
	})
	filesListed := false
	mux.HandleFunc("/files", func(w http.ResponseWriter, r *http.Request) {
		// The file listing carries the verified secret too
		assert.Equal(t, "hunter2", r.URL.Query().Get("password"))
		filesListed = true
		_ = json.NewEncoder(w).Encode([]pkgapi.File{{ID: 11, Name: "notes.pdf", FolderID: 5}})
	})
	mux.HandleFunc("/folder-comments", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]pkgapi.Comment{})
	})

	prompts := 0
	dialogs := &dialog.DialogsMock{
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			prompts++
			return "hunter2", true, nil
		},
	}

	c, store := newTestCli(t, mux, dialogs)
	authenticate(store)

	require.NoError(t, c.Open(context.Background(), "5"))
	assert.Equal(t, 1, prompts)
	assert.True(t, filesListed)
}

func TestCli_File_PrivateFolderPromptsForSecret(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/files/8", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("password") != "hunter2" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(pkgapi.File{ID: 8, Name: "notes.pdf", FolderID: 5})
	})
	mux.HandleFunc("/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hunter2", r.URL.Query().Get("password"))
		_ = json.NewEncoder(w).Encode([]pkgapi.File{})
	})
	mux.HandleFunc("/file-comments", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]pkgapi.Comment{
			{ID: 1, FileID: 8, OwnerUsername: "bob", Text: "nice"},
		})
	})

	prompts := 0
	dialogs := &dialog.DialogsMock{
		AlertFunc: func(ctx context.Context, title, message string) error { return nil },
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			prompts++
			if prompts == 1 {
				return "wrong", true, nil
			}
			return "hunter2", true, nil
		},
	}

	c, store := newTestCli(t, mux, dialogs)
	authenticate(store)

	require.NoError(t, c.File(context.Background(), "8"))
	assert.Equal(t, 2, prompts)
	// The wrong password was surfaced before the second prompt
	assert.Len(t, dialogs.AlertCalls(), 1)
}

func TestCli_File_CancelledSecretIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/files/8", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	dialogs := &dialog.DialogsMock{
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "", false, nil
		},
	}

	c, store := newTestCli(t, mux, dialogs)
	authenticate(store)

	assert.NoError(t, c.File(context.Background(), "8"))
}

func TestCli_FileComment(t *testing.T) {
	var posted pkgapi.PostFileCommentRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/file-comments", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		_ = json.NewEncoder(w).Encode(pkgapi.Comment{ID: 2, FileID: posted.FileID, OwnerUsername: "alice", Text: posted.Text})
	})

	dialogs := &dialog.DialogsMock{
		PromptFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "great shot", true, nil
		},
	}

	c, store := newTestCli(t, mux, dialogs)
	authenticate(store)

	require.NoError(t, c.FileComment(context.Background(), "8"))
	assert.Equal(t, int64(8), posted.FileID.Int64())
	assert.Equal(t, "great shot", posted.Text)
}

func TestCli_Open_AbandonedIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/folders/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	dialogs := &dialog.DialogsMock{
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "", false, nil
		},
	}

	c, store := newTestCli(t, mux, dialogs)
	authenticate(store)

	assert.NoError(t, c.Open(context.Background(), "5"))
}

func TestCli_Mkdir_PrivateRequiresPassword(t *testing.T) {
	var created pkgapi.CreateFolderRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/folders", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		_ = json.NewEncoder(w).Encode(pkgapi.Folder{ID: 3, Name: created.Name})
	})

	dialogs := &dialog.DialogsMock{
		ConfirmFunc: func(ctx context.Context, title, message string) (bool, error) {
			return false, nil // not public
		},
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "hunter2", true, nil
		},
	}

	c, store := newTestCli(t, mux, dialogs)
	authenticate(store)

	require.NoError(t, c.Mkdir(context.Background(), "secrets"))
	assert.Equal(t, "secrets", created.Name)
	assert.False(t, created.IsPublic)
	assert.Equal(t, "hunter2", created.Secret)
}

func TestCli_Mkdir_PrivateCancelledPassword(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	dialogs := &dialog.DialogsMock{
		ConfirmFunc: func(ctx context.Context, title, message string) (bool, error) {
			return false, nil
		},
		PromptSecretFunc: func(ctx context.Context, title, message string) (string, bool, error) {
			return "", false, nil
		},
	}

	c, store := newTestCli(t, handler, dialogs)
	authenticate(store)

	err := c.Mkdir(context.Background(), "secrets")
	require.Error(t, err)
	assert.Equal(t, 0, requests)
}

func TestCli_Logout(t *testing.T) {
	c, store := newTestCli(t, http.NewServeMux(), &dialog.DialogsMock{})
	authenticate(store)

	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, store.IsAuthenticated())

	// Logging out twice is fine
	require.NoError(t, c.Logout(context.Background()))
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.Int64())

	_, err = parseID("abc")
	assert.Error(t, err)
}
