package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// collector gathers deliveries across goroutines
type collector struct {
	mu      sync.Mutex
	queries []string
	done    chan struct{}
}

func newCollector() *collector {
	return &collector{done: make(chan struct{}, 16)}
}

func (c *collector) deliver(query string, _ []string) {
	c.mu.Lock()
	c.queries = append(c.queries, query)
	c.mu.Unlock()
	c.done <- struct{}{}
}

func (c *collector) delivered() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.queries))
	copy(out, c.queries)
	return out
}

func (c *collector) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

// Rapid successive inputs inside the delay window collapse into a single
// fetch for the newest input.
func TestDebouncer_CollapsesRapidInputs(t *testing.T) {
	var mu sync.Mutex
	var fetched []string

	fetch := func(ctx context.Context, query string) ([]string, error) {
		mu.Lock()
		fetched = append(fetched, query)
		mu.Unlock()
		return []string{query}, nil
	}

	c := newCollector()
	d := NewDebouncer(20*time.Millisecond, fetch, c.deliver, nil)
	defer d.Close()

	ctx := context.Background()
	d.Input(ctx, "a")
	d.Input(ctx, "ab")

	c.wait(t)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"ab"}, fetched)
	assert.Equal(t, []string{"ab"}, c.delivered())
}

// An in-flight completion for a superseded input must never be delivered,
// even when it finishes after the newer one.
func TestDebouncer_StaleCompletionDiscarded(t *testing.T) {
	release := make(chan struct{})

	fetch := func(ctx context.Context, query string) ([]string, error) {
		if query == "slow" {
			<-release
		}
		return []string{query}, nil
	}

	c := newCollector()
	d := NewDebouncer(5*time.Millisecond, fetch, c.deliver, nil)
	defer d.Close()

	ctx := context.Background()
	d.Input(ctx, "slow")

	// Let the slow fetch get issued, then supersede it
	time.Sleep(20 * time.Millisecond)
	d.Input(ctx, "fresh")

	c.wait(t)
	close(release)

	// Give the released slow call a chance to (incorrectly) deliver
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []string{"fresh"}, c.delivered())
}

// An empty input clears results immediately, with no network call
func TestDebouncer_EmptyInputClearsImmediately(t *testing.T) {
	fetchCalls := 0
	fetch := func(ctx context.Context, query string) ([]string, error) {
		fetchCalls++
		return nil, nil
	}

	c := newCollector()
	d := NewDebouncer(20*time.Millisecond, fetch, c.deliver, nil)
	defer d.Close()

	d.Input(context.Background(), "")
	c.wait(t)

	assert.Equal(t, []string{""}, c.delivered())
	assert.Equal(t, 0, fetchCalls)
}

// An empty input also cancels whatever was pending
func TestDebouncer_EmptyInputCancelsPending(t *testing.T) {
	fetched := make(chan string, 1)
	fetch := func(ctx context.Context, query string) ([]string, error) {
		fetched <- query
		return nil, nil
	}

	c := newCollector()
	d := NewDebouncer(20*time.Millisecond, fetch, c.deliver, nil)
	defer d.Close()

	ctx := context.Background()
	d.Input(ctx, "abc")
	d.Input(ctx, "")

	c.wait(t)

	select {
	case q := <-fetched:
		t.Fatalf("pending fetch for %q should have been cancelled", q)
	case <-time.After(60 * time.Millisecond):
	}
}

// A clear scheduled for an empty input must not land after the delivery
// of a newer non-empty input and wipe its results.
func TestDebouncer_ClearNeverOvertakesNewerInput(t *testing.T) {
	fetch := func(ctx context.Context, query string) ([]string, error) {
		return []string{query}, nil
	}

	c := newCollector()
	d := NewDebouncer(5*time.Millisecond, fetch, c.deliver, nil)
	defer d.Close()

	ctx := context.Background()
	d.Input(ctx, "")
	d.Input(ctx, "abc")

	deadline := time.After(2 * time.Second)
	for {
		got := c.delivered()
		if len(got) > 0 && got[len(got)-1] == "abc" {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %q, got %v", "abc", got)
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Give the superseded clear a chance to (incorrectly) deliver
	time.Sleep(30 * time.Millisecond)
	got := c.delivered()
	assert.Equal(t, "abc", got[len(got)-1])
}

func TestDebouncer_CloseDiscardsPending(t *testing.T) {
	fetchCalls := 0
	fetch := func(ctx context.Context, query string) ([]string, error) {
		fetchCalls++
		return nil, nil
	}

	c := newCollector()
	d := NewDebouncer(20*time.Millisecond, fetch, c.deliver, nil)

	d.Input(context.Background(), "abc")
	d.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, fetchCalls)
	assert.Empty(t, c.delivered())

	// Inputs after Close are ignored
	d.Input(context.Background(), "def")
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, c.delivered())
}

func TestDebouncer_FetchErrorGoesToOnError(t *testing.T) {
	wantErr := errors.New("search backend down")
	fetch := func(ctx context.Context, query string) ([]string, error) {
		return nil, wantErr
	}

	errs := make(chan error, 1)
	c := newCollector()
	d := NewDebouncer(5*time.Millisecond, fetch, c.deliver, func(query string, err error) {
		errs <- err
	})
	defer d.Close()

	d.Input(context.Background(), "abc")

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, wantErr)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}
	assert.Empty(t, c.delivered())
}

func TestNewFolderSuggester_DefaultDelay(t *testing.T) {
	api := &stubSearcher{}
	d := NewFolderSuggester(api, 0, func(string, []pkgapi.Folder) {})
	defer d.Close()

	require.NotNil(t, d)
	assert.Equal(t, DefaultFolderDelay, d.delay)
}

func TestNewUsernameSuggester_DefaultDelay(t *testing.T) {
	api := &stubUsernames{}
	d := NewUsernameSuggester(api, 0, func(string, []string) {})
	defer d.Close()

	require.NotNil(t, d)
	assert.Equal(t, DefaultUsernameDelay, d.delay)
}

type stubSearcher struct{}

func (s *stubSearcher) SearchFolders(ctx context.Context, query string) ([]pkgapi.Folder, error) {
	return nil, nil
}

type stubUsernames struct{}

func (s *stubUsernames) UsernameSuggestions(ctx context.Context, username string) ([]string, error) {
	return nil, nil
}
