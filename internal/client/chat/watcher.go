package chat

import (
	"context"
	"sync/atomic"
	"time"

	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// DefaultPollInterval matches the conversation refresh cadence of the web
// client.
const DefaultPollInterval = 3500 * time.Millisecond

// MessageSource issues the conversation fetch
type MessageSource interface {
	Messages(ctx context.Context, userID pkgapi.ID) ([]pkgapi.Message, error)
}

// Watcher refreshes a direct conversation on a fixed interval. A tick is
// skipped while a poll is still outstanding, so polls never overlap. When
// the context is cancelled the loop stops and any in-flight result is
// discarded rather than delivered to a consumer that navigated away.
type Watcher struct {
	api      MessageSource
	deliver  func(messages []pkgapi.Message)
	onError  func(err error)
	peer     pkgapi.ID
	interval time.Duration
	busy     atomic.Bool
}

// NewWatcher creates a conversation watcher. onError may be nil; poll
// failures then pass silently until the next tick, the way the page keeps
// showing the last good state.
func NewWatcher(api MessageSource, peer pkgapi.ID, interval time.Duration, deliver func([]pkgapi.Message), onError func(error)) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		api:      api,
		peer:     peer,
		interval: interval,
		deliver:  deliver,
		onError:  onError,
	}
}

// Run polls until ctx is cancelled. The first poll is immediate. Blocking;
// callers run it in a goroutine per watched conversation.
func (w *Watcher) Run(ctx context.Context) {
	w.poll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	// Previous poll still outstanding: skip this tick entirely
	if !w.busy.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer w.busy.Store(false)

		messages, err := w.api.Messages(ctx, w.peer)
		if ctx.Err() != nil {
			// The view is gone; a late result must not reach it
			return
		}
		if err != nil {
			if w.onError != nil {
				w.onError(err)
			}
			return
		}
		w.deliver(messages)
	}()
}
