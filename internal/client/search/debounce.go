package search

import (
	"context"
	"sync"
	"time"
)

// Debouncer collapses a stream of inputs into network calls: a new input
// inside the delay window supersedes the pending one, and a completion for
// anything but the latest issued call is discarded. Last write wins by
// issuance order, not by response arrival.
type Debouncer[T any] struct {
	fetch   func(ctx context.Context, query string) (T, error)
	deliver func(query string, result T)
	onError func(query string, err error)
	timer   *time.Timer
	delay   time.Duration
	seq     uint64
	closed  bool
	mu      sync.Mutex
}

// NewDebouncer creates a debouncer. deliver receives results on the fetch
// goroutine; onError may be nil, then failures are dropped the way a
// suggestion box silently shows nothing.
func NewDebouncer[T any](
	delay time.Duration,
	fetch func(ctx context.Context, query string) (T, error),
	deliver func(query string, result T),
	onError func(query string, err error),
) *Debouncer[T] {
	return &Debouncer[T]{
		delay:   delay,
		fetch:   fetch,
		deliver: deliver,
		onError: onError,
	}
}

// Input registers the latest value of the input field. The pending timer,
// if any, is cancelled: only the newest input can fire. An empty input
// clears results immediately without a network call.
func (d *Debouncer[T]) Input(ctx context.Context, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	// Invalidate any call already in flight: its completion must not
	// overwrite what the newer input produces.
	d.seq++

	if query == "" {
		// The clear is asynchronous too, so it goes through the same
		// generation check: a clear scheduled late must not wipe the
		// results of a newer input.
		issued := d.seq
		go func() {
			d.mu.Lock()
			stale := d.closed || issued != d.seq
			d.mu.Unlock()
			if stale {
				return
			}
			var zero T
			d.deliver(query, zero)
		}()
		return
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(ctx, query)
	})
}

// Close cancels the pending timer and discards any in-flight completion.
// Navigating away from the consuming view must call this.
func (d *Debouncer[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

func (d *Debouncer[T]) fire(ctx context.Context, query string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.seq++
	issued := d.seq
	d.mu.Unlock()

	result, err := d.fetch(ctx, query)

	d.mu.Lock()
	stale := d.closed || issued != d.seq
	d.mu.Unlock()
	if stale {
		// A newer call was issued (or the consumer is gone) while this
		// one was in flight; its result is dead.
		return
	}

	if err != nil {
		if d.onError != nil {
			d.onError(query, err)
		}
		return
	}
	d.deliver(query, result)
}
