package board

import "sync/atomic"

// CancelToken is a small cooperative cancellation flag that can be
// shared with a UI goroutine that does nothing but call Cancel, so it
// is backed by atomic.Bool rather than a channel close. The DRC
// engine's Run does not read it: Run observes cancellation between
// checks only through its context.Context.
type CancelToken struct {
	cancelled atomic.Bool
}

// Cancel requests cancellation. Safe to call from any goroutine, any
// number of times.
func (t *CancelToken) Cancel() { t.cancelled.Store(true) }

// Cancelled reports whether Cancel has been called.
func (t *CancelToken) Cancelled() bool { return t.cancelled.Load() }
