package layout

import "sync/atomic"

// SettleToken tracks one deferred continuation queued with Layout.RunAfterSettle.
// A cancelled token must not run its continuation.
type SettleToken struct {
	cancelled atomic.Bool
	done      atomic.Bool
}

// NewSettleToken returns a live token.
func NewSettleToken() *SettleToken {
	return &SettleToken{}
}

// Cancel invalidates the token. Safe to call more than once or on nil.
func (t *SettleToken) Cancel() {
	if t == nil {
		return
	}
	t.cancelled.Store(true)
}

// Valid reports whether the continuation may still run.
func (t *SettleToken) Valid() bool {
	return t != nil && !t.cancelled.Load() && !t.done.Load()
}

// Cancelled reports whether Cancel was called.
func (t *SettleToken) Cancelled() bool {
	return t != nil && t.cancelled.Load()
}

// Done reports whether the continuation already ran.
func (t *SettleToken) Done() bool {
	return t != nil && t.done.Load()
}

// markDone records that the continuation ran; it reports false if the token
// was cancelled or already consumed.
func (t *SettleToken) markDone() bool {
	if t == nil || t.cancelled.Load() {
		return false
	}
	return t.done.CompareAndSwap(false, true)
}

// Run executes fn if the token is still valid and marks it consumed.
// Layout implementations outside this package use it to honor cancellation.
func (t *SettleToken) Run(fn func()) bool {
	if !t.markDone() {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}
