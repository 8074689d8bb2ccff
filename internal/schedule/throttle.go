// Package schedule rate-limits event handlers. Throttle time-slices a handler
// to one run per interval; Debouncer collapses bursts into a single trailing
// run. Both are driven by the caller's clock so Bubble Tea hosts and tests can
// feed timestamps explicitly.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Throttle ensures a minimum interval between successive operations.
type Throttle struct {
	interval time.Duration

	mu      sync.Mutex
	next    time.Time
	pending bool
}

// NewThrottle returns a throttle admitting one operation per interval. A
// non-positive interval admits everything.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		return &Throttle{}
	}
	return &Throttle{interval: interval}
}

// Interval returns the configured window.
func (t *Throttle) Interval() time.Duration {
	if t == nil {
		return 0
	}
	return t.interval
}

// Allow reports whether an operation may run at now. A rejected call is
// recorded as pending until the next admitted call or Flush.
func (t *Throttle) Allow(now time.Time) bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if now.Before(t.next) {
		t.pending = true
		return false
	}
	t.next = now.Add(t.interval)
	t.pending = false
	return true
}

// Flush consumes the pending marker. It returns true when a call was dropped
// since the last admitted one and the window has elapsed at now; the caller
// should then run the operation once with its latest input.
func (t *Throttle) Flush(now time.Time) bool {
	if t == nil || t.interval <= 0 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.pending || now.Before(t.next) {
		return false
	}
	t.pending = false
	t.next = now.Add(t.interval)
	return true
}

// Pending reports whether a dropped call is waiting for Flush.
func (t *Throttle) Pending() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Wait blocks until the next slot opens or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.interval <= 0 {
		return ctx.Err()
	}
	for {
		t.mu.Lock()
		wait := time.Until(t.next)
		if wait <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return nil
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
