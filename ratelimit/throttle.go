// Package ratelimit gates how often functions run.
//
// A Throttler lets a call through only when at least delay has passed since
// the last call it let through. A Debouncer postpones a call until the caller
// has been idle for a while, keeping only the latest argument. Keyed variants
// apply the same gating independently per string key.
package ratelimit

import (
	"sync"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Throttler admits at most one call per delay.
type Throttler struct {
	mu     sync.Mutex
	delay  time.Duration
	last   time.Time
	clock  func() time.Time
	logger *zap.Logger
}

// NewThrottler returns a Throttler whose first window opens now,
// unless WithLeading is given.
func NewThrottler(delay time.Duration, opts ...Option) *Throttler {
	cfg := newConfig(opts)
	last := cfg.clock()
	if cfg.leading {
		last = last.Add(-delay)
	}
	return &Throttler{
		delay:  delay,
		last:   last,
		clock:  cfg.clock,
		logger: cfg.logger,
	}
}

// Allow reports whether a call may run now, and if so starts a new window.
func (t *Throttler) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	if now.Sub(t.last) < t.delay {
		t.logger.Debug("throttled", zap.Duration("remaining", t.delay-now.Sub(t.last)))
		return false
	}
	t.last = now
	return true
}

// Window is the current span during which calls are rejected.
func (t *Throttler) Window() timespan.TimeSpan {
	t.mu.Lock()
	defer t.mu.Unlock()
	return timespan.BetweenTimes(t.last, t.last.Add(t.delay))
}

// Throttle wraps fn so it runs at most once per delay. Rejected calls return
// the zero R and false.
func Throttle[A, R any](delay time.Duration, fn func(A) R, opts ...Option) func(A) (R, bool) {
	t := NewThrottler(delay, opts...)
	return func(a A) (R, bool) {
		if !t.Allow() {
			var zero R
			return zero, false
		}
		return fn(a), true
	}
}
