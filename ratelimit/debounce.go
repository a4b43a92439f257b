package ratelimit

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Debouncer runs fn once the caller has been idle for the configured
// duration, with the argument of the latest call.
type Debouncer[A any] struct {
	mu      sync.Mutex
	idle    time.Duration
	fn      func(A)
	logger  *zap.Logger
	timer   *time.Timer
	arg     A
	pending bool
	gen     uint64
}

// Debounce returns a Debouncer for fn.
func Debounce[A any](idle time.Duration, fn func(A), opts ...Option) *Debouncer[A] {
	cfg := newConfig(opts)
	return &Debouncer[A]{
		idle:   idle,
		fn:     fn,
		logger: cfg.logger,
	}
}

// Call schedules fn(a), cancelling and replacing any call still waiting.
func (d *Debouncer[A]) Call(a A) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.logger.Debug("debounced call replaced")
	}
	d.arg = a
	d.pending = true
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.idle, func() { d.fire(gen) })
}

// fire runs the call scheduled as generation gen unless it was superseded.
func (d *Debouncer[A]) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || d.gen != gen {
		d.mu.Unlock()
		return
	}
	a := d.take()
	d.mu.Unlock()

	d.fn(a)
}

// take clears the pending call and returns its argument. d.mu must be held.
func (d *Debouncer[A]) take() A {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	a := d.arg
	var zero A
	d.arg = zero
	d.pending = false
	return a
}

// Flush runs the pending call immediately. It reports whether one was pending.
func (d *Debouncer[A]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	a := d.take()
	d.mu.Unlock()

	d.fn(a)
	return true
}

// Stop drops the pending call. It reports whether one was pending.
func (d *Debouncer[A]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending {
		return false
	}
	d.take()
	return true
}

// Pending reports whether a call is waiting to run.
func (d *Debouncer[A]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
