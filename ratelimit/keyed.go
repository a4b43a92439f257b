package ratelimit

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// KeyedThrottle throttles each key independently. A key is admitted when it
// holds no live entry; admitting it stores an entry that expires after delay.
// Expiry runs on wall time, so WithClock does not apply.
type KeyedThrottle struct {
	delay  time.Duration
	cache  *gocache.Cache
	logger *zap.Logger
}

// NewKeyedThrottle returns a KeyedThrottle admitting each key once per delay.
func NewKeyedThrottle(delay time.Duration, opts ...Option) *KeyedThrottle {
	cfg := newConfig(opts)
	cleanup := 2 * delay
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &KeyedThrottle{
		delay:  delay,
		cache:  gocache.New(delay, cleanup),
		logger: cfg.logger,
	}
}

// Allow reports whether key may run now.
func (k *KeyedThrottle) Allow(key string) bool {
	if k.delay <= 0 {
		return true
	}
	if err := k.cache.Add(key, struct{}{}, k.delay); err != nil {
		k.logger.Debug("throttled", zap.String("key", key))
		return false
	}
	return true
}

// Reset forgets key so its next call is admitted.
func (k *KeyedThrottle) Reset(key string) {
	k.cache.Delete(key)
}

// Len is the number of tracked keys, including expired ones not yet cleaned up.
func (k *KeyedThrottle) Len() int {
	return k.cache.ItemCount()
}

type debounceShard[A any] struct {
	mu         sync.Mutex
	debouncers map[string]*Debouncer[A]
}

// KeyedDebouncer debounces each key independently. Keys are spread over
// shards by hash so unrelated keys rarely contend on the same lock.
type KeyedDebouncer[A any] struct {
	idle   time.Duration
	fn     func(string, A)
	opts   []Option
	shards []*debounceShard[A]
}

// NewKeyedDebouncer returns a KeyedDebouncer calling fn(key, a) once key has
// been idle for idle.
func NewKeyedDebouncer[A any](idle time.Duration, fn func(key string, a A), opts ...Option) *KeyedDebouncer[A] {
	cfg := newConfig(opts)
	shards := make([]*debounceShard[A], cfg.shards)
	for i := range shards {
		shards[i] = &debounceShard[A]{debouncers: make(map[string]*Debouncer[A])}
	}
	return &KeyedDebouncer[A]{idle: idle, fn: fn, opts: opts, shards: shards}
}

func (k *KeyedDebouncer[A]) shardOf(key string) *debounceShard[A] {
	return k.shards[getIndexByHash(key, len(k.shards))]
}

// Call schedules fn(key, a), replacing any call still waiting for key.
func (k *KeyedDebouncer[A]) Call(key string, a A) {
	sh := k.shardOf(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	d, ok := sh.debouncers[key]
	if !ok {
		d = Debounce(k.idle, func(a A) {
			k.fn(key, a)
			sh.release(key, d)
		}, k.opts...)
		sh.debouncers[key] = d
	}
	d.Call(a)
}

// release drops d once it has nothing left to run.
func (sh *debounceShard[A]) release(key string, d *Debouncer[A]) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if cur, ok := sh.debouncers[key]; ok && cur == d && !d.Pending() {
		delete(sh.debouncers, key)
	}
}

// Flush runs the call pending for key immediately.
func (k *KeyedDebouncer[A]) Flush(key string) bool {
	sh := k.shardOf(key)
	sh.mu.Lock()
	d, ok := sh.debouncers[key]
	sh.mu.Unlock()
	if !ok {
		return false
	}
	return d.Flush()
}

// Stop drops every pending call.
func (k *KeyedDebouncer[A]) Stop() {
	for _, sh := range k.shards {
		sh.mu.Lock()
		for key, d := range sh.debouncers {
			d.Stop()
			delete(sh.debouncers, key)
		}
		sh.mu.Unlock()
	}
}

// Len is the number of keys with a debouncer.
func (k *KeyedDebouncer[A]) Len() int {
	n := 0
	for _, sh := range k.shards {
		sh.mu.Lock()
		n += len(sh.debouncers)
		sh.mu.Unlock()
	}
	return n
}
