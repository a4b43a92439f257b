package ratelimit

import (
	"time"

	"go.uber.org/zap"

	"github.com/on-the-ground/toolkit_ive_go/shared/logging"
	"github.com/on-the-ground/toolkit_ive_go/shared/options"
)

const defaultShards = 16

type config struct {
	clock   func() time.Time
	logger  *zap.Logger
	leading bool
	shards  int
}

// Option configures throttlers and debouncers.
type Option = options.Option[config]

func newConfig(opts []Option) *config {
	return options.Apply(&config{
		clock:  time.Now,
		logger: zap.NewNop(),
		shards: defaultShards,
	}, opts...)
}

// WithClock replaces time.Now. Only Throttler consults the clock; timers
// always run on wall time.
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logging.OrNop(logger)
	}
}

// WithLeading lets the very first call through a Throttler.
// By default the first window opens when the throttler is created.
func WithLeading() Option {
	return func(c *config) {
		c.leading = true
	}
}

// WithShards sets the number of shards of a KeyedDebouncer.
func WithShards(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shards = n
		}
	}
}
