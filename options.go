package cache

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/mo"

	"github.com/krisalay/simple-cache/engine"
	"github.com/krisalay/simple-cache/expiration"
	"github.com/krisalay/simple-cache/types"
)

// Option configures a cache at construction. Nothing can be changed afterwards.
type Option func(*config)

type config struct {
	ttl     mo.Option[time.Duration]
	clock   clockwork.Clock
	metrics types.Metrics
}

// WithTTL makes entries expire ttl after they were last inserted.
// A ttl <= 0 makes every entry expired as soon as it is written.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) { c.ttl = mo.Some(ttl) }
}

// WithClock replaces the real clock, typically with a fake one in tests.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithMetrics reports cache events to m.
func WithMetrics(m types.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

func newConfig(opts []Option) *config {
	c := &config{ttl: mo.None[time.Duration]()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) engine() *engine.CacheEngine {
	return engine.NewCacheEngine(expiration.ForTTL(c.ttl), c.clock, c.metrics)
}
