package engine

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/mo"

	"github.com/krisalay/simple-cache/expiration"
	"github.com/krisalay/simple-cache/types"
)

/*
CacheEngine is the "brain" of the cache.
It is responsible for the "behavior" of the cache, NOT storage.

It decides:
- What timestamp a written entry carries
- Whether a stored entry is expired right now
- Which clock "now" comes from
- Where events are reported

It does NOT:
- Store data
- Remove entries
- Handle locking
*/
type CacheEngine struct {

	// Expiration controls when an entry is considered too old.
	// It is fixed for the lifetime of the cache.
	Expiration expiration.Policy

	// Clock is the single source of "now" for both stamping and checking.
	// Reading both from the same clock keeps elapsed time non-negative.
	Clock clockwork.Clock

	// Metrics records hits, misses, expirations and loads.
	Metrics types.Metrics
}

/*
NewCacheEngine creates a CacheEngine.
Nil arguments are replaced with defaults: no expiration, the real clock, no metrics.
*/
func NewCacheEngine(
	exp expiration.Policy,
	clock clockwork.Clock,
	metrics types.Metrics,
) *CacheEngine {
	if exp == nil {
		exp = expiration.Never{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}

	return &CacheEngine{
		Expiration: exp,
		Clock:      clock,
		Metrics:    metrics,
	}
}

// Stamp returns the timestamp for an entry written now.
func (e *CacheEngine) Stamp() mo.Option[time.Time] {
	return e.StampAt(e.Clock.Now())
}

// StampAt is Stamp for a caller that already read the clock, e.g. a batch insert.
func (e *CacheEngine) StampAt(now time.Time) mo.Option[time.Time] {
	return e.Expiration.Stamp(now)
}

/*
IsExpired checks whether an entry stamped with insertedAt is expired.

BEHAVIOR:
---------
- Delegates the decision to the Expiration policy
- Reads the clock at call time, so the answer is exact for this instant
*/
func (e *CacheEngine) IsExpired(insertedAt mo.Option[time.Time]) bool {
	return e.IsExpiredAt(insertedAt, e.Clock.Now())
}

// IsExpiredAt is IsExpired against a clock reading taken by the caller.
func (e *CacheEngine) IsExpiredAt(insertedAt mo.Option[time.Time], now time.Time) bool {
	return e.Expiration.IsExpired(insertedAt, now)
}

// Now reads the engine's clock.
func (e *CacheEngine) Now() time.Time {
	return e.Clock.Now()
}
