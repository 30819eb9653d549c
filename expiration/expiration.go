// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/samber/mo"
)

/*
Policy is the interface every expiration rule follows. The cache never looks at
timestamps itself: it asks the policy to stamp an entry on write and to judge it on read.

A policy is fixed for the lifetime of a cache.
*/
type Policy interface {

	// Stamp returns the timestamp to store with an entry written at now.
	// Policies without a TTL return None.
	Stamp(now time.Time) mo.Option[time.Time]

	// IsExpired reports whether an entry stamped with insertedAt is expired at now.
	IsExpired(insertedAt mo.Option[time.Time], now time.Time) bool

	// TTL returns the configured time-to-live, if any.
	TTL() mo.Option[time.Duration]
}

// ForTTL picks the policy matching an optional TTL.
func ForTTL(ttl mo.Option[time.Duration]) Policy {
	if d, ok := ttl.Get(); ok {
		return &AfterWrite{After: d}
	}
	return Never{}
}
