package expiration

import (
	"time"

	"github.com/samber/mo"
)

/*
AfterWrite implements "expire after write": an entry lives for After measured from its
most recent insertion. Reads never extend it; only overwriting the key resets the clock.
*/
type AfterWrite struct {

	// After is how long an entry stays valid once it is written.
	After time.Duration
}

// Stamp records the write time.
func (a *AfterWrite) Stamp(now time.Time) mo.Option[time.Time] {
	return mo.Some(now)
}

/*
IsExpired checks whether the entry is expired at this moment.

The boundary is inclusive: an entry whose age equals After is already expired.
An entry without a timestamp was not written under this policy and never expires.
*/
func (a *AfterWrite) IsExpired(insertedAt mo.Option[time.Time], now time.Time) bool {
	t, ok := insertedAt.Get()
	if !ok {
		return false
	}
	return now.Sub(t) >= a.After
}

// TTL returns After.
func (a *AfterWrite) TTL() mo.Option[time.Duration] {
	return mo.Some(a.After)
}
