package expiration

import (
	"time"

	"github.com/samber/mo"
)

// Never is the policy of a cache built without a TTL. It behaves like a plain map.
type Never struct{}

// Stamp always returns None.
func (Never) Stamp(time.Time) mo.Option[time.Time] {
	return mo.None[time.Time]()
}

// IsExpired always returns false.
func (Never) IsExpired(mo.Option[time.Time], time.Time) bool {
	return false
}

// TTL always returns None.
func (Never) TTL() mo.Option[time.Duration] {
	return mo.None[time.Duration]()
}
