package types

import (
	"time"

	"github.com/samber/mo"
)

// Entry is what the cache stores for one key.
// InsertedAt is present only when the cache has a TTL.
type Entry[V any] struct {
	Value      V
	InsertedAt mo.Option[time.Time]
}
