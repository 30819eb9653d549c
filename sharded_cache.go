package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"golang.org/x/sync/singleflight"

	"github.com/krisalay/simple-cache/api"
	"github.com/krisalay/simple-cache/shard"
	"github.com/krisalay/simple-cache/types"
)

// ErrNoLoader is returned by GetOrLoad on a cache built without a loader.
var ErrNoLoader = errors.New("cache: no loader configured")

var _ api.Cache[string, any] = (*ShardedCache[string, any])(nil)

/*
ShardedCache is a Cache that is safe for concurrent use.
This struct is the orchestrator that connects:
- shards, each one a Cache behind its own mutex
- the selector routing keys to shards
- an optional loader for read-through reads

Expiration works exactly as in Cache. All shards share one policy, clock and
metrics, so Metrics implementations must be safe for concurrent use.
*/
type ShardedCache[K comparable, V any] struct {
	// shards are the actual storage units. Each shard is an independent Cache.
	shards []*shard.Shard[K, V]

	// selector decides which shard a key goes to.
	selector shard.Selector[K, V]

	// loader produces values for GetOrLoad on a miss. May be nil.
	loader types.Loader[K, V]

	metrics types.Metrics

	// sf makes concurrent GetOrLoad calls for one key share a single Load.
	sf singleflight.Group
}

/*
NewShardedCache creates a concurrent cache split into the given number of shards.
shards < 1 is treated as 1. loader may be nil if GetOrLoad is never used.
Options are the same as for New and apply to every shard.
*/
func NewShardedCache[K comparable, V any](
	shards int,
	loader types.Loader[K, V],
	opts ...Option,
) *ShardedCache[K, V] {
	if shards < 1 {
		shards = 1
	}

	e := newConfig(opts).engine()

	s := make([]*shard.Shard[K, V], shards)
	for i := range s {
		s[i] = shard.NewShard[K, V](newCache[K, V](e))
	}

	return &ShardedCache[K, V]{
		shards:   s,
		selector: shard.NewHashSelector[K, V](),
		loader:   loader,
		metrics:  e.Metrics,
	}
}

// Insert stores value under key. See Cache.Insert.
func (c *ShardedCache[K, V]) Insert(key K, value V) (prev mo.Option[V]) {
	c.shardFor(key).With(func(s api.Cache[K, V]) {
		prev = s.Insert(key, value)
	})
	return prev
}

// Get retrieves the value stored under key. See Cache.Get.
func (c *ShardedCache[K, V]) Get(key K) (v mo.Option[V]) {
	c.shardFor(key).With(func(s api.Cache[K, V]) {
		v = s.Get(key)
	})
	return v
}

// Contains reports whether key holds a live entry.
func (c *ShardedCache[K, V]) Contains(key K) (ok bool) {
	c.shardFor(key).With(func(s api.Cache[K, V]) {
		ok = s.Contains(key)
	})
	return ok
}

// Remove deletes key and returns the value it held. See Cache.Remove.
func (c *ShardedCache[K, V]) Remove(key K) (v mo.Option[V]) {
	c.shardFor(key).With(func(s api.Cache[K, V]) {
		v = s.Remove(key)
	})
	return v
}

// Len returns the number of stored entries across all shards.
// Shards are counted one at a time, so the total is not an atomic snapshot.
func (c *ShardedCache[K, V]) Len() int {
	n := 0
	for _, sh := range c.shards {
		sh.With(func(s api.Cache[K, V]) {
			n += s.Len()
		})
	}
	return n
}

// Purge removes expired entries from every shard, one shard at a time.
func (c *ShardedCache[K, V]) Purge() int {
	removed := 0
	for _, sh := range c.shards {
		sh.With(func(s api.Cache[K, V]) {
			removed += s.Purge()
		})
	}
	return removed
}

/*
GetOrLoad returns the cached value for key, loading it on a miss.

BEHAVIOR:
---------
1. Live entry: return it
2. Missing or expired: call the loader and cache the result
3. Concurrent callers missing on the same key wait for one shared Load
4. A loader error is returned wrapped and nothing is cached

CANCELLATION:
-------------
The shared Load gets the values of the first caller's ctx but not its cancellation,
so one caller giving up never fails the others. Each caller stops waiting when its
own ctx is done and gets ctx.Err(); the Load keeps running and still fills the cache.
*/
func (c *ShardedCache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	var zero V

	if v, ok := c.Get(key).Get(); ok {
		return v, nil
	}
	if c.loader == nil {
		return zero, ErrNoLoader
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(flightKey(key), func() (any, error) {
		c.metrics.Load()

		v, err := c.loader.Load(loadCtx, key)
		if err != nil {
			return nil, err
		}

		// Store before returning so callers arriving after the flight hit the cache.
		c.Insert(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, fmt.Errorf("cache: load %v: %w", key, res.Err)
		}
		v, _ := res.Val.(V)
		return v, nil
	}
}

func (c *ShardedCache[K, V]) shardFor(key K) *shard.Shard[K, V] {
	return c.selector.Select(key, c.shards)
}

// flightKey turns any comparable key into a singleflight key.
// The dynamic type is part of it: int(1) and int64(1) in a K of type any are different keys.
func flightKey[K comparable](key K) string {
	return fmt.Sprintf("%T:%#v", key, key)
}
