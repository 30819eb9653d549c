package cache

import (
	"time"

	"github.com/samber/mo"

	"github.com/krisalay/simple-cache/api"
	"github.com/krisalay/simple-cache/engine"
	"github.com/krisalay/simple-cache/types"
)

var _ api.Cache[string, any] = (*Cache[string, any])(nil)

/*
Cache is a key/value map whose entries can expire a fixed time after they were written.

Expiration is lazy. Nothing runs in the background: an entry is checked against the
clock when it is read, and removed right there if it is too old. An expired entry
that is never read again stays in memory until Remove, Purge or Clear.

A Cache is not safe for concurrent use. Guard it with your own lock,
or use ShardedCache.
*/
type Cache[K comparable, V any] struct {

	// items holds the stored entries, live or not.
	items map[K]*types.Entry[V]

	// engine contains the rules: expiration policy, clock and metrics.
	engine *engine.CacheEngine
}

/*
New creates an empty cache.

Without WithTTL the cache behaves as an ordinary unbounded map and nothing ever expires.
With WithTTL(d) every insertion is stamped and every lookup is subject to expiration.
*/
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	return newCache[K, V](newConfig(opts).engine())
}

func newCache[K comparable, V any](e *engine.CacheEngine) *Cache[K, V] {
	return &Cache[K, V]{
		items:  make(map[K]*types.Entry[V]),
		engine: e,
	}
}

/*
Insert stores value under key and returns the value it replaced.

If the cache has a TTL the entry is stamped with the current time, so overwriting
a key restarts its clock. The replaced value is returned even if it had expired.
*/
func (c *Cache[K, V]) Insert(key K, value V) mo.Option[V] {
	prev, ok := c.items[key]

	c.items[key] = &types.Entry[V]{
		Value:      value,
		InsertedAt: c.engine.Stamp(),
	}

	if !ok {
		return mo.None[V]()
	}
	return mo.Some(prev.Value)
}

// InsertBatch stores all items. They share one timestamp.
func (c *Cache[K, V]) InsertBatch(items map[K]V) {
	stamp := c.engine.Stamp()
	for k, v := range items {
		c.items[k] = &types.Entry[V]{Value: v, InsertedAt: stamp}
	}
}

/*
Get retrieves the value stored under key.

An expired entry is removed and reported as None, exactly like a key that was never
inserted. The clock is read on every call, so a value is never returned past its TTL.
*/
func (c *Cache[K, V]) Get(key K) mo.Option[V] {
	ent, ok := c.lookup(key)
	if !ok {
		return mo.None[V]()
	}
	return mo.Some(ent.Value)
}

// Contains reports whether key holds a live entry. An expired entry is removed.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.lookup(key)
	return ok
}

// Remove deletes key and returns the value it held, expired or not.
func (c *Cache[K, V]) Remove(key K) mo.Option[V] {
	ent, ok := c.items[key]
	if !ok {
		return mo.None[V]()
	}
	delete(c.items, key)

	if c.engine.IsExpired(ent.InsertedAt) {
		c.engine.Metrics.Expire()
	}
	return mo.Some(ent.Value)
}

// Len returns the number of stored entries, including expired ones nobody has read yet.
// Call Purge first for an exact count of live entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// IsEmpty reports whether nothing is stored.
func (c *Cache[K, V]) IsEmpty() bool {
	return len(c.items) == 0
}

// Keys returns the keys of all live entries in no particular order.
func (c *Cache[K, V]) Keys() []K {
	now := c.engine.Now()
	out := make([]K, 0, len(c.items))
	for k, ent := range c.items {
		if !c.engine.IsExpiredAt(ent.InsertedAt, now) {
			out = append(out, k)
		}
	}
	return out
}

// Values returns the values of all live entries in no particular order.
func (c *Cache[K, V]) Values() []V {
	now := c.engine.Now()
	out := make([]V, 0, len(c.items))
	for _, ent := range c.items {
		if !c.engine.IsExpiredAt(ent.InsertedAt, now) {
			out = append(out, ent.Value)
		}
	}
	return out
}

/*
Purge removes every expired entry and returns how many were removed.

This is O(n). It never changes what Get returns; it only gives back memory held by
entries that expired without being read.
*/
func (c *Cache[K, V]) Purge() int {
	now := c.engine.Now()
	removed := 0
	for k, ent := range c.items {
		if c.engine.IsExpiredAt(ent.InsertedAt, now) {
			delete(c.items, k)
			c.engine.Metrics.Expire()
			removed++
		}
	}
	return removed
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	clear(c.items)
}

// TTL returns the time-to-live the cache was built with, if any.
func (c *Cache[K, V]) TTL() mo.Option[time.Duration] {
	return c.engine.Expiration.TTL()
}

// lookup is the read path shared by Get and Contains.
func (c *Cache[K, V]) lookup(key K) (*types.Entry[V], bool) {
	ent, ok := c.items[key]
	if !ok {
		c.engine.Metrics.Miss()
		return nil, false
	}

	if c.engine.IsExpired(ent.InsertedAt) {
		delete(c.items, key)
		c.engine.Metrics.Expire()
		c.engine.Metrics.Miss()
		return nil, false
	}

	c.engine.Metrics.Hit()
	return ent, true
}
