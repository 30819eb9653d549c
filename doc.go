// Package cache is an in-memory key/value cache with optional time-based expiration.
//
// A Cache is a drop-in replacement for a map whose entries should stop being
// returned some fixed time after they were written:
//
//	c := cache.New[string, int](cache.WithTTL(5 * time.Second))
//	c.Insert("a", 1)
//	v, ok := c.Get("a").Get()
//
// Expiration is checked only when an entry is accessed. There is no timer and no
// background goroutine, so an idle cache costs nothing but memory.
//
// Cache is a plain owned value with no locking. ShardedCache wraps several of them
// behind per-shard mutexes and adds read-through loading.
package cache
