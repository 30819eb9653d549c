package shard

import (
	"sync"

	"github.com/krisalay/simple-cache/api"
)

/*
A Shard is a small, independent piece of a concurrent cache.
Instead of one big cache behind one big lock, the cache is split into shards. Each shard:
- Holds some portion of the keys
- Has its own lock

Reads take the lock too: a read can remove an expired entry.
*/
type Shard[K comparable, V any] struct {

	// Store holds this shard's entries. It is not safe for concurrent use on its own.
	Store api.Cache[K, V]

	// Mu guards every call into Store.
	Mu sync.Mutex
}

func NewShard[K comparable, V any](store api.Cache[K, V]) *Shard[K, V] {
	return &Shard[K, V]{Store: store}
}

// With runs fn while holding the shard lock.
func (s *Shard[K, V]) With(fn func(store api.Cache[K, V])) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	fn(s.Store)
}
