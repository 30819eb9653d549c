package api

import "github.com/samber/mo"

/*
Cache defines the PUBLIC API of the cache.
It is implemented by the single-owner cache.Cache and by the concurrency-safe
cache.ShardedCache, so code can be written against either.

"Not found" and "expired" are the same answer on every read: mo.None.
*/
type Cache[K comparable, V any] interface {

	/*
		Insert stores value under key.

		BEHAVIOR:
		---------
		- Overwrites any existing entry
		- If the cache has a TTL, stamps the entry with the current time,
		  which resets the expiration clock of an overwritten key
		- Returns the previous value, even if it had expired, or None
	*/
	Insert(key K, value V) mo.Option[V]

	/*
		Get retrieves the value associated with key.

		BEHAVIOR:
		-------------------
		1. If the key is absent: return None
		2. If the cache has no TTL: return the value
		3. If the entry is expired: remove it and return None
		4. Otherwise: return the value

		Reading a live entry never changes it.
	*/
	Get(key K) mo.Option[V]

	/*
		Remove deletes key from the cache immediately.

		Returns the removed value, even if it had expired.
		This operation is idempotent.
	*/
	Remove(key K) mo.Option[V]

	// Contains applies the same expiration check as Get without returning the value.
	Contains(key K) bool

	// Len returns how many entries are stored, including expired ones not yet removed.
	Len() int

	// Purge removes every expired entry and returns how many it removed.
	// It frees memory only; no Get result changes because of it.
	Purge() int
}
