package types

import "context"

// Loader is the contract between a read-through cache and whatever produces values.
type Loader[K comparable, V any] interface {

	/*
		Load is called when the cache misses.
		1. Cache checks memory → key not found or expired
		2. Cache calls Load(key), once per key even with many waiting callers
		3. Cache stores the result in memory
		4. Cache returns the value

		A returned error is passed to the caller and nothing is stored.
	*/
	Load(ctx context.Context, key K) (V, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Load calls f(ctx, key).
func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}
