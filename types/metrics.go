package types

// This file defines how the cache reports what it is doing.

/*
Metrics is the set of events the cache reports while it works.
The cache calls these methods on its hot path, so implementations must be cheap.
*/
type Metrics interface {

	// Hit is called when a lookup finds a live entry.
	Hit()

	// Miss is called when a lookup finds nothing, including when the entry had expired.
	Miss()

	// Expire is called when a lookup or a purge removes an entry that has passed its TTL.
	Expire()

	// Load is called when a read-through load is started for a missing key.
	Load()
}

// NoopMetrics ignores every event. It is the default so the cache never checks for nil.
type NoopMetrics struct{}

func (NoopMetrics) Hit()    {}
func (NoopMetrics) Miss()   {}
func (NoopMetrics) Expire() {}
func (NoopMetrics) Load()   {}
