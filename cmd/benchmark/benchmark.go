package main

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/krisalay/simple-cache"
)

// ================= BENCHMARK =================

func main() {
	// ---------------- Cache Config ----------------
	const (
		shards      = 8
		ttl         = 60 * time.Second
		preloadKeys = 100000
		goroutines  = 200
		opsPerG     = 5000
	)

	fmt.Printf("shards=%d ttl=%s keys=%d goroutines=%d ops/goroutine=%d\n",
		shards, ttl, preloadKeys, goroutines, opsPerG)

	c := cache.NewShardedCache[string, int](shards, nil, cache.WithTTL(ttl))

	keys := make([]string, preloadKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	// ---------------- Preload Cache ----------------
	for i, key := range keys {
		c.Insert(key, i)
	}

	// ---------------- Load Test ----------------
	// Every 10th operation is a write so shard locks see some contention.
	start := time.Now()

	wg := sync.WaitGroup{}
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				key := keys[(id*opsPerG+j)%preloadKeys]
				if j%10 == 0 {
					c.Insert(key, j)
					continue
				}
				c.Get(key)
			}
		}(i)
	}

	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG

	fmt.Printf("ops=%d time=%v throughput=%.2f ops/sec entries=%d\n",
		totalOps, duration, float64(totalOps)/duration.Seconds(), c.Len())
}
