package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	cache "github.com/krisalay/simple-cache"
	"github.com/krisalay/simple-cache/types"
)

// ================= METRICS =================
type Metrics struct {
	hits    atomic.Int64
	misses  atomic.Int64
	expired atomic.Int64
	loads   atomic.Int64
}

func (m *Metrics) Hit()    { m.hits.Add(1) }
func (m *Metrics) Miss()   { m.misses.Add(1) }
func (m *Metrics) Expire() { m.expired.Add(1) }
func (m *Metrics) Load()   { m.loads.Add(1) }

func (m *Metrics) Print() {
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("HITS      : %d\n", m.hits.Load())
	fmt.Printf("MISSES    : %d\n", m.misses.Load())
	fmt.Printf("EXPIRED   : %d\n", m.expired.Load())
	fmt.Printf("LOADS     : %d\n", m.loads.Load())
}

// ================= BACKING STORE =================

// slowStore stands in for a database that takes a while to answer.
func slowStore(ctx context.Context, key string) (string, error) {
	fmt.Println("STORE  → load:", key)
	select {
	case <-time.After(100 * time.Millisecond):
		return "value-of-" + key, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ================= MAIN =================

func main() {
	ctx := context.Background()
	metrics := &Metrics{}

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("TTL             : 500ms (expire after write)")
	fmt.Println("EXPIRATION      : lazy, checked on read")
	fmt.Println("SHARDS          : 4 (concurrent demo)")

	c := cache.New[string, string](
		cache.WithTTL(500*time.Millisecond),
		cache.WithMetrics(metrics),
	)

	// ====================================================
	fmt.Println("\n==================== 1) INSERT / GET ====================")
	prev := c.Insert("a", "alpha")
	fmt.Println("CACHE  → INSERT a, previous =", prev.OrElse("<none>"))
	prev = c.Insert("a", "alpha-2")
	fmt.Println("CACHE  → INSERT a, previous =", prev.OrElse("<none>"))
	fmt.Println("CACHE  → GET a =", c.Get("a").OrElse("<none>"))

	// ====================================================
	fmt.Println("\n==================== 2) TTL EXPIRATION ====================")
	c.Insert("x", "temp-value")
	fmt.Println("CACHE  → INSERT x")

	time.Sleep(600 * time.Millisecond)

	fmt.Println("CACHE  → LEN before read =", c.Len())
	fmt.Println("CACHE  → GET x after TTL =", c.Get("x").OrElse("<none>"))
	fmt.Println("CACHE  → LEN after read  =", c.Len())

	// ====================================================
	fmt.Println("\n==================== 3) OVERWRITE RESETS CLOCK ====================")
	c.Insert("y", "first")
	time.Sleep(400 * time.Millisecond)
	c.Insert("y", "second")
	time.Sleep(300 * time.Millisecond)
	fmt.Println("CACHE  → GET y 700ms after first insert =", c.Get("y").OrElse("<none>"))

	// ====================================================
	fmt.Println("\n==================== 4) PURGE ====================")
	c.InsertBatch(map[string]string{"p1": "1", "p2": "2", "p3": "3"})
	time.Sleep(600 * time.Millisecond)
	fmt.Println("CACHE  → PURGE removed", c.Purge(), "expired entries")

	// ====================================================
	fmt.Println("\n==================== 5) SINGLEFLIGHT ====================")
	sc := cache.NewShardedCache[string, string](
		4,
		types.LoaderFunc[string, string](slowStore),
		cache.WithTTL(500*time.Millisecond),
		cache.WithMetrics(metrics),
	)

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, err := sc.GetOrLoad(ctx, "b")
			if err != nil {
				fmt.Printf("GOROUTINE-%d → GET b failed: %v\n", id, err)
				return
			}
			fmt.Printf("GOROUTINE-%d → GET b = %v\n", id, val)
		}(i)
	}
	wg.Wait()

	// ====================================================
	fmt.Println("\n==================== 6) REMOVE ====================")
	removed := sc.Remove("b")
	fmt.Println("CACHE  → REMOVE b =", removed.OrElse("<none>"))
	fmt.Println("CACHE  → CONTAINS b =", sc.Contains("b"))

	// ====================================================
	metrics.Print()
}
