package engine_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/krisalay/simple-cache/engine"
	"github.com/krisalay/simple-cache/expiration"
)

func TestDefaults(t *testing.T) {
	e := engine.NewCacheEngine(nil, nil, nil)

	if e.Clock == nil || e.Metrics == nil {
		t.Fatalf("expected defaults to be filled in")
	}
	if e.Stamp().IsPresent() {
		t.Fatalf("expected no timestamp without a TTL")
	}
}

func TestStampAndExpireUseTheSameClock(t *testing.T) {
	fc := clockwork.NewFakeClock()
	e := engine.NewCacheEngine(&expiration.AfterWrite{After: time.Second}, fc, nil)

	stamp := e.Stamp()
	if got, ok := stamp.Get(); !ok || !got.Equal(fc.Now()) {
		t.Fatalf("expected stamp at %v, got %v (present=%v)", fc.Now(), got, ok)
	}

	if e.IsExpired(stamp) {
		t.Fatalf("expected fresh entry to be live")
	}

	fc.Advance(time.Second)
	if !e.IsExpired(stamp) {
		t.Fatalf("expected entry to expire after 1s")
	}
}
