package expiration_test

import (
	"testing"
	"time"

	"github.com/samber/mo"

	"github.com/krisalay/simple-cache/expiration"
)

func TestNeverDoesNotStampOrExpire(t *testing.T) {
	p := expiration.Never{}
	now := time.Now()

	if p.Stamp(now).IsPresent() {
		t.Fatalf("expected no timestamp")
	}
	if p.IsExpired(mo.Some(now.Add(-1000*time.Hour)), now) {
		t.Fatalf("expected Never to never expire")
	}
	if p.TTL().IsPresent() {
		t.Fatalf("expected no TTL")
	}
}

func TestAfterWriteBoundary(t *testing.T) {
	p := &expiration.AfterWrite{After: 50 * time.Millisecond}
	written := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stamp := p.Stamp(written)

	if got, ok := stamp.Get(); !ok || !got.Equal(written) {
		t.Fatalf("expected stamp %v, got %v (present=%v)", written, got, ok)
	}

	cases := []struct {
		elapsed time.Duration
		expired bool
	}{
		{0, false},
		{10 * time.Millisecond, false},
		{50*time.Millisecond - time.Nanosecond, false},
		{50 * time.Millisecond, true},
		{60 * time.Millisecond, true},
	}
	for _, tc := range cases {
		if got := p.IsExpired(stamp, written.Add(tc.elapsed)); got != tc.expired {
			t.Fatalf("elapsed %v: expected expired=%v, got %v", tc.elapsed, tc.expired, got)
		}
	}
}

func TestAfterWriteWithoutStampNeverExpires(t *testing.T) {
	p := &expiration.AfterWrite{After: time.Millisecond}
	if p.IsExpired(mo.None[time.Time](), time.Now()) {
		t.Fatalf("expected unstamped entry to be live")
	}
}

func TestForTTL(t *testing.T) {
	if _, ok := expiration.ForTTL(mo.None[time.Duration]()).(expiration.Never); !ok {
		t.Fatalf("expected Never for an absent TTL")
	}

	p, ok := expiration.ForTTL(mo.Some(time.Second)).(*expiration.AfterWrite)
	if !ok || p.After != time.Second {
		t.Fatalf("expected AfterWrite{1s}, got %#v", p)
	}
}
