package gamesite

import (
	"testing"
	"time"
)

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time          { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	clock := &stepClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newLoginLimiter(2, time.Minute, clock.now)
	ip := "203.0.113.10"

	for i := 0; i < 2; i++ {
		if !limiter.Check(ip) {
			t.Fatalf("attempt %d blocked, want allowed", i+1)
		}
		limiter.Record(ip)
	}
	if limiter.Check(ip) {
		t.Fatalf("expected third attempt to be blocked")
	}
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	clock := &stepClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newLoginLimiter(1, time.Minute, clock.now)
	ip := "203.0.113.20"

	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected attempt within window to be blocked")
	}
	clock.advance(61 * time.Second)
	if !limiter.Check(ip) {
		t.Fatalf("expected attempt after window to be allowed")
	}
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	clock := &stepClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newLoginLimiter(1, time.Minute, clock.now)

	limiter.Record("203.0.113.30")
	if !limiter.Check("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Check("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestLoginLimiterSweepDropsStaleIPs(t *testing.T) {
	clock := &stepClock{t: time.Unix(1_700_000_000, 0)}
	limiter := newLoginLimiter(3, time.Minute, clock.now)
	limiter.Record("203.0.113.40")
	clock.advance(2 * time.Minute)
	limiter.sweep()

	limiter.mu.Lock()
	n := len(limiter.attempts)
	limiter.mu.Unlock()
	if n != 0 {
		t.Fatalf("attempts after sweep = %d, want 0", n)
	}
}

func TestLoginLimiterCloseIsIdempotent(t *testing.T) {
	limiter := NewLoginLimiter(1, time.Minute)
	limiter.Close()
	limiter.Close()
}
