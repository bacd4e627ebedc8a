package gamesite

import (
	"sync"
	"time"
)

// LoginLimiter rate-limits admin login attempts per IP address.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
	now      func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// NewLoginLimiter creates a LoginLimiter that allows max attempts per window.
// A background sweep drops stale entries until Close is called.
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	l := newLoginLimiter(max, window, time.Now)
	go l.sweepLoop()
	return l
}

func newLoginLimiter(max int, window time.Duration, now func() time.Time) *LoginLimiter {
	return &LoginLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
		now:      now,
		done:     make(chan struct{}),
	}
}

func (l *LoginLimiter) sweepLoop() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *LoginLimiter) sweep() {
	cutoff := l.now().Add(-l.window)
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, hits := range l.attempts {
		if kept := recent(hits, cutoff); len(kept) == 0 {
			delete(l.attempts, ip)
		} else {
			l.attempts[ip] = kept
		}
	}
}

func recent(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Check returns true if the IP has not exceeded the rate limit.
// It does not record an attempt; call Record on a failed login.
func (l *LoginLimiter) Check(ip string) bool {
	cutoff := l.now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := recent(l.attempts[ip], cutoff)
	l.attempts[ip] = kept
	return len(kept) < l.max
}

// Record registers a failed login attempt for the given IP.
func (l *LoginLimiter) Record(ip string) {
	l.mu.Lock()
	l.attempts[ip] = append(l.attempts[ip], l.now())
	l.mu.Unlock()
}

// Close stops the background sweep. It is safe to call more than once.
func (l *LoginLimiter) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}
