// Package ratelimit implements the fixed-window limiter that guards the
// contact endpoint.
//
// The limiter is single-process and volatile: counters live in a plain map
// owned by the Limiter and vanish on restart. Behind a horizontally scaled
// deployment each instance enforces its own budget, so the effective limit
// is N times the configured one. That trade-off is intentional for this
// service; a shared store would be required to close it.
package ratelimit

import (
	"sync"
	"time"
)

// Defaults applied by New when a zero value is passed.
const (
	DefaultMax            = 3
	DefaultWindow         = time.Hour
	DefaultSweepThreshold = 1000
)

// Decision is the outcome of a single limiter check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Remaining is how many further requests the key may make before the
	// window resets. Zero when rejected.
	Remaining int
	// ResetIn is the time left until the key's window resets.
	ResetIn time.Duration
}

type record struct {
	count     int
	resetTime time.Time
}

// Limiter counts requests per key within discrete, non-overlapping windows.
// A key's counter resets as a whole when its window expires; this is a fixed
// window, not a sliding window or token bucket.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*record

	// Max is the number of requests allowed per key per window.
	Max int
	// Window is the window duration.
	Window time.Duration
	// SweepThreshold is the tracked-key count above which Check sweeps
	// expired records before processing.
	SweepThreshold int
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// New returns a Limiter with defaults applied for zero arguments.
func New(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = DefaultMax
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		records:        make(map[string]*record),
		Max:            max,
		Window:         window,
		SweepThreshold: DefaultSweepThreshold,
	}
}

// Check records one request attempt for key and returns the decision.
// The lookup, check and update happen under one lock so a key's counter
// never exceeds Max.
func (l *Limiter) Check(key string) Decision {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.records == nil {
		l.records = make(map[string]*record)
	}

	// Best-effort memory bound: drop expired records once the map grows
	// past the threshold. Runs inline, never on a timer.
	if len(l.records) > l.sweepThreshold() {
		for k, r := range l.records {
			if now.After(r.resetTime) {
				delete(l.records, k)
			}
		}
	}

	r, ok := l.records[key]
	if !ok || now.After(r.resetTime) {
		l.records[key] = &record{count: 1, resetTime: now.Add(l.Window)}
		return Decision{Allowed: true, Remaining: l.Max - 1, ResetIn: l.Window}
	}

	if r.count >= l.Max {
		return Decision{Allowed: false, Remaining: 0, ResetIn: r.resetTime.Sub(now)}
	}

	r.count++
	return Decision{Allowed: true, Remaining: l.Max - r.count, ResetIn: r.resetTime.Sub(now)}
}

// Len reports the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *Limiter) sweepThreshold() int {
	if l.SweepThreshold > 0 {
		return l.SweepThreshold
	}
	return DefaultSweepThreshold
}

func (l *Limiter) now() time.Time {
	if l.Clock != nil {
		return l.Clock()
	}
	return time.Now().UTC()
}
