// Package ratelimit implements an in-process sliding-window request counter
// keyed by client address. State lives in memory only and resets with the
// process; the deployment is a single instance, so no external coordination
// is involved.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter admits at most max requests per key within a trailing window.
// Admitted requests keep counting against the key until they age out of the
// window; rejected requests are not recorded, so a rejection never resets or
// extends the window.
type Limiter struct {
	window  time.Duration
	max     int
	message string

	mu   sync.Mutex
	hits map[string][]time.Time

	now func() time.Time
}

func New(window time.Duration, max int, message string) *Limiter {
	return &Limiter{
		window:  window,
		max:     max,
		message: message,
		hits:    make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Message is the body text returned when this limiter trips.
func (l *Limiter) Message() string {
	return l.message
}

// Allow records one request for key. When the key is at its ceiling it
// returns false together with the time until the oldest admitted request
// leaves the window, which callers surface as a retry-after hint.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.hits[key]
	live := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			live = append(live, t)
		}
	}

	if len(live) >= l.max {
		l.hits[key] = live
		return false, live[0].Sub(cutoff)
	}

	l.hits[key] = append(live, now)
	return true, 0
}
