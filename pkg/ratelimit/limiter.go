// Package ratelimit implements a fixed-window request counter.
//
// The window fully resets at its boundary, so up to 2x the budget can pass
// in a short interval spanning a boundary. That burst tolerance is an
// accepted product decision for the chat flow; callers needing smoothing
// should front this with a token bucket instead.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// FixedWindow counts requests inside a non-sliding time bucket.
// Safe for concurrent use.
type FixedWindow struct {
	mu            sync.Mutex
	maxRequests   int
	resetInterval time.Duration
	requests      int
	lastReset     time.Time
}

// New creates a limiter allowing maxRequests per window of perMinute minutes.
func New(maxRequests int, perMinute float64) *FixedWindow {
	return &FixedWindow{
		maxRequests:   maxRequests,
		resetInterval: time.Duration(perMinute * float64(time.Minute)),
		lastReset:     time.Now(),
	}
}

// Allow reports whether another request fits in the current window and
// consumes a slot when it does. Denied calls do not consume a slot.
func (f *FixedWindow) Allow() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	if now.Sub(f.lastReset) >= f.resetInterval {
		f.requests = 0
		f.lastReset = now
	}

	if f.requests >= f.maxRequests {
		return false
	}

	f.requests++
	return true
}

// WaitForReset blocks until the current window ends or ctx is done.
// It does not re-check or consume a slot.
func (f *FixedWindow) WaitForReset(ctx context.Context) error {
	f.mu.Lock()
	remaining := f.resetInterval - time.Since(f.lastReset)
	f.mu.Unlock()

	if remaining <= 0 {
		return nil
	}

	select {
	case <-time.After(remaining):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
