// Package retry provides generic retry and deadline decorators for
// operations against volatile upstreams.
package retry

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned by WithTimeout when the deadline fires before the
// operation settles.
var ErrTimeout = errors.New("operation timed out")

// Do runs fn up to attempts times, returning the first success. The delay
// before attempt n is n*delay (0 means immediate retry). After exhaustion
// the last error observed is returned.
func Do[T any](ctx context.Context, attempts int, delay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 && delay > 0 {
			select {
			case <-time.After(time.Duration(attempt) * delay):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, lastErr
		}
	}

	return zero, lastErr
}

// WithTimeout runs fn under a context whose deadline is d from now and
// guarantees the caller unblocks by then. The derived context is cancelled
// when the deadline fires so cooperative operations stop promptly; a
// non-cooperative fn keeps running in its goroutine but its result is
// discarded.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	opCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type outcome struct {
		result T
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		result, err := fn(opCtx)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) {
			return zero, ErrTimeout
		}
		return out.result, out.err
	case <-opCtx.Done():
		if errors.Is(opCtx.Err(), context.DeadlineExceeded) {
			return zero, ErrTimeout
		}
		return zero, opCtx.Err()
	}
}
