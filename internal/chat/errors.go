package chat

import "errors"

var (
	// ErrInvalidInput is returned for a blank user ID or message before any
	// rate-limit slot is consumed.
	ErrInvalidInput = errors.New("user id and message are required")

	// ErrRateLimited is returned when the request window is exhausted. The
	// request fails fast; it is never queued.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimedOut is returned when the provider call misses its deadline.
	ErrTimedOut = errors.New("model request timed out")

	// ErrProviderUnavailable is returned after retries against the selected
	// provider are exhausted.
	ErrProviderUnavailable = errors.New("model provider unavailable")
)
