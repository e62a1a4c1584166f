package http

import (
	"errors"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/chat"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/conversation"
	pkgErrors "github.com/g3lasio/Andy-AI-by-Claude/pkg/errors"
)

var errSessionNotFound = pkgErrors.NewHTTPError(404, "session_not_found", "session not found")

// mapError translates domain errors into HTTP errors from pkg/errors.
// Anything unmapped becomes a 500 without leaking internal detail.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrInvalidInput):
		return pkgErrors.NewHTTPError(400, "validation_failed", "user_id and message are required")
	case errors.Is(err, chat.ErrRateLimited):
		return pkgErrors.NewHTTPError(429, "rate_limited", "too many requests, slow down")
	case errors.Is(err, chat.ErrTimedOut):
		return pkgErrors.NewHTTPError(504, "timed_out", "the model took too long to respond")
	case errors.Is(err, chat.ErrProviderUnavailable):
		return pkgErrors.NewHTTPError(502, "provider_error", "the model provider is unavailable")
	case errors.Is(err, conversation.ErrSessionPersist):
		return pkgErrors.NewHTTPError(503, "session_persist_failed", "could not persist the session, try again")
	case errors.Is(err, conversation.ErrInvalidUpdate):
		return pkgErrors.NewHTTPError(400, "validation_failed", "user_id is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal_error", "something went wrong")
	}
}
