package conversation

import (
	"context"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
)

// Store keeps per-user rolling conversation state in memory with best-effort
// durable mirroring.
type Store interface {
	// GetContext returns the user's context, or an empty default when the
	// user has no history yet. It never fails.
	GetContext(ctx context.Context, userID string) *model.Context

	// UpdateContext appends the user message and assistant response to the
	// history, truncates to the configured cap, and kicks off asynchronous
	// persistence. Persistence failure is logged, never surfaced.
	UpdateContext(ctx context.Context, userID, message string, resp *model.ChatResponse) error
}

// Service manages explicit session documents with independent lifecycle.
// Unlike Store updates, session creation fails closed when the durable write
// fails.
type Service interface {
	CreateSession(ctx context.Context, userID string, sessionType model.SessionType) (*model.Session, error)

	// GetSession returns nil (not an error) when the session does not exist.
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)

	// ListSessions returns the user's sessions created within the retention
	// window. Older sessions are excluded, not deleted.
	ListSessions(ctx context.Context, userID string) ([]*model.Session, error)
}
