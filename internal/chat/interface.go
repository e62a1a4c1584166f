package chat

import (
	"context"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
)

// UseCase is the chat orchestration entrypoint. One call runs the full
// pipeline: rate limiting, response cache, context lookup, attachment
// extraction, model routing, the provider call under retry and deadline,
// action parsing, and context update.
type UseCase interface {
	ProcessMessage(ctx context.Context, ip ProcessInput) (*model.ChatResponse, error)
}
