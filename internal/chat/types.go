package chat

import "github.com/g3lasio/Andy-AI-by-Claude/internal/model"

// ProcessInput carries one user request through the orchestration pipeline.
type ProcessInput struct {
	UserID      string
	Message     string
	Attachments []model.Attachment
}
