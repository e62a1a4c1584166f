package conversation

import "errors"

// Domain-specific errors for the conversation package.
var (
	ErrInvalidUpdate  = errors.New("userId and message are required")
	ErrSessionPersist = errors.New("failed to persist session")
)
