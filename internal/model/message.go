package model

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single immutable conversation entry. Timestamp is unix
// milliseconds to match the persisted document format.
type Message struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Timestamp int64          `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ContextMetrics tracks per-user interaction counters.
type ContextMetrics struct {
	TotalInteractions int   `json:"total_interactions"`
	LastUpdateTime    int64 `json:"last_update_time"`
}

// Context is the rolling conversation state for one user. History is a
// sliding window capped in individual messages, oldest discarded first.
type Context struct {
	UserID              string          `json:"user_id"`
	LastMessage         string          `json:"last_message"`
	LastResponse        *ChatResponse   `json:"last_response,omitempty"`
	Timestamp           int64           `json:"timestamp"`
	ConversationHistory []Message       `json:"conversation_history"`
	Metrics             ContextMetrics  `json:"metrics"`
}
