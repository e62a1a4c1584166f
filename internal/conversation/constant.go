package conversation

import "time"

// Durable store collections.
const (
	CollectionContexts = "user_contexts"
	CollectionSessions = "sessions"
)

// Defaults.
const (
	DefaultHistoryLimit  = 50 // individual messages, not turns
	DefaultRetentionDays = 30
)

// PersistTimeout bounds each async durable write.
const PersistTimeout = 5 * time.Second

// Assistant message metadata keys.
const (
	MetaSource       = "source"
	MetaConfidence   = "confidence"
	MetaProcessingMS = "processing_ms"
)

// Log prefixes
const (
	LogPrefixUpdateContext = "internal.conversation.UpdateContext"
	LogPrefixPersist       = "internal.conversation.persist"
	LogPrefixCreateSession = "internal.conversation.CreateSession"
)
