package model

import "time"

// SessionType names the workflow a session belongs to.
type SessionType string

const (
	SessionChat           SessionType = "chat"
	SessionTaxFiling      SessionType = "tax_filing"
	SessionDocumentReview SessionType = "document_review"
)

// SessionStatus is the lifecycle state of a session document.
type SessionStatus string

const (
	SessionActive   SessionStatus = "active"
	SessionArchived SessionStatus = "archived"
)

// Session is an explicit per-workflow document with its own durable
// lifecycle, unlike the lightweight rolling Context.
type Session struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Type      SessionType   `json:"type"`
	Status    SessionStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
