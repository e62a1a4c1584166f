package model

// ModelSource names the upstream model tier that produced a response.
type ModelSource string

const (
	// SourceClaude is the high-capability tier.
	SourceClaude ModelSource = "claude"
	// SourceGPT4 is the baseline tier.
	SourceGPT4 ModelSource = "gpt4"
)

// ActionType tags a structured action directive extracted from model output.
type ActionType string

const (
	ActionFormRequest  ActionType = "FORM_REQUEST"
	ActionCalculation  ActionType = "CALCULATION"
	ActionVerification ActionType = "VERIFICATION"
)

// Action is a structured directive the assistant asked the product to take.
type Action struct {
	Type    ActionType `json:"type"`
	Payload string     `json:"payload"`
}

// ChatResponse is the immutable result of one orchestrated request.
type ChatResponse struct {
	Content      string      `json:"content"`
	Source       ModelSource `json:"source"`
	Actions      []Action    `json:"actions,omitempty"`
	Confidence   float64     `json:"confidence,omitempty"`
	ProcessingMS int64       `json:"processing_ms,omitempty"`
}
