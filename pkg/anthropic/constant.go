package anthropic

const (
	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultMaxTokens caps the completion length when the caller does not set one
	DefaultMaxTokens = 1024

	// APIVersion is the required anthropic-version header value
	APIVersion = "2023-06-01"
)
