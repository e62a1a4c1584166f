package anthropic

import "context"

// IAnthropic defines the interface for the Anthropic messages client
type IAnthropic interface {
	CreateMessage(ctx context.Context, req *Request) (*Response, error)
}
