package llmprovider

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/g3lasio/Andy-AI-by-Claude/pkg/anthropic"
)

// --- Anthropic (claude tier) ---

// AnthropicAdapter adapts the Anthropic messages client to Provider.
type AnthropicAdapter struct {
	client anthropic.IAnthropic
	model  string
}

// NewAnthropicAdapter creates a Provider backed by the Anthropic client.
func NewAnthropicAdapter(client anthropic.IAnthropic, model string) *AnthropicAdapter {
	if model == "" {
		model = anthropic.DefaultModel
	}
	return &AnthropicAdapter{client: client, model: model}
}

func (a *AnthropicAdapter) Name() string  { return "claude" }
func (a *AnthropicAdapter) Model() string { return a.model }

func (a *AnthropicAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	messages := make([]anthropic.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, anthropic.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.CreateMessage(ctx, &anthropic.Request{
		Model:     a.model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  messages,
	})
	if err != nil {
		return nil, err
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	if content == "" {
		return nil, ErrEmptyCompletion
	}

	return &Response{
		Content:      content,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// --- OpenAI (gpt4 tier) ---

// openAIClient is the subset of the go-openai client the adapter needs.
type openAIClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAdapter adapts the OpenAI chat completion client to Provider.
type OpenAIAdapter struct {
	client openAIClient
	model  string
}

// NewOpenAIAdapter creates a Provider backed by the go-openai client.
func NewOpenAIAdapter(client openAIClient, model string) *OpenAIAdapter {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIAdapter{client: client, model: model}
}

func (a *OpenAIAdapter) Name() string  { return "gpt4" }
func (a *OpenAIAdapter) Model() string { return a.model }

func (a *OpenAIAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyCompletion
	}

	return &Response{
		Content:      resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
