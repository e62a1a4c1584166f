package usecase

import (
	"time"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/llmprovider"
)

// buildRequest assembles the provider request: the system prompt, the most
// recent conversation turns, and the current message with any attachment
// summaries folded in.
func (uc *implUseCase) buildRequest(message, attachmentText string, convCtx *model.Context) *llmprovider.Request {
	var history []model.Message
	if convCtx != nil {
		history = convCtx.ConversationHistory
	}

	// PromptTurns user/assistant pairs, so twice that in messages.
	keep := uc.cfg.PromptTurns * 2
	if len(history) > keep {
		history = history[len(history)-keep:]
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, llmprovider.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	content := message
	if attachmentText != "" {
		content += "\n\nAttached documents:\n" + attachmentText
	}
	messages = append(messages, llmprovider.Message{
		Role:    string(model.RoleUser),
		Content: content,
	})

	// Filing deadlines and tax years depend on today's date.
	system := systemPrompt + " Today's date is " + time.Now().Format("January 2, 2006") + "."

	return &llmprovider.Request{
		System:      system,
		Messages:    messages,
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxTokens,
	}
}
