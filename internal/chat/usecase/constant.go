package usecase

import "time"

const (
	LogPrefixProcessMessage = "internal.chat.usecase.ProcessMessage"

	cacheKeySeparator = "::"

	DefaultPromptTurns    = 3
	DefaultCacheMaxSize   = 100
	DefaultCacheTTL       = 5 * time.Minute
	DefaultRateMaxReqs    = 10
	DefaultRatePerMinute  = 1.0
	DefaultRetryAttempts  = 3
	DefaultRequestTimeout = 30 * time.Second
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 1024
)

// systemPrompt frames every provider call. Action tags emitted by the model
// are parsed out of the reply and surfaced as structured actions.
const systemPrompt = `You are Andy, a personal finance and tax assistant. ` +
	`Answer questions about income taxes, deductions, credits, filing, and personal finances in clear, plain language. ` +
	`Use the provided conversation history and attached documents for context. ` +
	`When the user needs to complete a form, needs a calculation performed, or information must be verified, ` +
	`emit a tag of the form [ACTION:FORM_REQUEST:detail], [ACTION:CALCULATION:detail], or [ACTION:VERIFICATION:detail] in your reply.`
