package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/chat"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/llmprovider"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/retry"
)

// ProcessMessage runs the full orchestration pipeline for one request. The
// response cache sits behind the rate limiter, so even cache hits consume a
// window slot. Context is only updated after a successful completion; a
// failed request leaves no trace in the conversation history.
func (uc *implUseCase) ProcessMessage(ctx context.Context, ip chat.ProcessInput) (*model.ChatResponse, error) {
	start := time.Now()

	if ip.UserID == "" || strings.TrimSpace(ip.Message) == "" {
		return nil, chat.ErrInvalidInput
	}

	if !uc.limiter.Allow() {
		uc.l.Warnf(ctx, "%s: rate limit hit for user %s", LogPrefixProcessMessage, ip.UserID)
		return nil, chat.ErrRateLimited
	}

	cacheKey := ip.UserID + cacheKeySeparator + ip.Message
	if cached, ok := uc.cache.Get(cacheKey); ok {
		uc.l.Debugf(ctx, "%s: cache hit for user %s", LogPrefixProcessMessage, ip.UserID)
		return cached, nil
	}

	convCtx := uc.contexts.GetContext(ctx, ip.UserID)

	var attachmentText string
	if uc.extractor != nil && len(ip.Attachments) > 0 {
		attachmentText = uc.extractor.Summarize(ctx, ip.Attachments)
	}

	source := uc.router.DetermineModel(ip.Message, convCtx)

	req := uc.buildRequest(ip.Message, attachmentText, convCtx)

	resp, err := retry.WithTimeout(ctx, uc.cfg.RequestTimeout, func(ctx context.Context) (*llmprovider.Response, error) {
		return retry.Do(ctx, uc.cfg.RetryAttempts, uc.cfg.RetryDelay, func(ctx context.Context) (*llmprovider.Response, error) {
			return uc.registry.Complete(ctx, string(source), req)
		})
	})
	if err != nil {
		if errors.Is(err, retry.ErrTimeout) {
			uc.l.Errorf(ctx, "%s: %s request timed out for user %s", LogPrefixProcessMessage, source, ip.UserID)
			return nil, chat.ErrTimedOut
		}
		uc.l.Errorf(ctx, "%s: %s request failed for user %s: %v", LogPrefixProcessMessage, source, ip.UserID, err)
		return nil, fmt.Errorf("%w: %v", chat.ErrProviderUnavailable, err)
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, fmt.Errorf("%w: %v", chat.ErrProviderUnavailable, llmprovider.ErrEmptyCompletion)
	}

	content, actions := parseActions(resp.Content)
	if len(actions) == 0 && strings.Contains(resp.Content, "[ACTION:") {
		uc.l.Debugf(ctx, "%s: malformed or unknown action tag left in reply for user %s", LogPrefixProcessMessage, ip.UserID)
	}

	chatResp := &model.ChatResponse{
		Content:      content,
		Source:       source,
		Actions:      actions,
		ProcessingMS: time.Since(start).Milliseconds(),
	}

	if err := uc.contexts.UpdateContext(ctx, ip.UserID, ip.Message, chatResp); err != nil {
		// The response is already produced; a history bookkeeping failure
		// must not fail the request.
		uc.l.Warnf(ctx, "%s: context update failed for user %s: %v", LogPrefixProcessMessage, ip.UserID, err)
	}

	uc.cache.Set(cacheKey, chatResp)

	return chatResp, nil
}
