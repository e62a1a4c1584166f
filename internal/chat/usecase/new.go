package usecase

import (
	"context"
	"time"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/chat"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/conversation"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/router"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/llmprovider"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/ratelimit"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/ttlcache"
)

// Extractor summarizes request attachments into prompt text. Kept as an
// interface so the orchestrator does not care which extraction backends are
// wired in.
type Extractor interface {
	Summarize(ctx context.Context, attachments []model.Attachment) string
}

// Config tunes the orchestration pipeline. Zero values fall back to the
// package defaults.
type Config struct {
	PromptTurns     int
	CacheMaxSize    int
	CacheTTL        time.Duration
	RateMaxRequests int
	RatePerMinute   float64
	RetryAttempts   int
	RetryDelay      time.Duration
	RequestTimeout  time.Duration
	Temperature     float64
	MaxTokens       int
}

type implUseCase struct {
	l         log.Logger
	registry  *llmprovider.Registry
	router    router.Router
	contexts  conversation.Store
	extractor Extractor

	cache   *ttlcache.Cache[string, *model.ChatResponse]
	limiter *ratelimit.FixedWindow
	cfg     Config
}

// Ensure implUseCase implements chat.UseCase interface
var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat use case
func New(l log.Logger, registry *llmprovider.Registry, rt router.Router, contexts conversation.Store, extractor Extractor, cfg Config) chat.UseCase {
	if cfg.PromptTurns <= 0 {
		cfg.PromptTurns = DefaultPromptTurns
	}
	if cfg.CacheMaxSize <= 0 {
		cfg.CacheMaxSize = DefaultCacheMaxSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.RateMaxRequests <= 0 {
		cfg.RateMaxRequests = DefaultRateMaxReqs
	}
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = DefaultRatePerMinute
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	return &implUseCase{
		l:         l,
		registry:  registry,
		router:    rt,
		contexts:  contexts,
		extractor: extractor,
		cache:     ttlcache.New[string, *model.ChatResponse](cfg.CacheMaxSize, cfg.CacheTTL),
		limiter:   ratelimit.New(cfg.RateMaxRequests, cfg.RatePerMinute),
		cfg:       cfg,
	}
}
