package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/g3lasio/Andy-AI-by-Claude/config"
	chatHTTP "github.com/g3lasio/Andy-AI-by-Claude/internal/chat/delivery/http"
	chatUC "github.com/g3lasio/Andy-AI-by-Claude/internal/chat/usecase"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/conversation"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/extract"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/httpserver"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/middleware"
	"github.com/g3lasio/Andy-AI-by-Claude/internal/router"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/docstore"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/llmprovider"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Andy AI...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Durable document store
	docs, err := newDocStore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize document store: ", err)
		return
	}
	defer docs.Close()

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	registry, err := llmprovider.NewRegistry(providers, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build provider registry: ", err)
		return
	}
	logger.Infof(ctx, "LLM providers registered: %v", registry.Names())

	// 5. Conversation state
	contexts := conversation.NewStore(logger, docs, cfg.Chat.HistoryLimit)
	sessions := conversation.NewService(logger, docs, cfg.Session.RetentionDays)

	// 6. Model router
	rt := router.New(logger, router.Config{
		TechnicalThreshold:  cfg.Router.TechnicalThreshold,
		ComplexityThreshold: cfg.Router.ComplexityThreshold,
		TechnicalKeywords:   cfg.Router.TechnicalKeywords,
	})

	// 7. Attachment extraction. PDF and image backends are optional; without
	// them those kinds degrade to a placeholder.
	extractor := extract.New(logger, nil, nil)

	// 8. Chat orchestration
	uc := chatUC.New(logger, registry, rt, contexts, extractor, chatUC.Config{
		PromptTurns:     cfg.Chat.PromptTurns,
		CacheMaxSize:    cfg.Chat.CacheMaxSize,
		CacheTTL:        cfg.Chat.CacheTTL,
		RateMaxRequests: cfg.Chat.RateMaxReqs,
		RatePerMinute:   cfg.Chat.RatePerMinute,
		RetryAttempts:   cfg.Chat.RetryAttempts,
		RetryDelay:      cfg.Chat.RetryDelay,
		RequestTimeout:  cfg.Chat.RequestTimeout,
	})

	// 9. HTTP delivery
	chatHandler := chatHTTP.New(logger, uc, contexts, sessions)
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newDocStore builds the configured docstore driver. The redis driver is
// pinged at startup so a bad address fails fast instead of on first write.
func newDocStore(ctx context.Context, cfg *config.Config, logger log.Logger) (docstore.Store, error) {
	switch cfg.Storage.Driver {
	case string(docstore.StoreTypeRedis):
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}

		logger.Infof(ctx, "Using redis document store at %s", cfg.Storage.RedisAddr)
		return docstore.NewStore(docstore.StoreTypeRedis,
			docstore.WithRedisClient(client),
			docstore.WithRedisTTL(cfg.Storage.TTL),
		)

	default:
		logger.Info(ctx, "Using in-memory document store")
		return docstore.NewStore(docstore.StoreTypeMemory)
	}
}
