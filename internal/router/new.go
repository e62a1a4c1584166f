package router

import (
	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
)

// Router decides which provider tier handles a message.
type Router interface {
	DetermineModel(message string, convCtx *model.Context) model.ModelSource
}

// Config holds the routing thresholds and vocabulary. All values are
// configuration so tuning does not require a redeploy.
type Config struct {
	TechnicalThreshold  float64
	ComplexityThreshold float64
	TechnicalKeywords   []string
}

// HeuristicRouter routes on keyword density and context size. It is a
// deterministic gate, not a trained classifier.
type HeuristicRouter struct {
	l        log.Logger
	cfg      Config
	keywords []string
}

// Ensure HeuristicRouter implements Router interface
var _ Router = (*HeuristicRouter)(nil)

// New creates a new HeuristicRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger, cfg Config) *HeuristicRouter {
	if cfg.TechnicalThreshold <= 0 {
		cfg.TechnicalThreshold = DefaultTechnicalThreshold
	}
	if cfg.ComplexityThreshold <= 0 {
		cfg.ComplexityThreshold = DefaultComplexityThreshold
	}

	keywords := make([]string, 0, len(cfg.TechnicalKeywords))
	for _, kw := range cfg.TechnicalKeywords {
		keywords = append(keywords, normalize(kw))
	}
	return &HeuristicRouter{
		l:        l,
		cfg:      cfg,
		keywords: keywords,
	}
}
