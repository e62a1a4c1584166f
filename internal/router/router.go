package router

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
)

// DetermineModel picks the provider tier for a message. Messages dense in
// technical tax vocabulary, or arriving with a large accumulated context, go
// to the high-capability tier; everything else takes the baseline tier.
// Deterministic given identical inputs.
func (r *HeuristicRouter) DetermineModel(message string, convCtx *model.Context) model.ModelSource {
	technicalScore := r.technicalScore(message)
	contextComplexity := r.contextComplexity(convCtx)

	r.l.Debugf(context.Background(), "%s: technical=%.2f complexity=%.2f",
		LogPrefixDetermineModel, technicalScore, contextComplexity)

	if technicalScore > r.cfg.TechnicalThreshold || contextComplexity > r.cfg.ComplexityThreshold {
		return model.SourceClaude
	}
	return model.SourceGPT4
}

// technicalScore is the count of vocabulary entries present in the message
// divided by the message's word count. Plural/singular variants are separate
// vocabulary entries, so a dense technical question scores above 1 word in
// matches per word.
func (r *HeuristicRouter) technicalScore(message string) float64 {
	normalized := normalize(message)
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return 0
	}

	matched := 0
	for _, kw := range r.keywords {
		if strings.Contains(normalized, kw) {
			matched++
		}
	}

	return float64(matched) / float64(len(words))
}

// contextComplexity grows with the serialized context size, saturating at 1
// once the context reaches ComplexitySaturationBytes.
func (r *HeuristicRouter) contextComplexity(convCtx *model.Context) float64 {
	if convCtx == nil {
		return 0
	}
	serialized, err := json.Marshal(convCtx)
	if err != nil {
		return 0
	}
	complexity := float64(len(serialized)) / ComplexitySaturationBytes
	if complexity > 1 {
		return 1
	}
	return complexity
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
