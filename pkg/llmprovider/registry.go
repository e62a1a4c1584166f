package llmprovider

import (
	"context"

	"github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
)

// Registry holds the configured providers keyed by name. The model router
// picks a name; the registry resolves it to a live client.
type Registry struct {
	providers map[string]Provider
	logger    log.Logger
}

// NewRegistry creates a Registry from the given providers.
func NewRegistry(providers []Provider, logger log.Logger) (*Registry, error) {
	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &Registry{
		providers: byName,
		logger:    logger,
	}, nil
}

// Get resolves a provider by name.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, &ProviderError{Provider: name, Err: ErrUnknownProvider}
	}
	return p, nil
}

// Names lists the registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Complete resolves name and runs the request, logging usage on success and
// the failure on error.
func (r *Registry) Complete(ctx context.Context, name string, req *Request) (*Response, error) {
	provider, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	resp, err := provider.Complete(ctx, req)
	if err != nil {
		r.logger.Warn(ctx, "LLM completion failed",
			"provider", provider.Name(),
			"model", provider.Model(),
			"error", err.Error(),
		)
		return nil, &ProviderError{Provider: provider.Name(), Err: err}
	}

	if resp.Usage != nil {
		r.logger.Info(ctx, "LLM completion successful",
			"provider", provider.Name(),
			"model", provider.Model(),
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
	}
	return resp, nil
}
