package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/llmprovider"
)

var errUpstream = errors.New("upstream unavailable")

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockProvider is a scriptable llmprovider.Provider. failures makes the
// first N calls fail before succeeding with content.
type mockProvider struct {
	mu        sync.Mutex
	name      string
	content   string
	err       error
	failures  int
	callCount int
	lastReq   *llmprovider.Request
	block     chan struct{}
}

var _ llmprovider.Provider = (*mockProvider)(nil)

func (m *mockProvider) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.callCount++
	call := m.callCount
	m.lastReq = req
	block := m.block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.err != nil {
		return nil, m.err
	}
	if call <= m.failures {
		return nil, errUpstream
	}

	return &llmprovider.Response{
		Content:      m.content,
		ProviderName: m.name,
		ModelName:    "mock-model",
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "mock-model" }

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func (m *mockProvider) request() *llmprovider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReq
}

// fixedRouter always routes to the same tier.
type fixedRouter struct {
	source model.ModelSource
}

func (r *fixedRouter) DetermineModel(message string, convCtx *model.Context) model.ModelSource {
	return r.source
}

// stubSummarizer returns a canned attachment summary.
type stubSummarizer struct {
	text string
}

func (s *stubSummarizer) Summarize(ctx context.Context, attachments []model.Attachment) string {
	return s.text
}
