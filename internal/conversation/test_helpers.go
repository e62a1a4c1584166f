package conversation

import (
	"context"
	"errors"
	"sync"
)

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

// failingDocs is a docstore.Store whose writes always fail.
type failingDocs struct {
	mu       sync.Mutex
	putCalls int
}

var errStoreDown = errors.New("store unavailable")

func (f *failingDocs) Put(ctx context.Context, collection, id string, doc any) error {
	f.mu.Lock()
	f.putCalls++
	f.mu.Unlock()
	return errStoreDown
}

func (f *failingDocs) Get(ctx context.Context, collection, id string, out any) error {
	return errStoreDown
}

func (f *failingDocs) Delete(ctx context.Context, collection, id string) error {
	return errStoreDown
}

func (f *failingDocs) Close() error { return nil }
