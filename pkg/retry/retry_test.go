package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), 3, 0, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Fatalf("expected ok, got %q", result)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDoRecoversAfterFailure(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), 3, 0, func(ctx context.Context) (int, error) {
		calls++
		if calls < 2 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 42 {
		t.Fatalf("expected 42, got %d", result)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	opErr := errors.New("always fails")
	calls := 0

	_, err := Do(context.Background(), 3, 0, func(ctx context.Context) (string, error) {
		calls++
		return "", opErr
	})

	if calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", calls)
	}
	if !errors.Is(err, opErr) {
		t.Fatalf("expected the operation's error, got %v", err)
	}
}

func TestDoStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	_, err := Do(ctx, 5, 10*time.Millisecond, func(ctx context.Context) (string, error) {
		calls++
		cancel()
		return "", errors.New("fail")
	})

	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if calls != 1 {
		t.Fatalf("expected no further attempts after cancel, got %d calls", calls)
	}
}

func TestWithTimeoutSuccess(t *testing.T) {
	result, err := WithTimeout(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "fast", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "fast" {
		t.Fatalf("expected fast, got %q", result)
	}
}

func TestWithTimeoutDeadline(t *testing.T) {
	start := time.Now()
	_, err := WithTimeout(context.Background(), 30*time.Millisecond, func(ctx context.Context) (string, error) {
		select {
		case <-time.After(time.Second):
			return "slow", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("caller blocked past the deadline: %v", elapsed)
	}
}

func TestWithTimeoutPropagatesOperationError(t *testing.T) {
	opErr := errors.New("upstream broke")
	_, err := WithTimeout(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "", opErr
	})

	if !errors.Is(err, opErr) {
		t.Fatalf("expected operation error, got %v", err)
	}
}
