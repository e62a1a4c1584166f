package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestAllowWithinBudget(t *testing.T) {
	limiter := New(2, 1) // 2 requests per minute

	results := []bool{limiter.Allow(), limiter.Allow(), limiter.Allow()}
	expected := []bool{true, true, false}

	for i := range expected {
		if results[i] != expected[i] {
			t.Fatalf("call %d: expected %v, got %v", i+1, expected[i], results[i])
		}
	}
}

func TestDenyDoesNotConsume(t *testing.T) {
	limiter := New(1, 1)

	if !limiter.Allow() {
		t.Fatal("first call should be allowed")
	}
	// Repeated denials must stay denials, not corrupt the counter.
	for i := 0; i < 3; i++ {
		if limiter.Allow() {
			t.Fatalf("call %d should be denied", i+2)
		}
	}
}

func TestWindowReset(t *testing.T) {
	limiter := New(2, 0.001) // 60ms window keeps the test fast

	limiter.Allow()
	limiter.Allow()
	if limiter.Allow() {
		t.Fatal("third call inside window should be denied")
	}

	time.Sleep(80 * time.Millisecond)

	if !limiter.Allow() {
		t.Fatal("call after window boundary should be allowed")
	}
}

func TestWaitForReset(t *testing.T) {
	limiter := New(1, 0.001) // 60ms window

	limiter.Allow()

	start := time.Now()
	if err := limiter.WaitForReset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("waited too long: %v", elapsed)
	}

	if !limiter.Allow() {
		t.Fatal("expected allowance after waiting out the window")
	}
}

func TestWaitForResetCancellation(t *testing.T) {
	limiter := New(1, 10) // long window

	limiter.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := limiter.WaitForReset(ctx); err == nil {
		t.Fatal("expected context error when cancelled mid-wait")
	}
}
