package conversation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/docstore"
)

func newTestStore(t *testing.T, historyLimit int) (*implStore, docstore.Store) {
	t.Helper()
	docs, err := docstore.NewStore(docstore.StoreTypeMemory)
	if err != nil {
		t.Fatalf("docstore setup: %v", err)
	}
	return NewStore(&mockLogger{}, docs, historyLimit), docs
}

func testResponse(content string) *model.ChatResponse {
	return &model.ChatResponse{
		Content:    content,
		Source:     model.SourceClaude,
		Confidence: 0.9,
	}
}

func TestGetContextDefault(t *testing.T) {
	store, _ := newTestStore(t, 50)

	got := store.GetContext(context.Background(), "unknown")
	if got == nil {
		t.Fatal("GetContext must never return nil")
	}
	if got.UserID != "unknown" {
		t.Fatalf("expected userID carried through, got %q", got.UserID)
	}
	if len(got.ConversationHistory) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(got.ConversationHistory))
	}
	if got.Metrics.TotalInteractions != 0 {
		t.Fatalf("expected zero interactions, got %d", got.Metrics.TotalInteractions)
	}
}

func TestUpdateContextValidation(t *testing.T) {
	store, _ := newTestStore(t, 50)
	ctx := context.Background()

	if err := store.UpdateContext(ctx, "", "hello", testResponse("hi")); !errors.Is(err, ErrInvalidUpdate) {
		t.Fatalf("empty userID: expected ErrInvalidUpdate, got %v", err)
	}
	if err := store.UpdateContext(ctx, "u1", "", testResponse("hi")); !errors.Is(err, ErrInvalidUpdate) {
		t.Fatalf("empty message: expected ErrInvalidUpdate, got %v", err)
	}
}

func TestUpdateContextAppendsPair(t *testing.T) {
	store, _ := newTestStore(t, 50)
	ctx := context.Background()

	resp := testResponse("the standard deduction is...")
	resp.ProcessingMS = 120
	if err := store.UpdateContext(ctx, "u1", "what is the standard deduction?", resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.GetContext(ctx, "u1")
	if len(got.ConversationHistory) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.ConversationHistory))
	}

	userMsg, assistantMsg := got.ConversationHistory[0], got.ConversationHistory[1]
	if userMsg.Role != model.RoleUser || assistantMsg.Role != model.RoleAssistant {
		t.Fatalf("unexpected roles: %s, %s", userMsg.Role, assistantMsg.Role)
	}
	if assistantMsg.Metadata[MetaSource] != string(model.SourceClaude) {
		t.Fatalf("assistant metadata missing source: %v", assistantMsg.Metadata)
	}
	if got.LastMessage != "what is the standard deduction?" {
		t.Fatalf("lastMessage not updated: %q", got.LastMessage)
	}
	if got.Metrics.TotalInteractions != 1 {
		t.Fatalf("expected 1 interaction, got %d", got.Metrics.TotalInteractions)
	}
}

func TestSlidingWindowTruncation(t *testing.T) {
	// 30 updates append 60 individual messages against a cap of 50: the
	// oldest surviving message must be the 11th appended.
	store, _ := newTestStore(t, 50)
	ctx := context.Background()

	for i := 1; i <= 30; i++ {
		msg := fmt.Sprintf("message %d", i)
		if err := store.UpdateContext(ctx, "u1", msg, testResponse(fmt.Sprintf("reply %d", i))); err != nil {
			t.Fatalf("update %d failed: %v", i, err)
		}
	}

	got := store.GetContext(ctx, "u1")
	if len(got.ConversationHistory) != 50 {
		t.Fatalf("expected history capped at 50, got %d", len(got.ConversationHistory))
	}

	// Messages are appended user,assistant per update: the 11th appended
	// message overall is the user message of update 6.
	oldest := got.ConversationHistory[0]
	if oldest.Role != model.RoleUser || oldest.Content != "message 6" {
		t.Fatalf("expected oldest survivor to be user 'message 6', got %s %q", oldest.Role, oldest.Content)
	}

	if got.Metrics.TotalInteractions != 30 {
		t.Fatalf("expected 30 interactions, got %d", got.Metrics.TotalInteractions)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	store, _ := newTestStore(t, 50)
	ctx := context.Background()

	store.UpdateContext(ctx, "u1", "hello", testResponse("hi"))

	snapshot := store.GetContext(ctx, "u1")
	snapshot.ConversationHistory[0].Content = "tampered"
	snapshot.Metrics.TotalInteractions = 99

	fresh := store.GetContext(ctx, "u1")
	if fresh.ConversationHistory[0].Content != "hello" {
		t.Fatal("mutating a snapshot leaked into the store")
	}
	if fresh.Metrics.TotalInteractions != 1 {
		t.Fatal("mutating snapshot metrics leaked into the store")
	}
}

func TestPersistenceFailureSwallowed(t *testing.T) {
	// A broken durable store must not fail the in-memory update: the chat
	// flow's availability wins over context durability.
	docs := &failingDocs{}
	store := NewStore(&mockLogger{}, docs, 50)
	ctx := context.Background()

	if err := store.UpdateContext(ctx, "u1", "hello", testResponse("hi")); err != nil {
		t.Fatalf("persistence failure must be swallowed, got %v", err)
	}

	got := store.GetContext(ctx, "u1")
	if len(got.ConversationHistory) != 2 {
		t.Fatalf("in-memory update lost: %d messages", len(got.ConversationHistory))
	}

	// The async write does get attempted.
	deadline := time.Now().Add(time.Second)
	for {
		docs.mu.Lock()
		calls := docs.putCalls
		docs.mu.Unlock()
		if calls > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("expected an attempted durable write")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDurableMirror(t *testing.T) {
	store, docs := newTestStore(t, 50)
	ctx := context.Background()

	store.UpdateContext(ctx, "u1", "hello", testResponse("hi"))

	var stored model.Context
	deadline := time.Now().Add(time.Second)
	for {
		if err := docs.Get(ctx, CollectionContexts, "u1", &stored); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("context never mirrored to durable store")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if stored.LastMessage != "hello" {
		t.Fatalf("unexpected mirrored lastMessage: %q", stored.LastMessage)
	}
	if len(stored.ConversationHistory) != 2 {
		t.Fatalf("unexpected mirrored history length: %d", len(stored.ConversationHistory))
	}
}
