package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/docstore"
)

func newTestService(t *testing.T) (*implService, docstore.Store) {
	t.Helper()
	docs, err := docstore.NewStore(docstore.StoreTypeMemory)
	if err != nil {
		t.Fatalf("docstore setup: %v", err)
	}
	return NewService(&mockLogger{}, docs, 30), docs
}

func TestCreateSession(t *testing.T) {
	svc, docs := newTestService(t)
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "u1", model.SessionTaxFiling)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected generated session ID")
	}
	if session.Type != model.SessionTaxFiling || session.Status != model.SessionActive {
		t.Fatalf("unexpected session: %+v", session)
	}

	// Session creation is durable synchronously, not best-effort.
	var stored model.Session
	if err := docs.Get(ctx, CollectionSessions, session.ID, &stored); err != nil {
		t.Fatalf("session not in durable store: %v", err)
	}
	if stored.UserID != "u1" {
		t.Fatalf("unexpected stored session: %+v", stored)
	}
}

func TestCreateSessionFailsClosed(t *testing.T) {
	svc := NewService(&mockLogger{}, &failingDocs{}, 30)

	_, err := svc.CreateSession(context.Background(), "u1", model.SessionChat)
	if !errors.Is(err, ErrSessionPersist) {
		t.Fatalf("expected ErrSessionPersist when durable write fails, got %v", err)
	}

	// The failed session must not be visible afterwards.
	sessions, _ := svc.ListSessions(context.Background(), "u1")
	if len(sessions) != 0 {
		t.Fatalf("failed session leaked into listing: %d", len(sessions))
	}
}

func TestGetSessionNilWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	session, err := svc.GetSession(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("absent session is not an error, got %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil session, got %+v", session)
	}
}

func TestGetSessionFallsBackToDurableStore(t *testing.T) {
	svc, docs := newTestService(t)
	ctx := context.Background()

	// Simulate a session created by an earlier process.
	stored := model.Session{
		ID:        "restored-1",
		UserID:    "u1",
		Type:      model.SessionChat,
		Status:    model.SessionActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := docs.Put(ctx, CollectionSessions, stored.ID, stored); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	session, err := svc.GetSession(ctx, "restored-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session == nil || session.UserID != "u1" {
		t.Fatalf("expected restored session, got %+v", session)
	}
}

func TestListSessionsRetentionWindow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	recent, err := svc.CreateSession(ctx, "u1", model.SessionChat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Backdate one session past the retention window directly in the index.
	old, _ := svc.CreateSession(ctx, "u1", model.SessionDocumentReview)
	svc.mu.Lock()
	svc.sessions[old.ID].CreatedAt = time.Now().Add(-31 * 24 * time.Hour)
	svc.mu.Unlock()

	sessions, err := svc.ListSessions(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected only the recent session, got %d", len(sessions))
	}
	if sessions[0].ID != recent.ID {
		t.Fatalf("wrong session survived the window: %s", sessions[0].ID)
	}

	// Expired sessions stay retrievable directly; they are filtered, not deleted.
	expired, err := svc.GetSession(ctx, old.ID)
	if err != nil || expired == nil {
		t.Fatalf("expired session should still exist: %v, %+v", err, expired)
	}
}
