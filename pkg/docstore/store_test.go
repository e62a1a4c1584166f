package docstore

import (
	"context"
	"errors"
	"testing"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store, err := NewStore(StoreTypeMemory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	in := testDoc{Name: "ctx-u1", Count: 3}
	if err := store.Put(ctx, "contexts", "u1", in); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	var out testDoc
	if err := store.Get(ctx, "contexts", "u1", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store, _ := NewStore(StoreTypeMemory)

	var out testDoc
	err := store.Get(context.Background(), "contexts", "missing", &out)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store, _ := NewStore(StoreTypeMemory)
	ctx := context.Background()

	store.Put(ctx, "c", "id", testDoc{Name: "x"})
	if err := store.Delete(ctx, "c", "id"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var out testDoc
	if err := store.Get(ctx, "c", "id", &out); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent document is a no-op, not an error.
	if err := store.Delete(ctx, "c", "id"); err != nil {
		t.Fatalf("delete of absent document errored: %v", err)
	}
}

func TestCollectionsAreIsolated(t *testing.T) {
	store, _ := NewStore(StoreTypeMemory)
	ctx := context.Background()

	store.Put(ctx, "contexts", "u1", testDoc{Name: "context"})
	store.Put(ctx, "sessions", "u1", testDoc{Name: "session"})

	var out testDoc
	if err := store.Get(ctx, "contexts", "u1", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out.Name != "context" {
		t.Fatalf("collections collided: got %q", out.Name)
	}
}

func TestFactoryRejectsBadConfig(t *testing.T) {
	if _, err := NewStore(StoreTypeRedis); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for redis without client, got %v", err)
	}
	if _, err := NewStore("cassandra"); !errors.Is(err, ErrInvalidStoreType) {
		t.Fatalf("expected ErrInvalidStoreType, got %v", err)
	}
}
