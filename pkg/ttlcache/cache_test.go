package ttlcache

import (
	"fmt"
	"testing"
	"time"
)

func TestGetMiss(t *testing.T) {
	c := New[string, int](10, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestSetGet(t *testing.T) {
	c := New[string, int](10, time.Minute)

	c.Set("a", 1)
	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Fatalf("expected (1, true), got (%d, %v)", got, ok)
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New[string, int](10, 20*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected entry to expire after ttl")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry should be removed, len = %d", c.Len())
	}

	// The expired slot must be fully reclaimed: re-inserting the key and
	// filling the cache must not evict unrelated keys early.
	c.Set("a", 2)
	c.Set("b", 3)
	if _, ok := c.Get("b"); !ok {
		t.Fatal("unrelated key evicted after expired-entry reuse")
	}
}

func TestCapacityEviction(t *testing.T) {
	const maxSize = 5
	c := New[string, int](maxSize, time.Minute)

	for i := 0; i < maxSize+1; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}

	if c.Len() != maxSize {
		t.Fatalf("expected %d entries, got %d", maxSize, c.Len())
	}
	if _, ok := c.Get("k0"); ok {
		t.Fatal("first-inserted key should have been evicted")
	}
	if _, ok := c.Get("k1"); !ok {
		t.Fatal("second-inserted key should survive")
	}
	if _, ok := c.Get("k5"); !ok {
		t.Fatal("newest key should be present")
	}
}

func TestOverwriteDoesNotGrow(t *testing.T) {
	c := New[string, int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	if c.Len() != 2 {
		t.Fatalf("overwrite grew the cache: len = %d", c.Len())
	}
	if got, _ := c.Get("a"); got != 3 {
		t.Fatalf("expected overwritten value 3, got %d", got)
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("overwrite must not evict other keys")
	}
}

func TestClear(t *testing.T) {
	c := New[string, int](10, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Clear, len = %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after Clear")
	}
}
