package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/cardgen/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestCardKey(t *testing.T) {
	base := CardKey("thinkpad", 42, 300, "html")
	if base != CardKey("thinkpad", 42, 300, "html") {
		t.Error("CardKey should be deterministic")
	}

	variants := []string{
		CardKey("matrix", 42, 300, "html"),
		CardKey("thinkpad", 43, 300, "html"),
		CardKey("thinkpad", 42, 301, "html"),
		CardKey("thinkpad", 42, 300, "json"),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d should produce a different key", i)
		}
	}
	if !strings.HasPrefix(base, "card:") {
		t.Errorf("CardKey should be prefixed: %s", base)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("empty cache should miss")
	}

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	// Touch a so b becomes the eviction candidate.
	if data, hit, _ := c.Get(ctx, "a"); !hit || string(data) != "1" {
		t.Errorf("Get(a) = %q, %v", data, hit)
	}
	_ = c.Set(ctx, "c", []byte("3"), 0)

	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("least recently used entry should be evicted")
	}
	if _, hit, _ := c.Get(ctx, "a"); !hit {
		t.Error("recently used entry should survive")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	_ = c.Delete(ctx, "a")
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("deleted entry should miss")
	}
}

func TestMemoryCacheOverwrite(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	_ = c.Set(ctx, "k", []byte("old"), 0)
	_ = c.Set(ctx, "k", []byte("new"), 0)

	if data, _, _ := c.Get(ctx, "k"); string(data) != "new" {
		t.Errorf("Get = %q, want new", data)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestMemoryCacheTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}

	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Error("expired entry should be dropped")
	}
}

func TestMemoryCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(16)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 200 {
				key := fmt.Sprintf("k%d", (i*200+j)%32)
				_ = c.Set(ctx, key, []byte(key), time.Minute)
				_, _, _ = c.Get(ctx, key)
			}
		}()
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len() = %d, want at most 16", c.Len())
	}
	_ = c.Close()
	if c.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", c.Len())
	}
}

func TestNewRedisCacheInvalidURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "not a url")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
