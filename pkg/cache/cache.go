// Package cache stores rendered cards so repeated requests for the same
// preset, seed and shape count are served without drawing again.
//
// Cards are a pure function of their inputs, so an entry never goes stale;
// TTLs only bound memory. Three implementations are provided:
//
//   - [MemoryCache]: bounded in-process LRU, the default for the preview server
//   - [RedisCache]: shared cache for several server instances
//   - [NullCache]: caching disabled
//
// Keys come from [CardKey]:
//
//	key := cache.CardKey("thinkpad", 42, 300, "html")
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// CardKey returns the cache key of a card rendering.
// format distinguishes renderings of the same card, e.g. "html" or "json".
func CardKey(preset string, seed uint64, count int, format string) string {
	return hashKey("card", preset, seed, count, format)
}
