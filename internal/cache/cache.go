// Package cache provides an optional, short-lived redis cache for search
// responses. A nil *Cache is valid and disables caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agroempleo/candidate-search/internal/search"
)

// DefaultTTL keeps entries short-lived; profile edits should surface in
// search quickly.
const DefaultTTL = 30 * time.Second

// Cache wraps a redis client for search-result caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New parses redisURL, verifies connectivity, and returns a cache.
func New(ctx context.Context, redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}, nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Key derives a deterministic cache key from a normalized request and the
// caller context. The caller is part of the key because it changes the
// projected payload (phone disclosure).
func Key(req *search.Request, caller search.CallerContext) string {
	payload, _ := json.Marshal(struct {
		Req    *search.Request      `json:"req"`
		Caller search.CallerContext `json:"caller"`
	}{req, caller})
	sum := sha256.Sum256(payload)
	return "search:" + hex.EncodeToString(sum[:])
}

// Get returns a cached result, or nil on miss or cache error.
func (c *Cache) Get(ctx context.Context, key string) *search.Result {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] get failed: %v", err)
		}
		return nil
	}
	var result search.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return &result
}

// Set stores a result. Partial results are not cached: a degraded answer
// should not outlive the backend hiccup that produced it.
func (c *Cache) Set(ctx context.Context, key string, result *search.Result) {
	if c == nil || c.client == nil || result == nil || result.Partial {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("[cache] set failed: %v", err)
	}
}
