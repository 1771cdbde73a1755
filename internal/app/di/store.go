package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"market_backend/internal/platform/cache"
	"market_backend/internal/shared/ratelimiter"
)

// NewCacheStore creates the upstream response cache.
// If Redis is available, it returns a Redis-backed store.
// Otherwise, it falls back to a bounded in-process store.
func NewCacheStore(rdb *redis.Client) cache.Store {
	if rdb != nil {
		return cache.NewRedisStore(rdb)
	}
	return cache.NewMemoryStore()
}

// NewRateLimiter creates the per-client rate limiter, backed by Redis when available.
func NewRateLimiter(rdb *redis.Client, limit int, interval time.Duration) ratelimiter.Limiter {
	if rdb != nil {
		return ratelimiter.NewRedisLimiter(rdb, "ratelimit", limit, interval)
	}
	return ratelimiter.NewMemoryLimiter(limit, interval)
}
