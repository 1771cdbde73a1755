package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a Limiter shared by every instance using the same Redis.
// The window starts with the first request of a key and expires with it.
//
// Every call sends INCR and EXPIRE NX in one MULTI/EXEC, so a key whose TTL was lost
// gets one on the next request instead of blocking the client forever. EXPIRE NX
// needs Redis 7.0 or later.
type RedisLimiter struct {
	rdb      *redis.Client
	prefix   string
	limit    int
	interval time.Duration
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a RedisLimiter. Keys are stored as "{prefix}:{key}".
func NewRedisLimiter(rdb *redis.Client, prefix string, limit int, interval time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, prefix: prefix, limit: limit, interval: interval}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	k := l.prefix + ":" + key

	var incr *redis.IntCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		// NX keeps the running window; it only sets a TTL on a key that has none
		pipe.ExpireNX(ctx, k, l.interval)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit: %w", err)
	}
	return newDecision(l.limit, incr.Val()), nil
}
