// Package ratelimiter limits how often a client may call the API using fixed windows.
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
}

// Limiter counts requests per key in fixed windows.
type Limiter interface {
	// Allow records one request for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (Decision, error)
}

// newDecision derives a Decision from the request count of the current window.
func newDecision(limit int, count int64) Decision {
	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: count <= int64(limit), Limit: limit, Remaining: int(remaining)}
}

type window struct {
	count     int64
	lastReset time.Time
}

// MemoryLimiter は Redis が使えない場合のプロセス内 Limiter です。
type MemoryLimiter struct {
	mu       sync.Mutex
	limit    int           // requests per interval
	interval time.Duration // window length
	windows  map[string]*window
	now      func() time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

// sweepThreshold is the number of tracked keys above which stale windows are dropped.
const sweepThreshold = 10_000

// NewMemoryLimiter は、キーごとに interval あたり limit 回まで許可する MemoryLimiter を生成します。
func NewMemoryLimiter(limit int, interval time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow implements Limiter. It never returns an error.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	// Reset the count once the interval has passed
	if !ok || now.Sub(w.lastReset) >= l.interval {
		if !ok && len(l.windows) >= sweepThreshold {
			l.sweepLocked(now)
		}
		w = &window{lastReset: now}
		l.windows[key] = w
	}
	w.count++
	return newDecision(l.limit, w.count), nil
}

func (l *MemoryLimiter) sweepLocked(now time.Time) {
	for k, w := range l.windows {
		if now.Sub(w.lastReset) >= l.interval {
			delete(l.windows, k)
		}
	}
}
