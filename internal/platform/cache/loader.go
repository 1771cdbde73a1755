package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// GetOrLoad returns the value cached under key, or calls load on a miss and caches
// its result for ttl.
//
// A hit is returned as stored, without calling load. A corrupted entry is deleted
// and treated as a miss. Errors from load are returned unchanged and nothing is cached.
// Writing the cache is best effort: a failed Set is logged, not returned.
//
// Concurrent misses on the same key may all call load; the last Set wins.
func GetOrLoad[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if store == nil {
		return load(ctx)
	}

	// 1) Check cache
	if b, ok := store.Get(ctx, key); ok {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			slog.Debug("cache hit", "key", key)
			return out, nil
		}
		// Delete corrupted cache entry
		_ = store.Delete(ctx, key)
	}

	// 2) Fall back to the loader
	out, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	// 3) Store in cache (best effort)
	b, err := json.Marshal(out)
	if err != nil {
		slog.Warn("cache encode failed", "key", key, "error", err)
		return out, nil
	}
	if err := store.Set(ctx, key, b, ttl); err != nil {
		slog.Warn("cache set failed", "key", key, "error", err)
	}
	return out, nil
}
