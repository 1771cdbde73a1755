// Package cache provides key-value stores with per-entry TTL and a read-through helper
// used by the upstream API clients.
package cache

import (
	"context"
	"strings"
	"time"
)

// Store is a namespaced key-value store with per-entry TTL.
// Implementations treat backend failures on Get as a miss.
type Store interface {
	// Get returns the value for key and whether a fresh entry exists.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Key joins a namespace and its parts into a cache key, e.g. Key("range90d", "bitcoin", "usd")
// yields "range90d:bitcoin:usd".
func Key(namespace string, parts ...string) string {
	var b strings.Builder
	b.WriteString(namespace)
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(safe(p))
	}
	return b.String()
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
