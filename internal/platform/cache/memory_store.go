package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries is the capacity of a MemoryStore created without WithMaxEntries.
const DefaultMaxEntries = 200

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore は Redis 未設定時に使うプロセス内の Store です。
// 上限に達したら期限切れのエントリを先に削除し、それでも足りなければ最も早く期限が切れるものを追い出します。
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	maxEntries int
	now        func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMaxEntries bounds the number of entries. Values <= 0 are ignored.
func WithMaxEntries(n int) MemoryOption {
	return func(s *MemoryStore) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries:    make(map[string]memoryEntry),
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the value if the entry exists and has not expired.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true
}

// Set stores a copy of value. A non-positive ttl removes the key.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ttl <= 0 {
		delete(s.entries, key)
		return nil
	}
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxEntries {
		s.evictLocked()
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.entries[key] = memoryEntry{value: v, expiresAt: s.now().Add(ttl)}
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet purged.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *MemoryStore) evictLocked() {
	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
	if len(s.entries) < s.maxEntries {
		return
	}

	var (
		victim   string
		earliest time.Time
	)
	for k, e := range s.entries {
		if victim == "" || e.expiresAt.Before(earliest) {
			victim, earliest = k, e.expiresAt
		}
	}
	delete(s.entries, victim)
}
