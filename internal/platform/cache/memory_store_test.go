package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_TTL(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := NewMemoryStore(WithClock(clock.Now))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	got, ok := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	clock.Advance(59 * time.Second)
	_, ok = store.Get(ctx, "k")
	assert.True(t, ok, "entry should be fresh before TTL")

	clock.Advance(time.Second)
	_, ok = store.Get(ctx, "k")
	assert.False(t, ok, "entry should expire at TTL")
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_NonPositiveTTLRemoves(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	_, ok := store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", in, time.Minute))
	in[0] = 'x'

	out, _ := store.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), out)
	out[0] = 'y'

	again, _ := store.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "missing"))

	_, ok := store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStore_Eviction(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := NewMemoryStore(WithClock(clock.Now), WithMaxEntries(3))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "mid", []byte("2"), 5*time.Minute))
	require.NoError(t, store.Set(ctx, "long", []byte("3"), 10*time.Minute))

	// Full: the entry closest to expiry goes.
	require.NoError(t, store.Set(ctx, "new", []byte("4"), 10*time.Minute))
	assert.Equal(t, 3, store.Len())
	_, ok := store.Get(ctx, "short")
	assert.False(t, ok)

	// Expired entries are purged before anything fresh is evicted.
	clock.Advance(6 * time.Minute)
	require.NoError(t, store.Set(ctx, "newer", []byte("5"), time.Minute))
	for _, k := range []string{"long", "new", "newer"} {
		_, ok := store.Get(ctx, k)
		assert.True(t, ok, k)
	}
}

func TestMemoryStore_OverwriteDoesNotEvict(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(WithMaxEntries(2))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), 2*time.Minute))
	require.NoError(t, store.Set(ctx, "a", []byte("3"), time.Minute))

	got, ok := store.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, []byte("3"), got)
	_, ok = store.Get(ctx, "b")
	assert.True(t, ok)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(WithMaxEntries(50))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (i*j)%80)
				_ = store.Set(ctx, key, []byte("v"), time.Minute)
				_, _ = store.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, store.Len(), 50)
}
