package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/cmdform/pkg/adapters/memory"
	"github.com/aretw0/cmdform/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Contract(t *testing.T) {
	cache := memory.NewCache()
	ports.RunPageCacheContract(t, cache)
}

func TestMemoryCache_TTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := memory.NewCache(
		memory.WithTTL(time.Minute),
		memory.WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "cli/build", []byte("page")))

	now = now.Add(30 * time.Second)
	_, ok, err := cache.Get(ctx, "cli/build")
	require.NoError(t, err)
	assert.True(t, ok, "entry should still be fresh")

	now = now.Add(time.Minute)
	_, ok, err = cache.Get(ctx, "cli/build")
	require.NoError(t, err)
	assert.False(t, ok, "entry should have expired")
	assert.Equal(t, 0, cache.Len(), "expired entry should be evicted on read")
}

func TestMemoryCache_ExpiredEntryReplacedDuringGet(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var onNow func()
	cache := memory.NewCache(
		memory.WithTTL(time.Minute),
		memory.WithClock(func() time.Time {
			if fn := onNow; fn != nil {
				onNow = nil
				fn()
			}
			return now
		}),
	)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "cli/build", []byte("stale")))
	now = now.Add(2 * time.Minute)

	// a writer refreshes the key between the expiry check and the eviction
	onNow = func() {
		require.NoError(t, cache.Set(ctx, "cli/build", []byte("fresh")))
	}
	_, ok, err := cache.Get(ctx, "cli/build")
	require.NoError(t, err)
	assert.False(t, ok)

	page, ok, err := cache.Get(ctx, "cli/build")
	require.NoError(t, err)
	require.True(t, ok, "refreshed entry must survive the eviction")
	assert.Equal(t, "fresh", string(page))
}
