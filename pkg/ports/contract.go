package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPageCacheContract runs a suite of tests to verify that a PageCache
// implementation adheres to the defined interface contract.
func RunPageCacheContract(t *testing.T, cache PageCache) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405") + "/"

	t.Run("Set and Get", func(t *testing.T) {
		key := prefix + "cli/build"
		page := []byte("<form>build</form>")

		require.NoError(t, cache.Set(ctx, key, page), "Set should not return error")

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.True(t, ok)
		assert.Equal(t, page, got)
	})

	t.Run("Get Missing", func(t *testing.T) {
		got, ok, err := cache.Get(ctx, prefix+"missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := prefix + "cli"
		require.NoError(t, cache.Set(ctx, key, []byte("v1")))
		require.NoError(t, cache.Set(ctx, key, []byte("v2")))

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v2", string(got))
	})

	t.Run("Isolation", func(t *testing.T) {
		key := prefix + "isolated"
		page := []byte("original")
		require.NoError(t, cache.Set(ctx, key, page))
		page[0] = 'X'

		got, _, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "original", string(got), "cache must not alias caller buffers")
	})
}
