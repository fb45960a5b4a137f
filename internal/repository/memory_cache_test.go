package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))

	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_BoundedGrowth(t *testing.T) {
	cache := NewMemoryCache()
	cache.maxEntries = 8
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("key-%d", i), "v"))
		assert.LessOrEqual(t, len(cache.data), 8)
	}

	// Overwriting an existing key must not evict anything.
	before := len(cache.data)
	for key := range cache.data {
		require.NoError(t, cache.Set(ctx, key, "updated"))
		val, ok := cache.Get(ctx, key)
		assert.True(t, ok)
		assert.Equal(t, "updated", val)
		break
	}
	assert.Equal(t, before, len(cache.data))
}
