//go:build integration

package cache

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"eventhub/internal/testutil"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	client, cleanup, err := testutil.StartRedis(context.Background())
	if err != nil {
		log.Fatalf("Failed to start test redis: %v", err)
	}
	testRdb = client

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func TestRedisViewsCache_GetSet(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testRdb.FlushAll(ctx).Err())

	c := NewRedisViewsCache(testRdb, time.Minute)
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("miss", func(t *testing.T) {
		_, ok, err := c.Get(ctx, 1, start, end)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("hit after set", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, 1, start, end, 42))

		views, ok, err := c.Get(ctx, 1, start, end)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(42), views)
	})

	t.Run("windows are independent", func(t *testing.T) {
		_, ok, err := c.Get(ctx, 1, start, end.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ttl armed once", func(t *testing.T) {
		ttl, err := testRdb.PTTL(ctx, "event:1:views").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})
}
