//go:build integration

package queue

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"eventhub/internal/model"
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

func cleanupStream(t *testing.T) {
	t.Helper()
	require.NoError(t, testRdb.Del(context.Background(), HitStreamKey).Err())
}

func TestNewRedisStreamHitQueue(t *testing.T) {
	cleanupStream(t)

	t.Run("success", func(t *testing.T) {
		q, err := NewRedisStreamHitQueue(t.Context(), testRdb, "test-consumer", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})

	t.Run("existing group is reused", func(t *testing.T) {
		_, err := NewRedisStreamHitQueue(t.Context(), testRdb, "", nil)
		require.NoError(t, err)
	})
}

func TestRedisStreamHitQueue_SubscribeHits(t *testing.T) {
	cleanupStream(t)
	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	q, err := NewRedisStreamHitQueue(ctx, testRdb, "deliver-test", &RedisStreamConfig{ReadGroupBlockTime: 100 * time.Millisecond})
	require.NoError(t, err)

	ts := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, q.PublishHit(ctx, &model.EndpointHit{
		App:       "main-service",
		URI:       "/events/7",
		IP:        "10.0.0.7",
		Timestamp: model.DateTime(ts),
	}))

	msgs, err := q.SubscribeHits(ctx)
	require.NoError(t, err)

	select {
	case d := <-msgs:
		require.NotNil(t, d.Data)
		assert.Equal(t, "/events/7", d.Data.URI)
		assert.Equal(t, "10.0.0.7", d.Data.IP)
		assert.True(t, d.Data.Timestamp.Time().Equal(ts))
		d.Ack()
	case <-ctx.Done():
		t.Fatal("no delivery before timeout")
	}

	require.Eventually(t, func() bool {
		pending, err := testRdb.XPending(context.Background(), HitStreamKey, HitConsumerGroup).Result()
		return err == nil && pending.Count == 0
	}, 2*time.Second, 50*time.Millisecond)
}

func TestRedisStreamHitQueue_SubscribeHits_NackIsRedelivered(t *testing.T) {
	cleanupStream(t)
	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	q, err := NewRedisStreamHitQueue(ctx, testRdb, "retry-test", &RedisStreamConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, q.PublishHit(ctx, &model.EndpointHit{URI: "/events/1"}))

	msgs, err := q.SubscribeHits(ctx)
	require.NoError(t, err)

	first := <-msgs
	first.Nack(true)

	select {
	case again := <-msgs:
		assert.Equal(t, "/events/1", again.Data.URI)
		again.Ack()
	case <-ctx.Done():
		t.Fatal("nacked hit was not redelivered")
	}
}
