package queue

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Delivery) Delivery {
	t.Helper()
	select {
	case d, ok := <-ch:
		require.True(t, ok, "channel closed")
		return d
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
	}
	return Delivery{}
}

func TestMemoryHitQueue_PublishSubscribe(t *testing.T) {
	t.Run("Success - publish then consume", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		q := NewMemoryHitQueue(4)
		require.NoError(t, q.PublishHit(ctx, &model.EndpointHit{URI: "/events/1"}))

		msgs, err := q.SubscribeHits(ctx)
		require.NoError(t, err)

		d := receive(t, msgs)
		assert.Equal(t, "/events/1", d.Data.URI)
		d.Ack()
	})

	t.Run("Failed - full buffer drops the hit", func(t *testing.T) {
		q := NewMemoryHitQueue(1)
		require.NoError(t, q.PublishHit(t.Context(), &model.EndpointHit{URI: "/events/1"}))

		err := q.PublishHit(t.Context(), &model.EndpointHit{URI: "/events/2"})
		assert.ErrorIs(t, err, ErrQueueFull)
	})

	t.Run("Success - nack requeues until max attempts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		q := NewMemoryHitQueue(4)
		require.NoError(t, q.PublishHit(ctx, &model.EndpointHit{URI: "/events/1"}))

		msgs, err := q.SubscribeHits(ctx)
		require.NoError(t, err)

		for i := 0; i < memoryMaxAttempts; i++ {
			d := receive(t, msgs)
			assert.Equal(t, "/events/1", d.Data.URI)
			d.Nack(true)
		}

		select {
		case d := <-msgs:
			t.Fatalf("unexpected redelivery of %s", d.Data.URI)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Success - channel closes on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		q := NewMemoryHitQueue(1)

		msgs, err := q.SubscribeHits(ctx)
		require.NoError(t, err)
		cancel()

		select {
		case _, ok := <-msgs:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("channel not closed")
		}
	})
}

func TestDecodeHit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		hit, err := decodeHit(map[string]any{
			fieldApp:       "main-service",
			fieldURI:       "/events/3",
			fieldIP:        "192.0.2.1",
			fieldTimestamp: "2030-01-02 03:04:05",
		})

		require.NoError(t, err)
		assert.Equal(t, "/events/3", hit.URI)
		assert.Equal(t, "192.0.2.1", hit.IP)
		assert.True(t, hit.Timestamp.Time().Equal(time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)))
	})

	t.Run("Failed - missing field", func(t *testing.T) {
		_, err := decodeHit(map[string]any{fieldApp: "main-service", fieldURI: "/events/3"})
		assert.ErrorContains(t, err, `"ip"`)
	})

	t.Run("Failed - bad timestamp", func(t *testing.T) {
		_, err := decodeHit(map[string]any{
			fieldApp:       "main-service",
			fieldURI:       "/events/3",
			fieldIP:        "192.0.2.1",
			fieldTimestamp: "yesterday",
		})
		assert.Error(t, err)
	})
}
