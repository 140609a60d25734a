//go:build integration

package queue

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/model"
	"eventhub/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRabbitQueue(t *testing.T) *RabbitHitQueue {
	t.Helper()
	url, cleanup, err := testutil.StartRabbitMQ(context.Background())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	q, err := NewRabbitHitQueue(url, "eventhub.hits", "hits-"+uuid.NewString()[:8])
	require.NoError(t, err)
	t.Cleanup(q.Close)
	return q
}

func TestRabbitHitQueue_RoundTrip(t *testing.T) {
	q := newTestRabbitQueue(t)

	t.Run("Success - published hit is consumed and acked", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
		defer cancel()

		ts := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, q.PublishHit(ctx, &model.EndpointHit{
			App:       "main-service",
			URI:       "/events/9",
			IP:        "10.0.0.9",
			Timestamp: model.DateTime(ts),
		}))

		msgs, err := q.SubscribeHits(ctx)
		require.NoError(t, err)

		select {
		case d := <-msgs:
			require.NotNil(t, d.Data)
			assert.Equal(t, "main-service", d.Data.App)
			assert.Equal(t, "/events/9", d.Data.URI)
			assert.True(t, d.Data.Timestamp.Time().Equal(ts))
			d.Ack()
		case <-ctx.Done():
			t.Fatal("no delivery before timeout")
		}
	})

	t.Run("Nacked hit is redelivered once", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
		defer cancel()

		require.NoError(t, q.PublishHit(ctx, &model.EndpointHit{URI: "/events/1"}))

		msgs, err := q.SubscribeHits(ctx)
		require.NoError(t, err)

		first := <-msgs
		assert.Equal(t, "/events/1", first.Data.URI)
		first.Nack(true)

		select {
		case again := <-msgs:
			assert.Equal(t, "/events/1", again.Data.URI)
			again.Nack(true)
		case <-ctx.Done():
			t.Fatal("nacked hit was not redelivered")
		}

		select {
		case d := <-msgs:
			t.Fatalf("redelivered hit came back again: %s", d.Data.URI)
		case <-time.After(500 * time.Millisecond):
		}
	})
}
