package service

import (
	"context"

	"eventhub/internal/metrics"
	"eventhub/internal/model"
	"eventhub/internal/queue"
	"eventhub/pkg/clock"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

// HitRecorder hands endpoint hits to the hit queue. Failures are logged, never returned.
type HitRecorder struct {
	queue   queue.HitQueue
	app     string
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewHitRecorder(q queue.HitQueue, app string, clk clock.Clock, m *metrics.Metrics) *HitRecorder {
	return &HitRecorder{
		queue:   q,
		app:     app,
		clock:   clk,
		metrics: m,
	}
}

// Record enqueues a hit of uri from ip. A nil recorder does nothing.
func (r *HitRecorder) Record(ctx context.Context, uri, ip string) {
	if r == nil || r.queue == nil {
		return
	}

	hit := &model.EndpointHit{
		App:       r.app,
		URI:       uri,
		IP:        ip,
		Timestamp: model.DateTime(r.clock.Now()),
	}

	err := r.queue.PublishHit(context.WithoutCancel(ctx), hit)
	r.metrics.IncHitPublished(err == nil)
	if err != nil {
		logger.WithComponent("service").Warn("failed to publish hit", zap.String("uri", uri), zap.Error(err))
	}
}
