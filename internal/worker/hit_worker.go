package worker

import (
	"context"
	"time"

	"eventhub/internal/metrics"
	"eventhub/internal/queue"
	"eventhub/internal/stats"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

type HitWorker interface {
	// Run forwards queued hits to the stats service until ctx is done.
	Run(ctx context.Context) error
}

type HitWorkerImpl struct {
	client  stats.Client
	queue   queue.HitQueue
	metrics *metrics.Metrics
	timeout time.Duration
}

func NewHitWorker(client stats.Client, q queue.HitQueue, m *metrics.Metrics) HitWorker {
	return &HitWorkerImpl{
		client:  client,
		queue:   q,
		metrics: m,
		timeout: 5 * time.Second,
	}
}

func (w *HitWorkerImpl) Run(ctx context.Context) error {
	msgs, err := w.queue.SubscribeHits(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("worker")
	log.Info("hit worker started")

	for msg := range msgs {
		callCtx, cancel := context.WithTimeout(ctx, w.timeout)
		err := w.client.RecordHit(callCtx, *msg.Data)
		cancel()

		w.metrics.IncHitDelivered(err == nil)
		if err != nil {
			// requeued; memory and redis queues cap the attempts
			log.Warn("failed to record hit", zap.String("uri", msg.Data.URI), zap.Error(err))
			msg.Nack(true)
			continue
		}
		msg.Ack()
	}

	log.Info("hit worker stopped")
	return nil
}
