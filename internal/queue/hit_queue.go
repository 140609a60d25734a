package queue

import (
	"context"

	"eventhub/internal/model"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

// Delivery is one hit handed to a consumer. Exactly one of Ack or Nack must be called.
type Delivery struct {
	Data *model.EndpointHit
	Ack  func()
	Nack func(requeue bool)
}

type HitQueue interface {
	// PublishHit enqueues a hit for asynchronous delivery to the stats service.
	PublishHit(ctx context.Context, hit *model.EndpointHit) error
	// SubscribeHits streams queued hits until ctx is done.
	SubscribeHits(ctx context.Context) (<-chan Delivery, error)
}

// memoryMaxAttempts bounds redelivery of a hit in the in-memory queue.
const memoryMaxAttempts = 3

type memoryItem struct {
	hit      *model.EndpointHit
	attempts int
}

// MemoryHitQueue is a process-local queue backed by a buffered channel.
// Hits are lost on restart.
type MemoryHitQueue struct {
	ch chan memoryItem
}

func NewMemoryHitQueue(bufferSize int) HitQueue {
	return &MemoryHitQueue{
		ch: make(chan memoryItem, bufferSize),
	}
}

// PublishHit never blocks the request path: a full buffer drops the hit.
func (q *MemoryHitQueue) PublishHit(ctx context.Context, hit *model.EndpointHit) error {
	select {
	case q.ch <- memoryItem{hit: hit}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *MemoryHitQueue) SubscribeHits(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: item.hit,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						item.attempts++
						if item.attempts >= memoryMaxAttempts {
							logger.WithComponent("mq").Warn("discard hit after max attempts",
								zap.String("uri", item.hit.URI), zap.Int("attempts", item.attempts))
							return
						}
						select {
						case q.ch <- item:
						default:
							logger.WithComponent("mq").Warn("hit dropped on requeue, buffer full", zap.String("uri", item.hit.URI))
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
