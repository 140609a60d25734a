package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"eventhub/internal/model"
	"eventhub/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	ExchangeKind      = "topic"
	HitRoutingKey     = "hit.recorded"
	rabbitPrefetchHit = 32
)

// RabbitHitQueue publishes hits to a durable topic exchange and consumes them
// from a queue bound to HitRoutingKey.
type RabbitHitQueue struct {
	conn     *amqp.Connection
	pubCh    *amqp.Channel
	pubMu    sync.Mutex
	exchange string
	queue    string
	log      *zap.Logger
}

func NewRabbitHitQueue(url, exchange, queueName string) (*RabbitHitQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	q, err := ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	if err := ch.QueueBind(q.Name, HitRoutingKey, exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue bind: %w", err)
	}

	return &RabbitHitQueue{
		conn:     conn,
		pubCh:    ch,
		exchange: exchange,
		queue:    q.Name,
		log:      logger.WithComponent("mq"),
	}, nil
}

func (q *RabbitHitQueue) PublishHit(ctx context.Context, hit *model.EndpointHit) error {
	body, err := json.Marshal(hit)
	if err != nil {
		return fmt.Errorf("marshal hit: %w", err)
	}

	q.pubMu.Lock()
	defer q.pubMu.Unlock()

	err = q.pubCh.PublishWithContext(ctx,
		q.exchange,
		HitRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish hit: %w", err)
	}
	return nil
}

// SubscribeHits opens a dedicated consumer channel with manual acks.
func (q *RabbitHitQueue) SubscribeHits(ctx context.Context) (<-chan Delivery, error) {
	ch, err := q.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if err := ch.Qos(rabbitPrefetchHit, 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("rabbitmq qos: %w", err)
	}

	msgs, err := ch.Consume(
		q.queue,
		"",    // consumer tag
		false, // manual ack after forwarding
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("rabbitmq consume: %w", err)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					q.log.Warn("rabbitmq delivery channel closed")
					return
				}
				d, ok := q.newDelivery(msg)
				if !ok {
					continue
				}
				select {
				case out <- d:
				case <-ctx.Done():
					_ = msg.Nack(false, true)
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *RabbitHitQueue) newDelivery(msg amqp.Delivery) (Delivery, bool) {
	var hit model.EndpointHit
	if err := json.Unmarshal(msg.Body, &hit); err != nil {
		q.log.Warn("unmarshal hit failed", zap.Error(err))
		_ = msg.Nack(false, false)
		return Delivery{}, false
	}

	return Delivery{
		Data: &hit,
		Ack: func() {
			if err := msg.Ack(false); err != nil {
				q.log.Error("ack failed", zap.Error(err))
			}
		},
		Nack: func(requeue bool) {
			// a redelivered message is not requeued again
			if err := msg.Nack(false, requeue && !msg.Redelivered); err != nil {
				q.log.Error("nack failed", zap.Error(err))
			}
		},
	}, true
}

func (q *RabbitHitQueue) Close() {
	if q.pubCh != nil {
		q.pubCh.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
}
