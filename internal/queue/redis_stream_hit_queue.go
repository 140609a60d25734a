package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/model"
	"eventhub/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	HitStreamKey     = "stats:hits"
	HitConsumerGroup = "stats-forwarders"

	streamBatch = 10
	ackTimeout  = time.Second
)

// Stream entry fields. A hit is stored flat so entries stay readable with XRANGE.
const (
	fieldApp       = "app"
	fieldURI       = "uri"
	fieldIP        = "ip"
	fieldTimestamp = "ts"
)

// RedisStreamConfig tunes redelivery. Zero fields fall back to defaults.
type RedisStreamConfig struct {
	ClaimMinIdleTime   time.Duration // pending entries idle this long are reclaimed
	MaxRetryCount      int           // deliveries after which an entry is dropped
	ReadGroupBlockTime time.Duration
	MaxLen             int64 // approximate stream cap
}

func (c *RedisStreamConfig) withDefaults() RedisStreamConfig {
	out := RedisStreamConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
		MaxLen:             100_000,
	}
	if c == nil {
		return out
	}
	if c.ClaimMinIdleTime > 0 {
		out.ClaimMinIdleTime = c.ClaimMinIdleTime
	}
	if c.MaxRetryCount > 0 {
		out.MaxRetryCount = c.MaxRetryCount
	}
	if c.ReadGroupBlockTime > 0 {
		out.ReadGroupBlockTime = c.ReadGroupBlockTime
	}
	if c.MaxLen > 0 {
		out.MaxLen = c.MaxLen
	}
	return out
}

// RedisStreamHitQueue keeps hits in a redis stream read by one consumer group,
// so several service instances share the forwarding work.
type RedisStreamHitQueue struct {
	rdb      *redis.Client
	consumer string
	cfg      RedisStreamConfig
	log      *zap.Logger
}

// NewRedisStreamHitQueue joins HitConsumerGroup, creating stream and group on first use.
// An empty consumerID gets a random one.
func NewRedisStreamHitQueue(ctx context.Context, rdb *redis.Client, consumerID string, config *RedisStreamConfig) (HitQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	q := &RedisStreamHitQueue{
		rdb:      rdb,
		consumer: "forwarder:" + consumerID,
		cfg:      config.withDefaults(),
		log:      logger.WithComponent("mq"),
	}

	err := rdb.XGroupCreateMkStream(ctx, HitStreamKey, HitConsumerGroup, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("create consumer group %s: %w", HitConsumerGroup, err)
	}
	return q, nil
}

func (q *RedisStreamHitQueue) PublishHit(ctx context.Context, hit *model.EndpointHit) error {
	err := q.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: HitStreamKey,
		MaxLen: q.cfg.MaxLen,
		Approx: true,
		Values: map[string]any{
			fieldApp:       hit.App,
			fieldURI:       hit.URI,
			fieldIP:        hit.IP,
			fieldTimestamp: model.FormatDateTime(hit.Timestamp.Time()),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publish hit %s: %w", hit.URI, err)
	}
	return nil
}

// SubscribeHits reads new entries and, in parallel, reclaims entries another
// consumer (or a Nack) left pending. The channel closes once ctx is done.
func (q *RedisStreamHitQueue) SubscribeHits(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q.readNew(gctx, out)
		return nil
	})
	g.Go(func() error {
		q.reclaimIdle(gctx, out)
		return nil
	})
	go func() {
		_ = g.Wait()
		close(out)
	}()

	return out, nil
}

func (q *RedisStreamHitQueue) readNew(ctx context.Context, out chan<- Delivery) {
	for ctx.Err() == nil {
		streams, err := q.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    HitConsumerGroup,
			Consumer: q.consumer,
			Streams:  []string{HitStreamKey, ">"},
			Count:    streamBatch,
			Block:    q.cfg.ReadGroupBlockTime,
		}).Result()
		switch {
		case errors.Is(err, redis.Nil):
			continue
		case err != nil:
			if ctx.Err() != nil {
				return
			}
			q.log.Error("read hits failed", zap.Error(err))
			sleep(ctx, time.Second)
			continue
		}

		for _, s := range streams {
			if !q.emit(ctx, out, s.Messages) {
				return
			}
		}
	}
}

// reclaimIdle takes over entries pending longer than ClaimMinIdleTime.
// Entries delivered MaxRetryCount times are acked and dropped.
func (q *RedisStreamHitQueue) reclaimIdle(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()

	cursor := "0-0"
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		msgs, next, err := q.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   HitStreamKey,
			Group:    HitConsumerGroup,
			Consumer: q.consumer,
			MinIdle:  q.cfg.ClaimMinIdleTime,
			Start:    cursor,
			Count:    streamBatch,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			if ctx.Err() != nil {
				return
			}
			q.log.Error("reclaim hits failed", zap.Error(err))
			continue
		}
		cursor = next
		if cursor == "" {
			cursor = "0-0"
		}

		if !q.emit(ctx, out, q.dropExhausted(ctx, msgs)) {
			return
		}
	}
}

// dropExhausted filters out entries whose delivery count reached MaxRetryCount.
func (q *RedisStreamHitQueue) dropExhausted(ctx context.Context, msgs []redis.XMessage) []redis.XMessage {
	if len(msgs) == 0 {
		return msgs
	}

	pending, err := q.rdb.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: HitStreamKey,
		Group:  HitConsumerGroup,
		Start:  msgs[0].ID,
		End:    msgs[len(msgs)-1].ID,
		Count:  int64(len(msgs)),
	}).Result()
	if err != nil {
		q.log.Warn("delivery counts unavailable", zap.Error(err))
		return msgs
	}
	deliveries := make(map[string]int64, len(pending))
	for _, p := range pending {
		deliveries[p.ID] = p.RetryCount
	}

	kept := msgs[:0]
	for _, msg := range msgs {
		if n := deliveries[msg.ID]; n >= int64(q.cfg.MaxRetryCount) {
			q.log.Warn("dropping hit after repeated failures", zap.String("message_id", msg.ID), zap.Int64("deliveries", n))
			q.ack(msg.ID)
			continue
		}
		kept = append(kept, msg)
	}
	return kept
}

// emit hands msgs to out. It returns false when ctx ended first.
func (q *RedisStreamHitQueue) emit(ctx context.Context, out chan<- Delivery, msgs []redis.XMessage) bool {
	for _, msg := range msgs {
		hit, err := decodeHit(msg.Values)
		if err != nil {
			q.log.Warn("dropping malformed hit", zap.String("message_id", msg.ID), zap.Error(err))
			q.ack(msg.ID)
			continue
		}

		id := msg.ID
		d := Delivery{
			Data: hit,
			Ack:  func() { q.ack(id) },
			Nack: func(requeue bool) {
				if !requeue {
					q.ack(id)
				}
				// a requeued entry stays pending until reclaimIdle picks it up
			},
		}
		select {
		case out <- d:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

func (q *RedisStreamHitQueue) ack(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), ackTimeout)
	defer cancel()
	if err := q.rdb.XAck(ctx, HitStreamKey, HitConsumerGroup, id).Err(); err != nil {
		q.log.Error("ack hit failed", zap.String("message_id", id), zap.Error(err))
	}
}

func decodeHit(values map[string]any) (*model.EndpointHit, error) {
	field := func(name string) (string, error) {
		v, ok := values[name].(string)
		if !ok {
			return "", fmt.Errorf("missing field %q", name)
		}
		return v, nil
	}

	var (
		hit model.EndpointHit
		ts  string
		err error
	)
	if hit.App, err = field(fieldApp); err != nil {
		return nil, err
	}
	if hit.URI, err = field(fieldURI); err != nil {
		return nil, err
	}
	if hit.IP, err = field(fieldIP); err != nil {
		return nil, err
	}
	if ts, err = field(fieldTimestamp); err != nil {
		return nil, err
	}
	t, err := time.ParseInLocation(model.DateTimeLayout, ts, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", fieldTimestamp, err)
	}
	hit.Timestamp = model.DateTime(t)
	return &hit, nil
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
