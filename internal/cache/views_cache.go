package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewsCache keeps recently computed view counts for a single event and window.
type ViewsCache interface {
	// Get returns the cached count; ok is false on a miss.
	Get(ctx context.Context, eventID int64, start, end time.Time) (views int64, ok bool, err error)
	Set(ctx context.Context, eventID int64, start, end time.Time, views int64) error
}

type RedisViewsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisViewsCache(client *redis.Client, ttl time.Duration) ViewsCache {
	return &RedisViewsCache{
		client: client,
		ttl:    ttl,
	}
}

// Each event owns one hash; fields are windows. The hash expires as a whole.
func (c *RedisViewsCache) key(eventID int64) string {
	return fmt.Sprintf("event:%d:views", eventID)
}

func (c *RedisViewsCache) field(start, end time.Time) string {
	return fmt.Sprintf("%d:%d", start.Unix(), end.Unix())
}

func (c *RedisViewsCache) Get(ctx context.Context, eventID int64, start, end time.Time) (int64, bool, error) {
	views, err := c.client.HGet(ctx, c.key(eventID), c.field(start, end)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return views, true, nil
}

// setScript writes the field and only arms the TTL when the hash is new,
// so a busy event still expires on schedule.
var setScript = redis.NewScript(`
	local created = redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
	if redis.call('PTTL', KEYS[1]) < 0 then
		redis.call('PEXPIRE', KEYS[1], ARGV[3])
	end
	return created
`)

func (c *RedisViewsCache) Set(ctx context.Context, eventID int64, start, end time.Time, views int64) error {
	return setScript.Run(ctx, c.client,
		[]string{c.key(eventID)},
		c.field(start, end), views, c.ttl.Milliseconds(),
	).Err()
}
