package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, QueueDriverMemory, cfg.Queue.Driver)
	assert.Equal(t, 1024, cfg.Queue.BufferSize)
	assert.Equal(t, "main-service", cfg.Stats.AppName)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("STATS_SERVER_URL", "http://stats:9090")
	t.Setenv("STATS_TIMEOUT", "750ms")
	t.Setenv("HIT_QUEUE_DRIVER", QueueDriverRabbitMQ)
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "http://stats:9090", cfg.Stats.URL)
	assert.Equal(t, 750*time.Millisecond, cfg.Stats.Timeout)
	assert.Equal(t, QueueDriverRabbitMQ, cfg.Queue.Driver)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestGetEnv_Malformed(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	assert.Panics(t, func() { getEnvInt("REDIS_DB", 0) })

	t.Setenv("STATS_TIMEOUT", "soon")
	assert.Panics(t, func() { getEnvDuration("STATS_TIMEOUT", time.Second) })
}

func TestConfig_NeedsRedis(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		ttl    time.Duration
		want   bool
	}{
		{"memory queue without cache", QueueDriverMemory, 0, false},
		{"memory queue with cache", QueueDriverMemory, time.Second, true},
		{"redis queue", QueueDriverRedis, 0, true},
		{"rabbitmq queue without cache", QueueDriverRabbitMQ, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{ViewsCacheTTL: tt.ttl},
				Queue:  QueueConfig{Driver: tt.driver},
			}
			assert.Equal(t, tt.want, cfg.NeedsRedis())
		})
	}
}
