//go:build integration

package testutil

import (
	"context"
	"fmt"

	"eventhub/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcrabbitmq "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// StartPostgres runs a disposable Postgres, applies the schema and returns a pool.
// The returned func closes the pool and terminates the container.
func StartPostgres(ctx context.Context) (*pgxpool.Pool, func(), error) {
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("eventhub_test"),
		tcpostgres.WithUsername("eventhub"),
		tcpostgres.WithPassword("eventhub"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable", "timezone=UTC")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("postgres connection string: %w", err)
	}

	pool, err := database.Connect(ctx, dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	cleanup := func() {
		pool.Close()
		_ = container.Terminate(context.Background())
	}
	return pool, cleanup, nil
}

// StartRedis runs a disposable Redis and returns a connected client.
func StartRedis(ctx context.Context) (*redis.Client, func(), error) {
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		return nil, nil, fmt.Errorf("start redis container: %w", err)
	}

	addr, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("redis connection string: %w", err)
	}

	opts, err := redis.ParseURL(addr)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		_ = container.Terminate(ctx)
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
		_ = container.Terminate(context.Background())
	}
	return client, cleanup, nil
}

// StartRabbitMQ runs a disposable broker and returns its AMQP url.
func StartRabbitMQ(ctx context.Context) (string, func(), error) {
	container, err := tcrabbitmq.Run(ctx, "rabbitmq:3.13-management-alpine")
	if err != nil {
		return "", nil, fmt.Errorf("start rabbitmq container: %w", err)
	}

	url, err := container.AmqpURL(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return "", nil, fmt.Errorf("rabbitmq amqp url: %w", err)
	}

	cleanup := func() {
		_ = container.Terminate(context.Background())
	}
	return url, cleanup, nil
}

// Truncate empties every table and resets the id sequences.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE compilation_events, compilations, subscriptions, requests, events, categories, users
		RESTART IDENTITY CASCADE
	`)
	return err
}
