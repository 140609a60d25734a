package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eventhub/config"
	"eventhub/internal/cache"
	"eventhub/internal/database"
	"eventhub/internal/handler"
	"eventhub/internal/metrics"
	"eventhub/internal/queue"
	"eventhub/internal/repository"
	"eventhub/internal/service"
	"eventhub/internal/stats"
	"eventhub/internal/worker"
	"eventhub/pkg/clock"
	"eventhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.LoadConfig()

	if err := logger.Init(cfg.Server.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cfg)
	stop()
	if err != nil {
		// os.Exit skips deferred calls, so flush the logger first
		logger.L.Error("server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.NeedsRedis() {
		if rdb, err = database.InitRedis(&cfg.Redis); err != nil {
			return err
		}
		defer rdb.Close()
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	clk := clock.System()
	statsClient := stats.NewHTTPClient(cfg.Stats.URL, cfg.Stats.Timeout, m)

	hitQueue, closeQueue, err := newHitQueue(ctx, cfg, rdb)
	if err != nil {
		return err
	}
	defer closeQueue()

	var viewsCache cache.ViewsCache
	if rdb != nil && cfg.Server.ViewsCacheTTL > 0 {
		viewsCache = cache.NewRedisViewsCache(rdb, cfg.Server.ViewsCacheTTL)
	}

	// repositories
	tx := database.NewTransactor(pool)
	eventRepo := repository.NewEventRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	subscriptionRepo := repository.NewSubscriptionRepository(pool)
	compilationRepo := repository.NewCompilationRepository(pool)

	// services
	views := service.NewViewAggregator(statsClient, viewsCache, clk)
	hits := service.NewHitRecorder(hitQueue, cfg.Stats.AppName, clk, m)
	eventService := service.NewEventService(tx, eventRepo, userRepo, categoryRepo, subscriptionRepo, views, hits, clk, m)
	requestService := service.NewRequestService(tx, requestRepo, eventRepo, userRepo, clk, m)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(tx, userRepo, subscriptionRepo)
	compilationService := service.NewCompilationService(tx, compilationRepo, eventRepo, views)

	if err := handler.RegisterValidators(clk); err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(prometheus.DefaultGatherer,
		handler.NewCategoryHandler(categoryService),
		handler.NewUserHandler(userService),
		handler.NewEventHandler(eventService),
		handler.NewRequestHandler(requestService),
		handler.NewCompilationHandler(compilationService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	hitWorker := worker.NewHitWorker(statsClient, hitQueue, m)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.L.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return hitWorker.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.L.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newHitQueue builds the hit queue for the configured driver and its cleanup func.
func newHitQueue(ctx context.Context, cfg *config.Config, rdb *redis.Client) (queue.HitQueue, func(), error) {
	switch cfg.Queue.Driver {
	case config.QueueDriverRedis:
		q, err := queue.NewRedisStreamHitQueue(ctx, rdb, "", nil)
		return q, func() {}, err
	case config.QueueDriverRabbitMQ:
		q, err := queue.NewRabbitHitQueue(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue)
		if err != nil {
			return nil, nil, err
		}
		return q, q.Close, nil
	default:
		return queue.NewMemoryHitQueue(cfg.Queue.BufferSize), func() {}, nil
	}
}
