package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/surfquest-catalog/internal/config"
	"github.com/surfquest-catalog/internal/infrastructure/surfapi"
	"github.com/surfquest-catalog/internal/pkg/logger"
	"github.com/surfquest-catalog/internal/repository/cache"
	"github.com/surfquest-catalog/internal/repository/postgres"
	"github.com/surfquest-catalog/internal/usecase"
	"github.com/surfquest-catalog/internal/worker"
	"github.com/surfquest-catalog/internal/worker/catalog"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "surfquest-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SurfQuest catalog worker",
		zap.Duration("refresh_interval", cfg.Worker.RefreshInterval),
		zap.String("backend", cfg.Backend.BaseURL))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Use case
	catalogUC := usecase.NewCatalogUseCase(
		surfapi.NewClient(&cfg.Backend, log),
		cache.NewCacheRepository(redisClient),
		postgres.NewSnapshotRepository(db, log),
		nil,
		usecase.CatalogConfig{CatalogTTL: cfg.Cache.CatalogTTL, LiteTTL: cfg.Cache.LiteTTL},
		log,
	)

	// 6. Workers
	workerManager := worker.NewWorkerManager(log, 0)
	workerManager.Register(catalog.NewCatalogRefreshWorker(catalogUC, cfg.Worker.RefreshInterval, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
