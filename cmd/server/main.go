package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/omniful/core/internal/adapter"
	"github.com/omniful/core/internal/api"
	"github.com/omniful/core/internal/cache"
	"github.com/omniful/core/internal/config"
	"github.com/omniful/core/internal/db"
	"github.com/omniful/core/internal/domain"
	"github.com/omniful/core/internal/events"
	"github.com/omniful/core/internal/repository"
	"github.com/omniful/core/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	database, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.Migrate(database, "migrations"); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	publishAdapter, err := adapter.New(cfg.Adapter, logger)
	if err != nil {
		logger.Fatal("Failed to create publish adapter", zap.Error(err))
	}

	var snapshotCache service.SnapshotCache
	if cfg.Redis.Addr != "" {
		redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.StoreInfoCacheTTL)
		defer redisCache.Close()
		snapshotCache = redisCache
	}

	repos := repository.NewRepositories(database, logger)
	productService := service.NewProductService(repos, logger)
	orderService := service.NewOrderService(repos, logger)
	storeService := service.NewStoreService(repos, snapshotCache, logger)

	dispatcher := events.NewDispatcher(logger)
	dispatcher.Register(
		domain.EventOrderCancelAfter,
		events.NewOrderCancelNotifier(publishAdapter, orderService, repos.Store, logger),
	)
	orderService.SetDispatcher(dispatcher)

	router := api.NewRouter(cfg, &api.Services{
		Products: productService,
		Orders:   orderService,
		Stores:   storeService,
	}, logger)

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("adapter", cfg.Adapter.Transport),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
