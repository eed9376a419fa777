package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saral-app/saral/internal/accounting"
	"github.com/saral-app/saral/internal/analytics"
	"github.com/saral-app/saral/internal/app"
	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
	"github.com/saral-app/saral/internal/inventory"
	"github.com/saral-app/saral/internal/quotation"
	"github.com/saral-app/saral/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping", slog.Any("error", err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	var cache *analytics.Cache
	var snapshots store.SnapshotStore
	if redisClient != nil {
		cache = analytics.NewCache(redisClient, cfg.CacheTTL)
		snapshots = store.NewRedisSnapshotStore(redisClient, cfg.SnapshotKey)
	}

	ledger := inventory.NewLedger(
		inventory.StockPolicy(cfg.StockPolicy),
		inventory.OrphanPolicy(cfg.OrphanLinePolicy),
		logger,
	)

	st := store.New(store.Config{
		Logger:    logger,
		Ledger:    ledger,
		Snapshots: snapshots,
		Cache:     cache,
	})
	if err := st.Restore(ctx); err != nil {
		logger.Error("restore state", slog.Any("error", err))
		os.Exit(1)
	}

	analyticsService := analytics.NewService(st, cache)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		CatalogHandler:    catalog.NewHandler(logger, st),
		InventoryHandler:  inventory.NewHandler(st),
		BillingHandler:    billing.NewHandler(logger, st),
		QuotationHandler:  quotation.NewHandler(logger, st),
		AnalyticsHandler:  analytics.NewHandler(logger, analyticsService),
		AccountingHandler: accounting.NewHandler(st),
		SettingsHandler:   store.NewSettingsHandler(logger, st),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
