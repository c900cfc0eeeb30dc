package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dinemenu/internal/config"
	"github.com/kailas-cloud/dinemenu/internal/db/driver"
	logpkg "github.com/kailas-cloud/dinemenu/internal/logger"
	"github.com/kailas-cloud/dinemenu/internal/metrics"
	reportrepo "github.com/kailas-cloud/dinemenu/internal/repository/report"
	"github.com/kailas-cloud/dinemenu/internal/repository/snapshot"
	chiTransport "github.com/kailas-cloud/dinemenu/internal/transport/chi"
	"github.com/kailas-cloud/dinemenu/internal/transport/source"
	healthuc "github.com/kailas-cloud/dinemenu/internal/usecase/health"
	menuuc "github.com/kailas-cloud/dinemenu/internal/usecase/menu"
	reportuc "github.com/kailas-cloud/dinemenu/internal/usecase/report"
	"github.com/kailas-cloud/dinemenu/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dinemenu API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("source_url", cfg.Source.URL),
	)

	store, err := driver.Open(driver.Config{
		Driver:     cfg.Database.Driver,
		Addrs:      cfg.Database.Addrs,
		Username:   cfg.Database.Username,
		Password:   cfg.Database.Password,
		Standalone: cfg.Database.Standalone,
		DB:         cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register source metrics explicitly (no init())
	metrics.RegisterSourceMetrics()

	fetcher := source.NewFetcher(&source.Config{
		URL:     cfg.Source.URL,
		Timeout: cfg.SourceTimeout(),
		Logger:  logger,
	})

	snapshotRepo := snapshot.New(store, cfg.Storage.KeyPrefix, cfg.CacheTTL(), metrics.SnapshotCacheTotal, logger)
	summaryRepo := reportrepo.New(store, cfg.Storage.KeyPrefix, logger)

	if cfg.Reports.SeedFixtures {
		n, err := summaryRepo.SeedFixtures(ctx)
		if err != nil {
			logger.Error("Failed to seed summary fixtures", zap.Error(err))
		} else {
			logger.Info("Summary fixtures checked", zap.Int("seeded", n))
		}
	}

	menuSvc := menuuc.New(fetcher, snapshotRepo, logger)
	reportSvc := reportuc.New(summaryRepo)
	healthSvc := healthuc.New(store, fetcher)

	server := chiTransport.NewServer(menuSvc, reportSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
