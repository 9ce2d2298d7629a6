package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/moodflix/moodflix/internal/config"
	logpkg "github.com/moodflix/moodflix/internal/logger"
	"github.com/moodflix/moodflix/internal/metrics"
	"github.com/moodflix/moodflix/internal/source"
	sourceFile "github.com/moodflix/moodflix/internal/source/file"
	sourceRedis "github.com/moodflix/moodflix/internal/source/redis"
	chiTransport "github.com/moodflix/moodflix/internal/transport/chi"
	cataloguc "github.com/moodflix/moodflix/internal/usecase/catalog"
	healthuc "github.com/moodflix/moodflix/internal/usecase/health"
	recommenduc "github.com/moodflix/moodflix/internal/usecase/recommend"
	"github.com/moodflix/moodflix/internal/version"
)

// sourceBackend is what main needs from a source driver: fetching plus a
// health probe.
type sourceBackend interface {
	source.Fetcher
	Ping(ctx context.Context) error
}

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

	logger.Info("Starting moodflix engine",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("sources_driver", cfg.Sources.Driver),
	)

	// Create source backend based on driver
	var fetcher sourceBackend
	switch cfg.Sources.Driver {
	case "file":
		fetcher, err = sourceFile.New(cfg.Sources.Dir)
		if err != nil {
			logger.Fatal("Failed to open data directory", zap.Error(err))
		}
	case "redis":
		redisFetcher, rerr := sourceRedis.New(sourceRedis.Config{
			Addrs:     cfg.Sources.Addrs,
			Password:  cfg.Sources.Password,
			KeyPrefix: cfg.Sources.KeyPrefix,
		})
		if rerr != nil {
			logger.Fatal("Failed to create source store", zap.Error(rerr))
		}
		defer redisFetcher.Close()

		readiness := time.Duration(cfg.Sources.ReadinessTimeout) * time.Second
		if err := redisFetcher.WaitForReady(context.Background(), readiness); err != nil {
			logger.Fatal("Source store not ready", zap.Error(err))
		}
		fetcher = redisFetcher
	default:
		logger.Fatal("Unknown sources driver", zap.String("driver", cfg.Sources.Driver))
	}

	metrics.RegisterEngineMetrics()

	// Wire the engine — composition root
	catalogSvc := cataloguc.New(fetcher, cataloguc.Limits{
		MaxEntries:    cfg.Catalog.MaxEntries,
		QualityFloor:  cfg.Catalog.QualityFloor,
		RatingsSample: cfg.Catalog.RatingsSample,
	}, logger)
	recommendSvc := recommenduc.New(catalogSvc, logger)
	healthSvc := healthuc.New(fetcher, catalogSvc)

	server := chiTransport.NewServer(recommendSvc, healthSvc, fetcher, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
