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

	"go.uber.org/zap"

	"github.com/kailas-cloud/pokedex/internal/config"
	logpkg "github.com/kailas-cloud/pokedex/internal/logger"
	"github.com/kailas-cloud/pokedex/internal/metrics"
	chiTransport "github.com/kailas-cloud/pokedex/internal/transport/chi"
	"github.com/kailas-cloud/pokedex/internal/transport/pokeapi"
	cataloguc "github.com/kailas-cloud/pokedex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/pokedex/internal/usecase/health"
	"github.com/kailas-cloud/pokedex/internal/version"
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

	logger.Info("Starting pokedex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.Int("upstream_concurrency", cfg.Upstream.Concurrency),
	)

	// Register upstream metrics explicitly (no init())
	metrics.RegisterUpstreamMetrics()

	upstream := pokeapi.NewClient(&pokeapi.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		Timeout:   time.Duration(cfg.Upstream.TimeoutSec) * time.Second,
		UserAgent: cfg.Upstream.UserAgent,
		Logger:    logger,
	})

	catalogSvc := cataloguc.New(upstream).
		WithPagination(cfg.Catalog.DefaultLimit, cfg.Catalog.MaxLimit).
		WithConcurrency(cfg.Upstream.Concurrency)
	healthSvc := healthuc.New(upstream)

	server := chiTransport.NewServer(catalogSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, logger, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
