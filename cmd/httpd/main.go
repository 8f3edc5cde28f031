package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streamlens/content-analysis/internal/analyzer"
	"github.com/streamlens/content-analysis/internal/api"
	"github.com/streamlens/content-analysis/internal/config"
	"github.com/streamlens/content-analysis/internal/logger"
	"github.com/streamlens/content-analysis/internal/ratelimit"
	"github.com/streamlens/content-analysis/internal/telemetry"
)

const (
	shutdownTimeout      = 30 * time.Second
	limiterPruneInterval = 10 * time.Minute
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "content-analysis: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting content analysis service",
		logger.String("name", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.String("host", cfg.Service.Host),
		logger.Int("port", cfg.Service.Port))

	if cfg.Auth.APIKey == "" {
		log.Warn("no API key configured, all analyze requests will be rejected")
	}

	tp := telemetry.NewProvider()

	globalLimiter := ratelimit.NewClientLimiter(cfg.RateLimit.GlobalPerMinute, log)
	analyzeLimiter := ratelimit.NewClientLimiter(cfg.RateLimit.AnalyzePerMinute, log)

	// Evict idle client buckets so the limiter maps don't grow unbounded.
	pruneTicker := time.NewTicker(limiterPruneInterval)
	defer pruneTicker.Stop()
	go func() {
		for range pruneTicker.C {
			globalLimiter.Prune()
			analyzeLimiter.Prune()
		}
	}()

	handler := api.NewHandler(analyzer.NewContentAnalyzer(), log, tp)
	server := api.NewServer(handler, api.ServerConfig{
		Host:  cfg.Service.Host,
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, api.RouteDeps{
		APIKey:         cfg.Auth.APIKey,
		GlobalLimiter:  globalLimiter,
		AnalyzeLimiter: analyzeLimiter,
		Telemetry:      tp,
	}, log)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		log.Info("server stopped")
	}
	return nil
}
