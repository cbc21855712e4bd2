package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hmalcolm/ynab-bridge-go/internal/config"
	"github.com/hmalcolm/ynab-bridge-go/internal/handler"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/observability"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/resilience"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/ynab"
	"github.com/hmalcolm/ynab-bridge-go/internal/service"
	"github.com/hmalcolm/ynab-bridge-go/internal/spill"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if cfg.APIKey == "" {
		logger.Fatal("YNAB_API_KEY is required")
	}

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("api_url", cfg.APIURL),
		zap.String("output_dir", cfg.OutputDir),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "ynab-bridge")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Upstream client ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	apiClient := ynab.NewClient(ynab.Options{
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL:    cfg.APIURL,
		Token:      cfg.APIKey,
		Breaker:    resilience.NewCircuitBreaker("ynab-api"),
		Resilience: resilienceCfg,
		Metrics:    metrics,
		Logger:     logger,
		CacheTTL:   cfg.CacheTTL,
	})

	// --- Spill writer ---
	writer := spill.NewWriter(cfg.OutputDir)
	writer.OnSpill = metrics.RecordSpill

	// --- Services ---
	tools := service.NewTools(apiClient, writer, metrics, logger)

	// --- Router ---
	router := handler.NewRouter(tools, metrics, logger, cfg.JWTSecret)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
