package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/pkg/config"
	"magazine-catalog/internal/usecase/catalog"
)

func main() {
	if err := run(); err != nil {
		slog.Error("catalog failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, warnings := config.LoadCatalogConfig()

	store := memory.NewStore()
	logger := initLogger(os.Stdout, cfg, store.ID().String())
	slog.SetDefault(logger)
	for _, w := range warnings {
		logger.Warn("configuration fallback", slog.String("detail", w))
	}
	logger.Info("catalog configuration loaded",
		slog.String("log_level", cfg.LogLevel),
		slog.String("log_format", cfg.LogFormat),
		slog.Bool("fallback_applied", cfg.FallbackApplied))

	tp, err := tracing.NewProvider(cfg.TraceExporter, os.Stderr)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	otel.SetTracerProvider(tp)
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer provider", slog.Any("error", err))
		}
	}()

	reg := prometheus.NewRegistry()
	catalogMetrics := metrics.NewCatalogMetrics(cfg.MetricsNamespace)
	catalogMetrics.MustRegister(reg)

	svc := &catalog.Service{
		Authors:   memory.NewAuthorRepo(store),
		Magazines: memory.NewMagazineRepo(store),
		Articles:  memory.NewArticleRepo(store),
		Logger:    logger,
		Metrics:   catalogMetrics,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	if err := runScenario(ctx, logger, svc); err != nil {
		return err
	}

	authors, magazines, articles := store.Stats()
	logger.Info("catalog finished",
		slog.Int("authors", authors),
		slog.Int("magazines", magazines),
		slog.Int("articles", articles))

	return logMetrics(logger, reg)
}

// initLogger builds the process logger; every record carries the catalog
// identity and the observability settings it runs with.
func initLogger(w io.Writer, cfg config.CatalogConfig, catalogID string) *slog.Logger {
	return logging.WithFields(logging.New(w, cfg.LogFormat, cfg.LogLevel), map[string]interface{}{
		"catalog_id":        catalogID,
		"metrics_namespace": cfg.MetricsNamespace,
		"trace_exporter":    cfg.TraceExporter,
	})
}
