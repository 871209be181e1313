// Package observability groups the catalog's structured logging, Prometheus
// metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus collectors for catalog activity
//   - tracing: OpenTelemetry tracer and span helpers
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger(os.Stdout, "info")
//	    m := metrics.NewCatalogMetrics("catalog")
//	    m.MustRegister(prometheus.DefaultRegisterer)
//	    logger.Info("catalog started")
//	}
package observability
