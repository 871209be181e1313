// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the catalog.
//
// Key features:
//   - JSON and text output formats
//   - Level parsing from configuration
//   - Context-aware logging
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stdout, "text", "debug")
//	    logger.Info("catalog started", slog.String("catalog_id", id))
//	}
//
//	func handle(ctx context.Context) {
//	    logger := logging.FromContext(ctx)
//	    logger.Info("processing")
//	}
package logging
