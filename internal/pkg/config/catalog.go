package config

import "strings"

// Environment variables read by LoadCatalogConfig.
const (
	EnvLogLevel         = "CATALOG_LOG_LEVEL"
	EnvLogFormat        = "CATALOG_LOG_FORMAT"
	EnvMetricsNamespace = "CATALOG_METRICS_NAMESPACE"
	EnvTraceExporter    = "CATALOG_TRACE_EXPORTER"
)

// Defaults applied when a variable is unset or invalid.
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultMetricsNamespace = "catalog"
	DefaultTraceExporter    = "none"
)

// CatalogConfig holds the settings of the catalog binary.
type CatalogConfig struct {
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
	TraceExporter    string
	FallbackApplied  bool
}

// LoadCatalogConfig reads CatalogConfig from the environment.
// It returns the configuration and one warning per field that fell back to its default.
func LoadCatalogConfig() (CatalogConfig, []string) {
	var (
		cfg      CatalogConfig
		warnings []string
	)

	apply := func(r ConfigLoadResult) string {
		warnings = append(warnings, r.Warnings...)
		cfg.FallbackApplied = cfg.FallbackApplied || r.FallbackApplied
		return r.Value
	}

	cfg.LogLevel = strings.ToLower(apply(LoadEnvWithFallback(
		EnvLogLevel, DefaultLogLevel, ValidateOneOf("debug", "info", "warn", "error"))))
	cfg.LogFormat = strings.ToLower(apply(LoadEnvWithFallback(
		EnvLogFormat, DefaultLogFormat, ValidateOneOf("json", "text"))))
	cfg.MetricsNamespace = apply(LoadEnvWithFallback(
		EnvMetricsNamespace, DefaultMetricsNamespace, ValidateMetricNamespace))
	cfg.TraceExporter = strings.ToLower(apply(LoadEnvWithFallback(
		EnvTraceExporter, DefaultTraceExporter, ValidateOneOf("none", "stdout"))))

	return cfg, warnings
}
