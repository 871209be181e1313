package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// metricNamePattern is the Prometheus metric name grammar, also applied to namespaces.
var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// ValidateOneOf returns a validator accepting only the listed values (case-insensitive).
//
// Example:
//
//	LoadEnvWithFallback("CATALOG_LOG_FORMAT", "json", ValidateOneOf("json", "text"))
func ValidateOneOf(allowed ...string) func(string) error {
	return func(value string) error {
		if slices.Contains(allowed, strings.ToLower(value)) {
			return nil
		}
		return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	}
}

// ValidateMetricNamespace checks that value can prefix a Prometheus metric name.
func ValidateMetricNamespace(value string) error {
	if !metricNamePattern.MatchString(value) {
		return fmt.Errorf("invalid metric namespace '%s': must match %s", value, metricNamePattern)
	}
	return nil
}
