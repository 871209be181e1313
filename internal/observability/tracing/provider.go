package tracing

import (
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted by NewProvider.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

// NewProvider builds a TracerProvider for the named exporter.
// "stdout" writes spans as JSON to w; "none" keeps spans in-process only.
// The caller installs it with otel.SetTracerProvider and must Shutdown it.
func NewProvider(exporter string, w io.Writer) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", instrumentationName),
		)),
	}

	switch exporter {
	case ExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithSyncer(exp))
	case ExporterNone, "":
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", exporter)
	}

	return sdktrace.NewTracerProvider(opts...), nil
}
