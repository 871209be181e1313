package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// logMetrics gathers the registry and logs one line per sample.
func logMetrics(logger *slog.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			logger.Info("metric",
				slog.String("name", mf.GetName()),
				slog.String("labels", labelString(m.GetLabel())),
				slog.Float64("value", sampleValue(mf.GetType(), m)))
		}
	}
	return nil
}

func sampleValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return 0
	}
}

func labelString(labels []*dto.LabelPair) string {
	s := ""
	for i, lp := range labels {
		if i > 0 {
			s += ","
		}
		s += lp.GetName() + "=" + lp.GetValue()
	}
	return s
}
