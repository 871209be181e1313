package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Entity label values.
const (
	EntityAuthor   = "author"
	EntityMagazine = "magazine"
	EntityArticle  = "article"
)

// CatalogMetrics holds the collectors recorded by the catalog service.
//
// Metrics (prefixed by namespace):
//   - {ns}_entities_created_total: entities registered, by entity
//   - {ns}_rejections_total: failed mutations, by entity and error kind
//   - {ns}_articles: current number of registered articles
//   - {ns}_query_duration_seconds: derived query latency, by query
type CatalogMetrics struct {
	EntitiesCreatedTotal *prometheus.CounterVec
	RejectionsTotal      *prometheus.CounterVec
	Articles             prometheus.Gauge
	QueryDuration        *prometheus.HistogramVec
}

// NewCatalogMetrics creates the collectors without registering them.
func NewCatalogMetrics(namespace string) *CatalogMetrics {
	return &CatalogMetrics{
		EntitiesCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Total number of catalog entities created",
		}, []string{"entity"}),

		RejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Total number of rejected catalog mutations",
		}, []string{"entity", "kind"}),

		Articles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "articles",
			Help:      "Number of articles registered in the catalog",
		}),

		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Duration of derived catalog queries in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"query"}),
	}
}

// MustRegister registers every collector with reg. It panics on duplicate registration.
func (m *CatalogMetrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		m.EntitiesCreatedTotal,
		m.RejectionsTotal,
		m.Articles,
		m.QueryDuration,
	)
}

// RecordCreated counts a registered entity. Articles also bump the gauge.
func (m *CatalogMetrics) RecordCreated(entity string) {
	m.EntitiesCreatedTotal.WithLabelValues(entity).Inc()
	if entity == EntityArticle {
		m.Articles.Inc()
	}
}

// RecordRejection counts a failed mutation. Kind is one of
// "validation", "type_constraint", "immutable_field", "not_found" or "internal".
func (m *CatalogMetrics) RecordRejection(entity, kind string) {
	m.RejectionsTotal.WithLabelValues(entity, kind).Inc()
}

// RecordQuery records how long a derived query took.
func (m *CatalogMetrics) RecordQuery(query string, duration time.Duration) {
	m.QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}
