// Package metrics provides the Prometheus collectors recorded by the catalog service.
//
// Collectors are created unregistered so several catalogs (and tests) can
// each own a set; call MustRegister with the registry that should expose them.
//
// Example usage:
//
//	m := metrics.NewCatalogMetrics("catalog")
//	m.MustRegister(prometheus.DefaultRegisterer)
//
//	start := time.Now()
//	titles := ...
//	m.RecordQuery("article_titles", time.Since(start))
package metrics
