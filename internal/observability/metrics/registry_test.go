package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCatalogMetrics_RecordCreated(t *testing.T) {
	m := NewCatalogMetrics("test")

	m.RecordCreated(EntityAuthor)
	m.RecordCreated(EntityMagazine)
	m.RecordCreated(EntityArticle)
	m.RecordCreated(EntityArticle)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntitiesCreatedTotal.WithLabelValues(EntityAuthor)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntitiesCreatedTotal.WithLabelValues(EntityMagazine)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntitiesCreatedTotal.WithLabelValues(EntityArticle)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Articles), "only articles move the gauge")
}

func TestCatalogMetrics_RecordRejection(t *testing.T) {
	m := NewCatalogMetrics("test")

	m.RecordRejection(EntityArticle, "validation")
	m.RecordRejection(EntityArticle, "validation")
	m.RecordRejection(EntityArticle, "immutable_field")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(EntityArticle, "validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(EntityArticle, "immutable_field")))
}

func TestCatalogMetrics_RecordQuery(t *testing.T) {
	m := NewCatalogMetrics("test")

	m.RecordQuery("top_publisher", 3*time.Microsecond)
	m.RecordQuery("article_titles", time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryDuration))
}

func TestCatalogMetrics_MustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCatalogMetrics("catalog")

	assert.NotPanics(t, func() { m.MustRegister(reg) })
	m.RecordCreated(EntityAuthor)

	count, err := testutil.GatherAndCount(reg, "catalog_entities_created_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Panics(t, func() { m.MustRegister(reg) }, "duplicate registration should panic")
}
