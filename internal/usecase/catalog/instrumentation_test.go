package catalog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/usecase/catalog"
)

/* ───────── failing repository stub ───────── */

var errBackend = errors.New("backend unavailable")

// brokenArticles fails every call; used to check error wrapping.
type brokenArticles struct{}

func (brokenArticles) Create(context.Context, entity.AuthorID, entity.MagazineID, string) (*entity.Article, error) {
	return nil, errBackend
}
func (brokenArticles) Get(context.Context, entity.ArticleID) (*entity.Article, error) {
	return nil, errBackend
}
func (brokenArticles) List(context.Context) ([]*entity.Article, error) { return nil, errBackend }
func (brokenArticles) ListByAuthor(context.Context, entity.AuthorID) ([]*entity.Article, error) {
	return nil, errBackend
}
func (brokenArticles) ListByMagazine(context.Context, entity.MagazineID) ([]*entity.Article, error) {
	return nil, errBackend
}
func (brokenArticles) UpdateTitle(context.Context, entity.ArticleID, string) error { return errBackend }

func TestService_RepositoryErrorsAreWrapped(t *testing.T) {
	store := memory.NewStore()
	m := metrics.NewCatalogMetrics("test")
	svc := &catalog.Service{
		Authors:   memory.NewAuthorRepo(store),
		Magazines: memory.NewMagazineRepo(store),
		Articles:  brokenArticles{},
		Logger:    slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Metrics:   m,
	}
	ctx := context.Background()
	jane := author(t, svc, "Jane")
	tech := magazine(t, svc, "Tech", "Technology")

	_, err := svc.AddArticle(ctx, jane.ID, tech.ID, "A Great Title")
	require.ErrorIs(t, err, errBackend)
	assert.True(t, strings.HasPrefix(err.Error(), "add article: "), err.Error())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(metrics.EntityArticle, "internal")))

	_, err = svc.AllArticles(ctx)
	assert.ErrorIs(t, err, errBackend)
	_, err = svc.TopPublisher(ctx)
	assert.ErrorIs(t, err, errBackend)
	_, err = svc.TopicAreas(ctx, jane.ID)
	assert.ErrorIs(t, err, errBackend)
}

func TestService_Metrics(t *testing.T) {
	svc := newService()
	m := metrics.NewCatalogMetrics("test")
	svc.Metrics = m
	ctx := context.Background()

	jane := author(t, svc, "Jane")
	tech := magazine(t, svc, "Tech", "Technology")
	publish(t, svc, jane, tech, 2)

	_, _ = svc.AddArticle(ctx, jane.ID, tech.ID, "bad")
	_, _ = svc.AddArticle(ctx, 42, tech.ID, "A Great Title")
	_ = svc.RetitleArticle(ctx, 1, "A Great Title")
	_, _ = svc.CreateMagazine(ctx, "X", "Technology")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntitiesCreatedTotal.WithLabelValues(metrics.EntityAuthor)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntitiesCreatedTotal.WithLabelValues(metrics.EntityMagazine)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntitiesCreatedTotal.WithLabelValues(metrics.EntityArticle)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Articles))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(metrics.EntityArticle, "validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(metrics.EntityArticle, "type_constraint")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(metrics.EntityArticle, "immutable_field")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(metrics.EntityMagazine, "validation")))

	_, err := svc.TopPublisher(ctx)
	require.NoError(t, err)
	_, err = svc.ArticleTitles(ctx, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryDuration))
}

func TestService_LogsRejections(t *testing.T) {
	var buf bytes.Buffer
	svc := newService()
	svc.Logger = nil // fall back to the context logger
	ctx := logging.WithLogger(context.Background(), logging.NewLogger(&buf, "debug"))

	jane, err := svc.CreateAuthor(ctx, "Jane")
	require.NoError(t, err)
	tech, err := svc.CreateMagazine(ctx, "Tech", "Technology")
	require.NoError(t, err)
	buf.Reset()

	_, err = svc.AddArticle(ctx, jane.ID, tech.ID, "bad")
	require.Error(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be one JSON record")
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "article rejected", entry["msg"])
	assert.Equal(t, "validation", entry["kind"])
	assert.Contains(t, entry["error"], "validation error on field 'title'")
}

func TestService_Spans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)))
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	svc := newService()
	ctx := context.Background()
	jane := author(t, svc, "Jane")
	tech := magazine(t, svc, "Tech", "Technology")
	exporter.Reset()

	_, err := svc.AddArticle(ctx, jane.ID, tech.ID, "A Great Title")
	require.NoError(t, err)
	err = svc.RetitleArticle(ctx, 1, "Another Title")
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	assert.Equal(t, "catalog.AddArticle", spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	attrs := map[string]int64{}
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	assert.Equal(t, int64(jane.ID), attrs["author.id"])
	assert.Equal(t, int64(tech.ID), attrs["magazine.id"])

	assert.Equal(t, "catalog.RetitleArticle", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}

func TestService_QuerySpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)))
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	svc := newService()
	ctx := context.Background()
	jane := author(t, svc, "Jane")
	tech := magazine(t, svc, "Tech", "Technology")
	publish(t, svc, jane, tech, 3)
	exporter.Reset()

	_, err := svc.TopicAreas(ctx, jane.ID)
	require.NoError(t, err)
	_, err = svc.ContributingAuthors(ctx, tech.ID)
	require.NoError(t, err)
	_, err = svc.TopPublisher(ctx)
	require.NoError(t, err)
	_, err = svc.AllAuthors(ctx)
	require.NoError(t, err)
	_, err = svc.Contributors(ctx, 99)
	require.ErrorIs(t, err, catalog.ErrMagazineNotFound)

	spans := exporter.GetSpans()
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name)
		assert.False(t, s.Parent.IsValid(), "%s should be a root span", s.Name)
	}
	assert.Equal(t, []string{
		"catalog.TopicAreas",
		"catalog.ContributingAuthors",
		"catalog.TopPublisher",
		"catalog.AllAuthors",
		"catalog.Contributors",
	}, names)

	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	require.Len(t, spans[0].Attributes, 1)
	assert.Equal(t, int64(jane.ID), spans[0].Attributes[0].Value.AsInt64())
	assert.Equal(t, codes.Error, spans[4].Status.Code)
}

func TestService_QueryDuration_OneSamplePerCall(t *testing.T) {
	svc := newService()
	m := metrics.NewCatalogMetrics("test")
	svc.Metrics = m
	ctx := context.Background()

	jane := author(t, svc, "Jane")
	tech := magazine(t, svc, "Tech", "Technology")
	publish(t, svc, jane, tech, 1)

	_, err := svc.TopicAreas(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, testutil.CollectAndCount(m.QueryDuration), "nested work records no extra series")

	_, err = svc.AuthorMagazines(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryDuration))
}
