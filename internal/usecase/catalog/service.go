package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/repository"
)

// Service provides catalog use cases.
// It validates through the domain entities and delegates storage to the repositories.
// Logger and Metrics are optional; a nil Logger uses the logger carried by the
// context, a nil Metrics records nothing.
type Service struct {
	Authors   repository.AuthorRepository
	Magazines repository.MagazineRepository
	Articles  repository.ArticleRepository
	Logger    *slog.Logger
	Metrics   *metrics.CatalogMetrics
}

/* ───────── Authors ───────── */

// CreateAuthor registers a new author.
// Returns a ValidationError if the name is blank.
func (s *Service) CreateAuthor(ctx context.Context, name string) (_ *entity.Author, err error) {
	ctx, end := s.begin(ctx, "CreateAuthor")
	defer end(&err)

	author, err := s.Authors.Create(ctx, name)
	if err != nil {
		return nil, s.reject(ctx, metrics.EntityAuthor, fmt.Errorf("create author: %w", err))
	}

	s.created(ctx, metrics.EntityAuthor, slog.Int64("author_id", int64(author.ID)))
	return author, nil
}

// RenameAuthor replaces an author's name.
// Returns a ValidationError if the name is blank.
func (s *Service) RenameAuthor(ctx context.Context, id entity.AuthorID, name string) (err error) {
	ctx, end := s.begin(ctx, "RenameAuthor", attribute.Int64("author.id", int64(id)))
	defer end(&err)

	if err := s.Authors.UpdateName(ctx, id, name); err != nil {
		return s.reject(ctx, metrics.EntityAuthor, fmt.Errorf("rename author: %w", err))
	}
	return nil
}

// Author retrieves a single author.
// Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) Author(ctx context.Context, id entity.AuthorID) (_ *entity.Author, err error) {
	ctx, end := s.begin(ctx, "Author", attribute.Int64("author.id", int64(id)))
	defer end(&err)

	return s.author(ctx, id)
}

func (s *Service) author(ctx context.Context, id entity.AuthorID) (*entity.Author, error) {
	author, err := s.Authors.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// AllAuthors returns every author ever created, in creation order.
func (s *Service) AllAuthors(ctx context.Context) (_ []*entity.Author, err error) {
	ctx, end := s.begin(ctx, "AllAuthors")
	defer end(&err)

	authors, err := s.Authors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// AddArticle creates an article written by authorID in magazineID.
// All validation is delegated to article construction: an unknown author or
// magazine yields a TypeConstraintError, a bad title a ValidationError. On
// failure nothing is registered anywhere.
func (s *Service) AddArticle(ctx context.Context, authorID entity.AuthorID, magazineID entity.MagazineID, title string) (_ *entity.Article, err error) {
	ctx, end := s.begin(ctx, "AddArticle",
		attribute.Int64("author.id", int64(authorID)),
		attribute.Int64("magazine.id", int64(magazineID)))
	defer end(&err)

	article, err := s.Articles.Create(ctx, authorID, magazineID, title)
	if err != nil {
		return nil, s.reject(ctx, metrics.EntityArticle, fmt.Errorf("add article: %w", err))
	}

	s.created(ctx, metrics.EntityArticle,
		slog.Int64("article_id", int64(article.ID)),
		slog.Int64("author_id", int64(authorID)),
		slog.Int64("magazine_id", int64(magazineID)))
	return article, nil
}

/* ───────── Magazines ───────── */

// CreateMagazine registers a new magazine.
// Returns a ValidationError if the name is not 2..16 characters or the category is blank.
func (s *Service) CreateMagazine(ctx context.Context, name, category string) (_ *entity.Magazine, err error) {
	ctx, end := s.begin(ctx, "CreateMagazine")
	defer end(&err)

	magazine, err := s.Magazines.Create(ctx, name, category)
	if err != nil {
		return nil, s.reject(ctx, metrics.EntityMagazine, fmt.Errorf("create magazine: %w", err))
	}

	s.created(ctx, metrics.EntityMagazine, slog.Int64("magazine_id", int64(magazine.ID)))
	return magazine, nil
}

// RenameMagazine replaces a magazine's name.
func (s *Service) RenameMagazine(ctx context.Context, id entity.MagazineID, name string) (err error) {
	ctx, end := s.begin(ctx, "RenameMagazine", attribute.Int64("magazine.id", int64(id)))
	defer end(&err)

	if err := s.Magazines.UpdateName(ctx, id, name); err != nil {
		return s.reject(ctx, metrics.EntityMagazine, fmt.Errorf("rename magazine: %w", err))
	}
	return nil
}

// RecategorizeMagazine replaces a magazine's category. Topic areas of its
// authors follow the new value.
func (s *Service) RecategorizeMagazine(ctx context.Context, id entity.MagazineID, category string) (err error) {
	ctx, end := s.begin(ctx, "RecategorizeMagazine", attribute.Int64("magazine.id", int64(id)))
	defer end(&err)

	if err := s.Magazines.UpdateCategory(ctx, id, category); err != nil {
		return s.reject(ctx, metrics.EntityMagazine, fmt.Errorf("recategorize magazine: %w", err))
	}
	return nil
}

// Magazine retrieves a single magazine.
// Returns ErrMagazineNotFound if the magazine does not exist.
func (s *Service) Magazine(ctx context.Context, id entity.MagazineID) (_ *entity.Magazine, err error) {
	ctx, end := s.begin(ctx, "Magazine", attribute.Int64("magazine.id", int64(id)))
	defer end(&err)

	return s.magazine(ctx, id)
}

func (s *Service) magazine(ctx context.Context, id entity.MagazineID) (*entity.Magazine, error) {
	magazine, err := s.Magazines.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}

// AllMagazines returns every magazine ever created, in creation order.
func (s *Service) AllMagazines(ctx context.Context) (_ []*entity.Magazine, err error) {
	ctx, end := s.begin(ctx, "AllMagazines")
	defer end(&err)

	return s.allMagazines(ctx)
}

func (s *Service) allMagazines(ctx context.Context) ([]*entity.Magazine, error) {
	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return magazines, nil
}

/* ───────── Articles ───────── */

// Article retrieves a single article.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Article(ctx context.Context, id entity.ArticleID) (_ *entity.Article, err error) {
	ctx, end := s.begin(ctx, "Article", attribute.Int64("article.id", int64(id)))
	defer end(&err)

	article, err := s.Articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// AllArticles returns every article ever created, in creation order.
func (s *Service) AllArticles(ctx context.Context) (_ []*entity.Article, err error) {
	ctx, end := s.begin(ctx, "AllArticles")
	defer end(&err)

	articles, err := s.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// RetitleArticle attempts to change an article's title. Titles are set once at
// creation, so this always fails with an ImmutableFieldError for an existing
// article, even when title equals the current one.
func (s *Service) RetitleArticle(ctx context.Context, id entity.ArticleID, title string) (err error) {
	ctx, end := s.begin(ctx, "RetitleArticle", attribute.Int64("article.id", int64(id)))
	defer end(&err)

	if err := s.Articles.UpdateTitle(ctx, id, title); err != nil {
		return s.reject(ctx, metrics.EntityArticle, fmt.Errorf("retitle article: %w", err))
	}
	return nil
}

/* ───────── instrumentation ───────── */

// begin opens the operation span; the returned func ends it with the operation's error.
func (s *Service) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(*error)) {
	ctx, span := tracing.StartSpan(ctx, op, trace.WithAttributes(attrs...))
	return ctx, func(errp *error) { tracing.EndSpan(span, *errp) }
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.FromContext(ctx)
}

func (s *Service) created(ctx context.Context, kind string, attrs ...any) {
	if s.Metrics != nil {
		s.Metrics.RecordCreated(kind)
	}
	s.logger(ctx).DebugContext(ctx, kind+" created", attrs...)
}

// reject logs and counts a failed mutation and returns err unchanged.
func (s *Service) reject(ctx context.Context, kind string, err error) error {
	reason := errorKind(err)
	if s.Metrics != nil {
		s.Metrics.RecordRejection(kind, reason)
	}
	s.logger(ctx).WarnContext(ctx, kind+" rejected",
		slog.String("kind", reason),
		slog.Any("error", err))
	return err
}

func (s *Service) timeQuery(query string, start time.Time) {
	if s.Metrics != nil {
		s.Metrics.RecordQuery(query, time.Since(start))
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, entity.ErrValidationFailed):
		return "validation"
	case errors.Is(err, entity.ErrTypeConstraint):
		return "type_constraint"
	case errors.Is(err, entity.ErrImmutableField):
		return "immutable_field"
	case errors.Is(err, entity.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
