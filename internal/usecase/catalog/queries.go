package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
)

// contributingThreshold is the article count an author must exceed within one
// magazine to count as a contributing author. The comparison is strict.
const contributingThreshold = 2

// Several queries distinguish "no data" from "empty result": they return a nil
// slice (or nil pointer) when the entity has nothing to report. Queries that
// never use that sentinel return a non-nil, possibly empty, slice.
//
// Each exported query opens one span and records at most one duration sample;
// the unexported helpers below do the shared work without either.

// AuthorArticles returns the articles written by the author in creation order.
// Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) AuthorArticles(ctx context.Context, id entity.AuthorID) (_ []*entity.Article, err error) {
	ctx, end := s.begin(ctx, "AuthorArticles", attribute.Int64("author.id", int64(id)))
	defer end(&err)

	return s.authorArticles(ctx, id)
}

func (s *Service) authorArticles(ctx context.Context, id entity.AuthorID) ([]*entity.Article, error) {
	if _, err := s.author(ctx, id); err != nil {
		return nil, err
	}
	articles, err := s.Articles.ListByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list author articles: %w", err)
	}
	return articles, nil
}

// AuthorMagazines returns the distinct magazines the author has published in,
// in order of first publication. Never nil for an existing author.
func (s *Service) AuthorMagazines(ctx context.Context, id entity.AuthorID) (_ []*entity.Magazine, err error) {
	ctx, end := s.begin(ctx, "AuthorMagazines", attribute.Int64("author.id", int64(id)))
	defer end(&err)
	defer s.timeQuery("author_magazines", time.Now())

	return s.authorMagazines(ctx, id)
}

func (s *Service) authorMagazines(ctx context.Context, id entity.AuthorID) ([]*entity.Magazine, error) {
	articles, err := s.authorArticles(ctx, id)
	if err != nil {
		return nil, err
	}

	magazines := make([]*entity.Magazine, 0, len(articles))
	seen := make(map[entity.MagazineID]struct{}, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.MagazineID]; ok {
			continue
		}
		seen[a.MagazineID] = struct{}{}

		m, err := s.magazine(ctx, a.MagazineID)
		if err != nil {
			return nil, fmt.Errorf("resolve magazine of article %d: %w", a.ID, err)
		}
		magazines = append(magazines, m)
	}
	return magazines, nil
}

// TopicAreas returns the distinct categories, by value, of the magazines the
// author has published in. Returns nil when the author has no articles.
func (s *Service) TopicAreas(ctx context.Context, id entity.AuthorID) (_ []string, err error) {
	ctx, end := s.begin(ctx, "TopicAreas", attribute.Int64("author.id", int64(id)))
	defer end(&err)
	defer s.timeQuery("topic_areas", time.Now())

	magazines, err := s.authorMagazines(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(magazines) == 0 {
		return nil, nil
	}

	var categories []string
	seen := make(map[string]struct{}, len(magazines))
	for _, m := range magazines {
		if _, ok := seen[m.Category()]; ok {
			continue
		}
		seen[m.Category()] = struct{}{}
		categories = append(categories, m.Category())
	}
	return categories, nil
}

// MagazineArticles returns the articles published in the magazine in creation order.
// Returns ErrMagazineNotFound if the magazine does not exist.
func (s *Service) MagazineArticles(ctx context.Context, id entity.MagazineID) (_ []*entity.Article, err error) {
	ctx, end := s.begin(ctx, "MagazineArticles", attribute.Int64("magazine.id", int64(id)))
	defer end(&err)

	return s.magazineArticles(ctx, id)
}

func (s *Service) magazineArticles(ctx context.Context, id entity.MagazineID) ([]*entity.Article, error) {
	if _, err := s.magazine(ctx, id); err != nil {
		return nil, err
	}
	articles, err := s.Articles.ListByMagazine(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list magazine articles: %w", err)
	}
	return articles, nil
}

// Contributors returns the distinct authors who have published in the magazine,
// in order of first contribution. Never nil for an existing magazine.
func (s *Service) Contributors(ctx context.Context, id entity.MagazineID) (_ []*entity.Author, err error) {
	ctx, end := s.begin(ctx, "Contributors", attribute.Int64("magazine.id", int64(id)))
	defer end(&err)
	defer s.timeQuery("contributors", time.Now())

	articles, err := s.magazineArticles(ctx, id)
	if err != nil {
		return nil, err
	}

	authors := make([]*entity.Author, 0, len(articles))
	seen := make(map[entity.AuthorID]struct{}, len(articles))
	for _, a := range articles {
		if _, ok := seen[a.AuthorID]; ok {
			continue
		}
		seen[a.AuthorID] = struct{}{}

		author, err := s.author(ctx, a.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("resolve author of article %d: %w", a.ID, err)
		}
		authors = append(authors, author)
	}
	return authors, nil
}

// ArticleTitles returns the titles of the magazine's articles in creation order.
// Returns nil when the magazine has no articles.
func (s *Service) ArticleTitles(ctx context.Context, id entity.MagazineID) (_ []string, err error) {
	ctx, end := s.begin(ctx, "ArticleTitles", attribute.Int64("magazine.id", int64(id)))
	defer end(&err)
	defer s.timeQuery("article_titles", time.Now())

	articles, err := s.magazineArticles(ctx, id)
	if err != nil {
		return nil, err
	}

	var titles []string
	for _, a := range articles {
		titles = append(titles, a.Title())
	}
	return titles, nil
}

// ContributingAuthors returns the authors with more than two articles in the
// magazine, in order of first contribution. Returns nil when nobody qualifies.
func (s *Service) ContributingAuthors(ctx context.Context, id entity.MagazineID) (_ []*entity.Author, err error) {
	ctx, end := s.begin(ctx, "ContributingAuthors", attribute.Int64("magazine.id", int64(id)))
	defer end(&err)
	defer s.timeQuery("contributing_authors", time.Now())

	articles, err := s.magazineArticles(ctx, id)
	if err != nil {
		return nil, err
	}

	var order []entity.AuthorID
	counts := make(map[entity.AuthorID]int)
	for _, a := range articles {
		if counts[a.AuthorID] == 0 {
			order = append(order, a.AuthorID)
		}
		counts[a.AuthorID]++
	}

	var authors []*entity.Author
	for _, authorID := range order {
		if counts[authorID] <= contributingThreshold {
			continue
		}
		author, err := s.author(ctx, authorID)
		if err != nil {
			return nil, fmt.Errorf("resolve contributing author %d: %w", authorID, err)
		}
		authors = append(authors, author)
	}
	return authors, nil
}

// TopPublisher returns the magazine with the most articles. Ties go to the
// magazine created first. Returns nil when no magazines exist.
func (s *Service) TopPublisher(ctx context.Context) (_ *entity.Magazine, err error) {
	ctx, end := s.begin(ctx, "TopPublisher")
	defer end(&err)
	defer s.timeQuery("top_publisher", time.Now())

	magazines, err := s.allMagazines(ctx)
	if err != nil {
		return nil, err
	}

	var (
		top      *entity.Magazine
		topCount int
	)
	for _, m := range magazines {
		articles, err := s.Articles.ListByMagazine(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("count magazine articles: %w", err)
		}
		if top == nil || len(articles) > topCount {
			top, topCount = m, len(articles)
		}
	}
	if top != nil {
		s.logger(ctx).DebugContext(ctx, "top publisher resolved",
			slog.Int64("magazine_id", int64(top.ID)),
			slog.Int("articles", topCount))
	}
	return top, nil
}
