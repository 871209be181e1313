package main

import (
	"context"
	"log/slog"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/usecase/catalog"
)

// runScenario builds a small catalog and logs every derived query.
// Rejected operations are expected and logged by the service itself.
func runScenario(ctx context.Context, logger *slog.Logger, svc *catalog.Service) error {
	jane, err := svc.CreateAuthor(ctx, "Jane")
	if err != nil {
		return err
	}
	john, err := svc.CreateAuthor(ctx, "John")
	if err != nil {
		return err
	}
	tech, err := svc.CreateMagazine(ctx, "Tech", "Technology")
	if err != nil {
		return err
	}
	food, err := svc.CreateMagazine(ctx, "Food Weekly", "Cooking")
	if err != nil {
		return err
	}

	first, err := svc.AddArticle(ctx, jane.ID, tech.ID, "A Great Title")
	if err != nil {
		return err
	}
	_, _ = svc.AddArticle(ctx, jane.ID, tech.ID, "bad")
	_ = svc.RetitleArticle(ctx, first.ID, "A Better Title")

	titles := []struct {
		a     *entity.Author
		m     *entity.Magazine
		title string
	}{
		{jane, tech, "Compilers Explained"},
		{jane, tech, "The Case for Arenas"},
		{john, tech, "Garbage Collection"},
		{john, food, "Sourdough Basics"},
		{jane, food, "Midnight Ramen"},
	}
	for _, t := range titles {
		if _, err := svc.AddArticle(ctx, t.a.ID, t.m.ID, t.title); err != nil {
			return err
		}
	}

	for _, a := range []*entity.Author{jane, john} {
		if err := logAuthor(ctx, logger, svc, a); err != nil {
			return err
		}
	}
	for _, m := range []*entity.Magazine{tech, food} {
		if err := logMagazine(ctx, logger, svc, m); err != nil {
			return err
		}
	}

	top, err := svc.TopPublisher(ctx)
	if err != nil {
		return err
	}
	if top != nil {
		logger.Info("top publisher", slog.String("magazine", top.Name()))
	}
	return nil
}

func logAuthor(ctx context.Context, logger *slog.Logger, svc *catalog.Service, a *entity.Author) error {
	articles, err := svc.AuthorArticles(ctx, a.ID)
	if err != nil {
		return err
	}
	magazines, err := svc.AuthorMagazines(ctx, a.ID)
	if err != nil {
		return err
	}
	areas, err := svc.TopicAreas(ctx, a.ID)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(magazines))
	for _, m := range magazines {
		names = append(names, m.Name())
	}
	logger.Info("author summary",
		slog.String("author", a.Name()),
		slog.Int("articles", len(articles)),
		slog.Any("magazines", names),
		slog.Any("topic_areas", areas))
	return nil
}

func logMagazine(ctx context.Context, logger *slog.Logger, svc *catalog.Service, m *entity.Magazine) error {
	titles, err := svc.ArticleTitles(ctx, m.ID)
	if err != nil {
		return err
	}
	contributors, err := svc.Contributors(ctx, m.ID)
	if err != nil {
		return err
	}
	regulars, err := svc.ContributingAuthors(ctx, m.ID)
	if err != nil {
		return err
	}

	logger.Info("magazine summary",
		slog.String("magazine", m.Name()),
		slog.String("category", m.Category()),
		slog.Any("titles", titles),
		slog.Any("contributors", authorNames(contributors)),
		slog.Any("contributing_authors", authorNames(regulars)))
	return nil
}

// authorNames keeps a nil result nil so the log shows what the service returned.
func authorNames(authors []*entity.Author) []string {
	if authors == nil {
		return nil
	}
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.Name())
	}
	return out
}
