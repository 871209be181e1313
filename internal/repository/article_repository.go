package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

// ArticleRepository stores articles and the author/magazine indexes they join.
type ArticleRepository interface {
	// Create validates the references and title, then registers the article with
	// its author, its magazine and the global article list in one step.
	// Returns the registered article with its ID assigned.
	Create(ctx context.Context, authorID entity.AuthorID, magazineID entity.MagazineID, title string) (*entity.Article, error)
	// Get returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id entity.ArticleID) (*entity.Article, error)
	// List returns every article in creation order.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByAuthor returns the author's articles in creation order.
	ListByAuthor(ctx context.Context, authorID entity.AuthorID) ([]*entity.Article, error)
	// ListByMagazine returns the magazine's articles in creation order.
	ListByMagazine(ctx context.Context, magazineID entity.MagazineID) ([]*entity.Article, error)
	// UpdateTitle attempts to reassign a title. Titles are write-once, so this
	// fails with entity.ImmutableFieldError for any registered article.
	UpdateTitle(ctx context.Context, id entity.ArticleID, title string) error
}
