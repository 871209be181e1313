package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

type AuthorRepository interface {
	Create(ctx context.Context, name string) (*entity.Author, error)
	// Get returns (nil, nil) if the author is not found.
	Get(ctx context.Context, id entity.AuthorID) (*entity.Author, error)
	// List returns every author in creation order.
	List(ctx context.Context) ([]*entity.Author, error)
	UpdateName(ctx context.Context, id entity.AuthorID, name string) error
}
