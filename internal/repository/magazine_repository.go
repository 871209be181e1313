package repository

import (
	"context"

	"magazine-catalog/internal/domain/entity"
)

type MagazineRepository interface {
	Create(ctx context.Context, name, category string) (*entity.Magazine, error)
	// Get returns (nil, nil) if the magazine is not found.
	Get(ctx context.Context, id entity.MagazineID) (*entity.Magazine, error)
	// List returns every magazine in creation order.
	List(ctx context.Context) ([]*entity.Magazine, error)
	UpdateName(ctx context.Context, id entity.MagazineID, name string) error
	UpdateCategory(ctx context.Context, id entity.MagazineID, category string) error
}
