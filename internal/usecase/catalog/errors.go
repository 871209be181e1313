// Package catalog provides the use cases of the author/magazine/article catalog.
// It builds the relationship graph through the repositories and answers the
// derived queries over it (topic areas, contributors, top publisher and so on).
package catalog

import (
	"fmt"

	"magazine-catalog/internal/domain/entity"
)

// Sentinel errors for catalog lookups. Each also matches entity.ErrNotFound.
var (
	// ErrAuthorNotFound indicates that no author has the requested ID.
	ErrAuthorNotFound = fmt.Errorf("author: %w", entity.ErrNotFound)

	// ErrMagazineNotFound indicates that no magazine has the requested ID.
	ErrMagazineNotFound = fmt.Errorf("magazine: %w", entity.ErrNotFound)

	// ErrArticleNotFound indicates that no article has the requested ID.
	ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)
)
