// Package memory provides the in-memory catalog store and the repository
// adapters built on it. A Store is the registry context for one catalog:
// callers construct it once and share it between the three repositories.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"magazine-catalog/internal/domain/entity"
)

// Store holds every author, magazine and article created through it.
// Entities live in append-only arenas; an entity's ID is its position plus one.
// Articles refer to their author and magazine by ID only.
type Store struct {
	id uuid.UUID

	mu         sync.RWMutex
	authors    []*entity.Author
	magazines  []*entity.Magazine
	articles   []*entity.Article
	byAuthor   map[entity.AuthorID][]entity.ArticleID
	byMagazine map[entity.MagazineID][]entity.ArticleID
}

// NewStore returns an empty store with a fresh identity.
func NewStore() *Store {
	return &Store{
		id:         uuid.New(),
		byAuthor:   make(map[entity.AuthorID][]entity.ArticleID),
		byMagazine: make(map[entity.MagazineID][]entity.ArticleID),
	}
}

// ID identifies this store in logs.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Stats reports the number of registered entities of each kind.
func (s *Store) Stats() (authors, magazines, articles int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.authors), len(s.magazines), len(s.articles)
}

// The lookups below expect s.mu to be held and return the stored pointer, or nil.

func (s *Store) author(id entity.AuthorID) *entity.Author {
	if id < 1 || int(id) > len(s.authors) {
		return nil
	}
	return s.authors[id-1]
}

func (s *Store) magazine(id entity.MagazineID) *entity.Magazine {
	if id < 1 || int(id) > len(s.magazines) {
		return nil
	}
	return s.magazines[id-1]
}

func (s *Store) article(id entity.ArticleID) *entity.Article {
	if id < 1 || int(id) > len(s.articles) {
		return nil
	}
	return s.articles[id-1]
}

func (s *Store) articlesByID(ids []entity.ArticleID) []*entity.Article {
	out := make([]*entity.Article, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneArticle(s.articles[id-1]))
	}
	return out
}

// Entities handed out are copies, so callers cannot bypass the store lock
// when changing a field.

func cloneAuthor(a *entity.Author) *entity.Author {
	cp := *a
	return &cp
}

func cloneMagazine(m *entity.Magazine) *entity.Magazine {
	cp := *m
	return &cp
}

func cloneArticle(a *entity.Article) *entity.Article {
	cp := *a
	return &cp
}
