package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

type AuthorRepo struct{ store *Store }

func NewAuthorRepo(store *Store) repository.AuthorRepository {
	return &AuthorRepo{store: store}
}

func (repo *AuthorRepo) Create(_ context.Context, name string) (*entity.Author, error) {
	author, err := entity.NewAuthor(name)
	if err != nil {
		return nil, err
	}

	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	author.ID = entity.AuthorID(len(s.authors) + 1)
	s.authors = append(s.authors, author)
	return cloneAuthor(author), nil
}

func (repo *AuthorRepo) Get(_ context.Context, id entity.AuthorID) (*entity.Author, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	author := s.author(id)
	if author == nil {
		return nil, nil
	}
	return cloneAuthor(author), nil
}

func (repo *AuthorRepo) List(_ context.Context) ([]*entity.Author, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make([]*entity.Author, 0, len(s.authors))
	for _, a := range s.authors {
		authors = append(authors, cloneAuthor(a))
	}
	return authors, nil
}

func (repo *AuthorRepo) UpdateName(_ context.Context, id entity.AuthorID, name string) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	author := s.author(id)
	if author == nil {
		return fmt.Errorf("UpdateName: author %d: %w", id, entity.ErrNotFound)
	}
	return author.SetName(name)
}
