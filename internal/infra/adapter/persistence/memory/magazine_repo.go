package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

type MagazineRepo struct{ store *Store }

func NewMagazineRepo(store *Store) repository.MagazineRepository {
	return &MagazineRepo{store: store}
}

func (repo *MagazineRepo) Create(_ context.Context, name, category string) (*entity.Magazine, error) {
	magazine, err := entity.NewMagazine(name, category)
	if err != nil {
		return nil, err
	}

	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	magazine.ID = entity.MagazineID(len(s.magazines) + 1)
	s.magazines = append(s.magazines, magazine)
	return cloneMagazine(magazine), nil
}

func (repo *MagazineRepo) Get(_ context.Context, id entity.MagazineID) (*entity.Magazine, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	magazine := s.magazine(id)
	if magazine == nil {
		return nil, nil
	}
	return cloneMagazine(magazine), nil
}

func (repo *MagazineRepo) List(_ context.Context) ([]*entity.Magazine, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	magazines := make([]*entity.Magazine, 0, len(s.magazines))
	for _, m := range s.magazines {
		magazines = append(magazines, cloneMagazine(m))
	}
	return magazines, nil
}

func (repo *MagazineRepo) UpdateName(_ context.Context, id entity.MagazineID, name string) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	magazine := s.magazine(id)
	if magazine == nil {
		return fmt.Errorf("UpdateName: magazine %d: %w", id, entity.ErrNotFound)
	}
	return magazine.SetName(name)
}

func (repo *MagazineRepo) UpdateCategory(_ context.Context, id entity.MagazineID, category string) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	magazine := s.magazine(id)
	if magazine == nil {
		return fmt.Errorf("UpdateCategory: magazine %d: %w", id, entity.ErrNotFound)
	}
	return magazine.SetCategory(category)
}
