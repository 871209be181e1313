package memory

import (
	"context"
	"fmt"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

type ArticleRepo struct{ store *Store }

func NewArticleRepo(store *Store) repository.ArticleRepository {
	return &ArticleRepo{store: store}
}

// Create resolves both references, validates the title and then appends the
// article to the author index, the magazine index and the article arena while
// holding the write lock. Nothing is appended when any check fails.
func (repo *ArticleRepo) Create(_ context.Context, authorID entity.AuthorID, magazineID entity.MagazineID, title string) (*entity.Article, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// unknown IDs resolve to nil and surface as TypeConstraintError
	article, err := entity.NewArticle(s.author(authorID), s.magazine(magazineID), title)
	if err != nil {
		return nil, err
	}

	article.ID = entity.ArticleID(len(s.articles) + 1)
	s.articles = append(s.articles, article)
	s.byAuthor[authorID] = append(s.byAuthor[authorID], article.ID)
	s.byMagazine[magazineID] = append(s.byMagazine[magazineID], article.ID)
	return cloneArticle(article), nil
}

func (repo *ArticleRepo) Get(_ context.Context, id entity.ArticleID) (*entity.Article, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	article := s.article(id)
	if article == nil {
		return nil, nil
	}
	return cloneArticle(article), nil
}

func (repo *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles := make([]*entity.Article, 0, len(s.articles))
	for _, a := range s.articles {
		articles = append(articles, cloneArticle(a))
	}
	return articles, nil
}

func (repo *ArticleRepo) ListByAuthor(_ context.Context, authorID entity.AuthorID) ([]*entity.Article, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.articlesByID(s.byAuthor[authorID]), nil
}

func (repo *ArticleRepo) ListByMagazine(_ context.Context, magazineID entity.MagazineID) ([]*entity.Article, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.articlesByID(s.byMagazine[magazineID]), nil
}

func (repo *ArticleRepo) UpdateTitle(_ context.Context, id entity.ArticleID, title string) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	article := s.article(id)
	if article == nil {
		return fmt.Errorf("UpdateTitle: article %d: %w", id, entity.ErrNotFound)
	}
	return article.SetTitle(title)
}
