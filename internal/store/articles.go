package store

import (
	"fmt"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
)

// Articles returns clones of every article.
func (s *Store) Articles() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Article, len(s.data.articles))
	for i, article := range s.data.articles {
		out[i] = article.Clone()
	}
	return out
}

// ArticleByID retrieves an article by ID.
func (s *Store) ArticleByID(id string) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, article := range s.data.articles {
		if article.ID == id {
			return article.Clone(), nil
		}
	}
	return models.Article{}, apierr.NotFound(apierr.KindArticleNotFound, fmt.Sprintf("Article %s not found", id))
}

// ArticleBySlug retrieves an article by slug.
func (s *Store) ArticleBySlug(slug string) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, article := range s.data.articles {
		if article.Slug == slug {
			return article.Clone(), nil
		}
	}
	return models.Article{}, apierr.NotFound(apierr.KindArticleNotFound, fmt.Sprintf("Article slug %s not found", slug))
}

// CreateArticle assigns a fresh id, a unique slug (derived from the title
// when none is supplied), and timestamps, then prepends the article.
func (s *Store) CreateArticle(article models.Article) models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	article.ID = s.newID("art")

	slugSource := article.Slug
	if slugSource == "" {
		slugSource = article.Title
	}
	article.Slug = s.uniqueSlug(slugSource, article.ID)

	if article.PublishedAt.IsZero() {
		article.PublishedAt = now
	}
	article.UpdatedAt = now

	s.data.articles = append([]models.Article{article}, s.data.articles...)
	return article.Clone()
}

// UpdateArticle merges the provided fields over the current record. The slug
// is re-derived for uniqueness only when supplied; updatedAt always bumps.
func (s *Store) UpdateArticle(id string, update models.ArticleUpdate) (models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.articles {
		if s.data.articles[i].ID != id {
			continue
		}

		article := &s.data.articles[i]
		if update.Title != nil {
			article.Title = *update.Title
		}
		if update.Slug != nil {
			article.Slug = s.uniqueSlug(*update.Slug, id)
		}
		if update.Summary != nil {
			article.Summary = *update.Summary
		}
		if update.Content != nil {
			article.Content = *update.Content
		}
		if update.HeroImage != nil {
			article.HeroImage = *update.HeroImage
		}
		if update.Tags != nil {
			article.Tags = append([]string(nil), *update.Tags...)
		}
		if update.CategoryIDs != nil {
			article.CategoryIDs = append([]string(nil), *update.CategoryIDs...)
		}
		if update.PublishedAt != nil {
			article.PublishedAt = *update.PublishedAt
		}
		if update.AuthorID != nil {
			article.AuthorID = *update.AuthorID
		}
		if update.ReadingTimeMinutes != nil {
			article.ReadingTimeMinutes = *update.ReadingTimeMinutes
		}
		if update.IsFeatured != nil {
			article.IsFeatured = *update.IsFeatured
		}
		if update.Metrics != nil {
			article.Metrics = *update.Metrics
		}
		article.UpdatedAt = s.now()

		return article.Clone(), nil
	}

	return models.Article{}, apierr.NotFound(apierr.KindArticleNotFound, fmt.Sprintf("Article %s not found", id))
}

// DeleteArticle removes an article by ID.
func (s *Store) DeleteArticle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.articles {
		if s.data.articles[i].ID == id {
			s.data.articles = append(s.data.articles[:i], s.data.articles[i+1:]...)
			return nil
		}
	}
	return apierr.NotFound(apierr.KindArticleNotFound, fmt.Sprintf("Article %s not found", id))
}
