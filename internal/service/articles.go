package service

import (
	"context"
	"slices"
	"strings"

	"sanctuary-api/internal/models"
	"sanctuary-api/internal/query"

	"go.uber.org/zap"
)

func articleLess(sortBy string) func(a, b models.Article) bool {
	switch sortBy {
	case ArticleSortPopular:
		return func(a, b models.Article) bool { return a.Metrics.Reads > b.Metrics.Reads }
	case ArticleSortReadingTime:
		return func(a, b models.Article) bool { return a.ReadingTimeMinutes < b.ReadingTimeMinutes }
	default: // most recent first
		return func(a, b models.Article) bool { return a.PublishedAt.After(b.PublishedAt) }
	}
}

// FetchArticles searches, filters, sorts, and paginates the article
// collection.
func (s *Service) FetchArticles(ctx context.Context, q ArticleQuery) (query.Page[models.Article], error) {
	return run(ctx, s, "articles:list", q, func() (query.Page[models.Article], error) {
		articles := s.store.Articles()

		articles = query.Search(articles, q.Search,
			func(a models.Article) string { return a.Title },
			func(a models.Article) string { return a.Summary },
			func(a models.Article) string { return strings.Join(a.Tags, " ") },
		)

		var byCategory, byTag, byFeatured func(models.Article) bool
		if q.CategoryID != "" {
			byCategory = func(a models.Article) bool { return slices.Contains(a.CategoryIDs, q.CategoryID) }
		}
		if q.Tag != "" {
			byTag = func(a models.Article) bool { return slices.Contains(a.Tags, q.Tag) }
		}
		if q.Featured != nil {
			byFeatured = func(a models.Article) bool { return a.IsFeatured == *q.Featured }
		}
		articles = query.Filter(articles, byCategory, byTag, byFeatured)

		query.SortStable(articles, articleLess(q.SortBy))
		return query.Paginate(articles, q.Params), nil
	})
}

func (s *Service) GetArticleByID(ctx context.Context, id string) (models.Article, error) {
	return run(ctx, s, "articles:getById", map[string]any{"id": id}, func() (models.Article, error) {
		return s.store.ArticleByID(id)
	})
}

func (s *Service) GetArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	return run(ctx, s, "articles:getBySlug", map[string]any{"slug": slug}, func() (models.Article, error) {
		return s.store.ArticleBySlug(slug)
	})
}

func (s *Service) CreateArticle(ctx context.Context, req CreateArticleRequest) (models.Article, error) {
	return run(ctx, s, "articles:create", req, func() (models.Article, error) {
		article := models.Article{
			Title:              req.Title,
			Slug:               req.Slug,
			Summary:            req.Summary,
			Content:            req.Content,
			HeroImage:          req.HeroImage,
			Tags:               append([]string(nil), req.Tags...),
			CategoryIDs:        append([]string(nil), req.CategoryIDs...),
			AuthorID:           req.AuthorID,
			ReadingTimeMinutes: req.ReadingTimeMinutes,
			IsFeatured:         req.IsFeatured,
			Metrics:            req.Metrics,
		}
		if req.PublishedAt != nil {
			article.PublishedAt = *req.PublishedAt
		}

		created := s.store.CreateArticle(article)
		s.logger.Info("Article created",
			zap.String("article_id", created.ID),
			zap.String("slug", created.Slug))
		return created, nil
	})
}

func (s *Service) UpdateArticle(ctx context.Context, id string, update models.ArticleUpdate) (models.Article, error) {
	payload := map[string]any{"id": id, "update": update}
	return run(ctx, s, "articles:update", payload, func() (models.Article, error) {
		return s.store.UpdateArticle(id, update)
	})
}

func (s *Service) DeleteArticle(ctx context.Context, id string) error {
	return runVoid(ctx, s, "articles:delete", map[string]any{"id": id}, func() error {
		return s.store.DeleteArticle(id)
	})
}
