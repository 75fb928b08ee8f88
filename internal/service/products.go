package service

import (
	"context"
	"slices"
	"strings"

	"sanctuary-api/internal/models"
	"sanctuary-api/internal/query"

	"go.uber.org/zap"
)

func productLess(sortBy string) func(a, b models.Product) bool {
	switch sortBy {
	case ProductSortPriceAsc:
		return func(a, b models.Product) bool { return a.Price < b.Price }
	case ProductSortPriceDesc:
		return func(a, b models.Product) bool { return a.Price > b.Price }
	case ProductSortPopular:
		return func(a, b models.Product) bool { return a.Metrics.Sold > b.Metrics.Sold }
	default: // newest first
		return func(a, b models.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
}

// FetchProducts searches, filters, sorts, and paginates the product catalog.
func (s *Service) FetchProducts(ctx context.Context, q ProductQuery) (query.Page[models.Product], error) {
	return run(ctx, s, "products:list", q, func() (query.Page[models.Product], error) {
		products := s.store.Products()

		products = query.Search(products, q.Search,
			func(p models.Product) string { return p.Name },
			func(p models.Product) string { return p.Summary },
			func(p models.Product) string { return strings.Join(p.Tags, " ") },
		)

		var byCategory, byFeatured, byPrice func(models.Product) bool
		if q.CategoryID != "" {
			byCategory = func(p models.Product) bool { return slices.Contains(p.CategoryIDs, q.CategoryID) }
		}
		if q.Featured {
			byFeatured = func(p models.Product) bool { return p.IsFeatured }
		}
		if q.PriceRange != nil {
			lo, hi := q.PriceRange[0], q.PriceRange[1]
			byPrice = func(p models.Product) bool { return p.Price >= lo && p.Price <= hi }
		}
		products = query.Filter(products, byCategory, byFeatured, byPrice)

		query.SortStable(products, productLess(q.SortBy))
		return query.Paginate(products, q.Params), nil
	})
}

func (s *Service) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	return run(ctx, s, "products:getById", map[string]any{"id": id}, func() (models.Product, error) {
		return s.store.ProductByID(id)
	})
}

func (s *Service) GetProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	return run(ctx, s, "products:getBySlug", map[string]any{"slug": slug}, func() (models.Product, error) {
		return s.store.ProductBySlug(slug)
	})
}

func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (models.Product, error) {
	return run(ctx, s, "products:create", req, func() (models.Product, error) {
		product := models.Product{
			Name:        req.Name,
			Slug:        req.Slug,
			Summary:     req.Summary,
			Description: req.Description,
			SKU:         req.SKU,
			Price:       req.Price,
			Currency:    req.Currency,
			Stock:       req.Stock,
			CategoryIDs: append([]string(nil), req.CategoryIDs...),
			Images:      append([]string(nil), req.Images...),
			Tags:        append([]string(nil), req.Tags...),
			Attributes:  append([]models.ProductAttribute(nil), req.Attributes...),
			IsFeatured:  req.IsFeatured,
			Metrics:     req.Metrics.Clone(),
		}

		created := s.store.CreateProduct(product)
		s.logger.Info("Product created",
			zap.String("product_id", created.ID),
			zap.String("slug", created.Slug))
		return created, nil
	})
}

func (s *Service) UpdateProduct(ctx context.Context, id string, update models.ProductUpdate) (models.Product, error) {
	payload := map[string]any{"id": id, "update": update}
	return run(ctx, s, "products:update", payload, func() (models.Product, error) {
		return s.store.UpdateProduct(id, update)
	})
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return runVoid(ctx, s, "products:delete", map[string]any{"id": id}, func() error {
		return s.store.DeleteProduct(id)
	})
}
