package store

import (
	"fmt"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
)

// Products returns clones of every product.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.data.products))
	for i, product := range s.data.products {
		out[i] = product.Clone()
	}
	return out
}

// ProductByID retrieves a product by ID.
func (s *Store) ProductByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.data.products {
		if product.ID == id {
			return product.Clone(), nil
		}
	}
	return models.Product{}, apierr.NotFound(apierr.KindProductNotFound, fmt.Sprintf("Product %s not found", id))
}

// ProductBySlug retrieves a product by slug.
func (s *Store) ProductBySlug(slug string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.data.products {
		if product.Slug == slug {
			return product.Clone(), nil
		}
	}
	return models.Product{}, apierr.NotFound(apierr.KindProductNotFound, fmt.Sprintf("Product slug %s not found", slug))
}

// CreateProduct assigns a fresh id, a unique slug (derived from the name when
// none is supplied), and timestamps, then prepends the product.
func (s *Store) CreateProduct(product models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	product.ID = s.newID("prod")

	slugSource := product.Slug
	if slugSource == "" {
		slugSource = product.Name
	}
	product.Slug = s.uniqueSlug(slugSource, product.ID)

	product.CreatedAt = now
	product.UpdatedAt = now

	s.data.products = append([]models.Product{product}, s.data.products...)
	return product.Clone()
}

// UpdateProduct merges the provided fields over the current record.
func (s *Store) UpdateProduct(id string, update models.ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.products {
		if s.data.products[i].ID != id {
			continue
		}

		product := &s.data.products[i]
		if update.Name != nil {
			product.Name = *update.Name
		}
		if update.Slug != nil {
			product.Slug = s.uniqueSlug(*update.Slug, id)
		}
		if update.Summary != nil {
			product.Summary = *update.Summary
		}
		if update.Description != nil {
			product.Description = *update.Description
		}
		if update.SKU != nil {
			product.SKU = *update.SKU
		}
		if update.Price != nil {
			product.Price = *update.Price
		}
		if update.Currency != nil {
			product.Currency = *update.Currency
		}
		if update.Stock != nil {
			product.Stock = *update.Stock
		}
		if update.CategoryIDs != nil {
			product.CategoryIDs = append([]string(nil), *update.CategoryIDs...)
		}
		if update.Images != nil {
			product.Images = append([]string(nil), *update.Images...)
		}
		if update.Tags != nil {
			product.Tags = append([]string(nil), *update.Tags...)
		}
		if update.Attributes != nil {
			product.Attributes = append([]models.ProductAttribute(nil), *update.Attributes...)
		}
		if update.IsFeatured != nil {
			product.IsFeatured = *update.IsFeatured
		}
		if update.Metrics != nil {
			product.Metrics = update.Metrics.Clone()
		}
		product.UpdatedAt = s.now()

		return product.Clone(), nil
	}

	return models.Product{}, apierr.NotFound(apierr.KindProductNotFound, fmt.Sprintf("Product %s not found", id))
}

// DeleteProduct removes a product by ID.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.products {
		if s.data.products[i].ID == id {
			s.data.products = append(s.data.products[:i], s.data.products[i+1:]...)
			return nil
		}
	}
	return apierr.NotFound(apierr.KindProductNotFound, fmt.Sprintf("Product %s not found", id))
}
