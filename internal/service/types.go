package service

import (
	"time"

	"sanctuary-api/internal/models"
	"sanctuary-api/internal/query"
)

// Article sort keys.
const (
	ArticleSortRecent      = "recent"
	ArticleSortPopular     = "popular"
	ArticleSortReadingTime = "readingTime"
)

// Product sort keys.
const (
	ProductSortNewest    = "newest"
	ProductSortPriceAsc  = "priceAsc"
	ProductSortPriceDesc = "priceDesc"
	ProductSortPopular   = "popular"
)

type ArticleQuery struct {
	query.Params
	Search     string `json:"search,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	Tag        string `json:"tag,omitempty"`
	Featured   *bool  `json:"featured,omitempty"`
	SortBy     string `json:"sortBy,omitempty"`
}

type ProductQuery struct {
	query.Params
	Search     string      `json:"search,omitempty"`
	CategoryID string      `json:"categoryId,omitempty"`
	Featured   bool        `json:"featured,omitempty"`
	PriceRange *[2]float64 `json:"priceRange,omitempty"`
	SortBy     string      `json:"sortBy,omitempty"`
}

type OrderQuery struct {
	query.Params
	Status string `json:"status,omitempty"`
	UserID string `json:"userId,omitempty"`
}

type CreateArticleRequest struct {
	Title              string                `json:"title" binding:"required"`
	Slug               string                `json:"slug"`
	Summary            string                `json:"summary" binding:"required"`
	Content            string                `json:"content" binding:"required"`
	HeroImage          string                `json:"heroImage"`
	Tags               []string              `json:"tags"`
	CategoryIDs        []string              `json:"categoryIds"`
	AuthorID           string                `json:"authorId" binding:"required"`
	ReadingTimeMinutes int                   `json:"readingTimeMinutes"`
	IsFeatured         bool                  `json:"isFeatured"`
	PublishedAt        *time.Time            `json:"publishedAt"`
	Metrics            models.ArticleMetrics `json:"metrics"`
}

type CreateProductRequest struct {
	Name        string                    `json:"name" binding:"required"`
	Slug        string                    `json:"slug"`
	Summary     string                    `json:"summary"`
	Description string                    `json:"description"`
	SKU         string                    `json:"sku" binding:"required"`
	Price       float64                   `json:"price" binding:"gte=0"`
	Currency    string                    `json:"currency" binding:"required"`
	Stock       int                       `json:"stock" binding:"gte=0"`
	CategoryIDs []string                  `json:"categoryIds"`
	Images      []string                  `json:"images"`
	Tags        []string                  `json:"tags"`
	Attributes  []models.ProductAttribute `json:"attributes"`
	IsFeatured  bool                      `json:"isFeatured"`
	Metrics     models.ProductMetrics     `json:"metrics"`
}

type CreateOrderRequest struct {
	UserID          string                    `json:"userId" binding:"required"`
	Items           []models.OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress    `json:"shippingAddress" binding:"required"`
	Notes           string                    `json:"notes"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
