package models

import "time"

// ArticleUpdate merges provided fields over the current record; nil fields
// are left untouched.
type ArticleUpdate struct {
	Title              *string         `json:"title,omitempty"`
	Slug               *string         `json:"slug,omitempty"`
	Summary            *string         `json:"summary,omitempty"`
	Content            *string         `json:"content,omitempty"`
	HeroImage          *string         `json:"heroImage,omitempty"`
	Tags               *[]string       `json:"tags,omitempty"`
	CategoryIDs        *[]string       `json:"categoryIds,omitempty"`
	PublishedAt        *time.Time      `json:"publishedAt,omitempty"`
	AuthorID           *string         `json:"authorId,omitempty"`
	ReadingTimeMinutes *int            `json:"readingTimeMinutes,omitempty"`
	IsFeatured         *bool           `json:"isFeatured,omitempty"`
	Metrics            *ArticleMetrics `json:"metrics,omitempty"`
}

// ProductUpdate merges provided fields over the current record.
type ProductUpdate struct {
	Name        *string             `json:"name,omitempty"`
	Slug        *string             `json:"slug,omitempty"`
	Summary     *string             `json:"summary,omitempty"`
	Description *string             `json:"description,omitempty"`
	SKU         *string             `json:"sku,omitempty"`
	Price       *float64            `json:"price,omitempty"`
	Currency    *string             `json:"currency,omitempty"`
	Stock       *int                `json:"stock,omitempty"`
	CategoryIDs *[]string           `json:"categoryIds,omitempty"`
	Images      *[]string           `json:"images,omitempty"`
	Tags        *[]string           `json:"tags,omitempty"`
	Attributes  *[]ProductAttribute `json:"attributes,omitempty"`
	IsFeatured  *bool               `json:"isFeatured,omitempty"`
	Metrics     *ProductMetrics     `json:"metrics,omitempty"`
}

// OrderLineRequest asks for a quantity of a product at whatever the product's
// current price is.
type OrderLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}
