package models

import "time"

// UserRole values, ordered by privilege only at the admin boundary.
const (
	RoleGuest        = "guest"
	RoleMember       = "member"
	RolePractitioner = "practitioner"
	RoleAdmin        = "admin"
)

// Order statuses
const (
	OrderStatusDraft      = "draft"
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Category is part of the static seed set; the core exposes no category
// mutations.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Featured    bool   `json:"featured,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
	Image       string `json:"image,omitempty"`
}

type ArticleMetrics struct {
	Reads     int `json:"reads"`
	Bookmarks int `json:"bookmarks"`
	Shares    int `json:"shares"`
}

type Article struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Slug               string         `json:"slug"`
	Summary            string         `json:"summary"`
	Content            string         `json:"content"`
	HeroImage          string         `json:"heroImage"`
	Tags               []string       `json:"tags"`
	CategoryIDs        []string       `json:"categoryIds"`
	PublishedAt        time.Time      `json:"publishedAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	AuthorID           string         `json:"authorId"`
	ReadingTimeMinutes int            `json:"readingTimeMinutes"`
	IsFeatured         bool           `json:"isFeatured"`
	Metrics            ArticleMetrics `json:"metrics"`
}

type ProductMetrics struct {
	Rating            float64    `json:"rating"`
	ReviewCount       int        `json:"reviewCount"`
	Sold              int        `json:"sold"`
	RestockExpectedAt *time.Time `json:"restockExpectedAt"`
}

type ProductAttribute struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type Product struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Summary     string             `json:"summary"`
	Description string             `json:"description"`
	SKU         string             `json:"sku"`
	Price       float64            `json:"price"`
	Currency    string             `json:"currency"`
	Stock       int                `json:"stock"`
	CategoryIDs []string           `json:"categoryIds"`
	Images      []string           `json:"images"`
	Tags        []string           `json:"tags"`
	Attributes  []ProductAttribute `json:"attributes"`
	IsFeatured  bool               `json:"isFeatured"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Metrics     ProductMetrics     `json:"metrics"`
}

type UserPreferences struct {
	Locale         string   `json:"locale"`
	Currency       string   `json:"currency"`
	MarketingOptIn bool     `json:"marketingOptIn"`
	Interests      []string `json:"interests"`
}

type User struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	AvatarURL   string          `json:"avatarUrl,omitempty"`
	Bio         string          `json:"bio,omitempty"`
	Location    string          `json:"location,omitempty"`
	Preferences UserPreferences `json:"preferences"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	LastLoginAt *time.Time      `json:"lastLoginAt,omitempty"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone,omitempty"`
}

// OrderItem captures the price and currency at order time; later product
// changes never affect placed orders.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Currency  string  `json:"currency"`
}

type OrderTimelineEvent struct {
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Order struct {
	ID              string               `json:"id"`
	UserID          string               `json:"userId"`
	Items           []OrderItem          `json:"items"`
	Status          string               `json:"status"`
	TotalAmount     float64              `json:"totalAmount"`
	Currency        string               `json:"currency"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
	ShippingAddress ShippingAddress      `json:"shippingAddress"`
	Notes           string               `json:"notes,omitempty"`
	Timeline        []OrderTimelineEvent `json:"timeline"`
}

type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Credential is seed-only login data; credentials here are illustrative, not
// production auth.
type Credential struct {
	Email    string
	Password string
	UserID   string
}

type CategoryTrend struct {
	CategoryID       string `json:"categoryId"`
	GrowthPercentage int    `json:"growthPercentage"`
}

type ProductRevenue struct {
	ProductID string  `json:"productId"`
	Revenue   float64 `json:"revenue"`
}

type ArticleReads struct {
	ArticleID string `json:"articleId"`
	Reads     int    `json:"reads"`
}

// SiteStats is derived on demand from current entity state. The subscriber,
// booking, and session gauges come from the static seed only.
type SiteStats struct {
	TotalRevenue              float64          `json:"totalRevenue"`
	TotalOrders               int              `json:"totalOrders"`
	TotalCustomers            int              `json:"totalCustomers"`
	NewsletterSubscribers     int              `json:"newsletterSubscribers"`
	RetreatBookings           int              `json:"retreatBookings"`
	MeditationSessionsTracked int              `json:"meditationSessionsTracked"`
	TrendingCategories        []CategoryTrend  `json:"trendingCategories"`
	TopProducts               []ProductRevenue `json:"topProducts"`
	TopArticles               []ArticleReads   `json:"topArticles"`
}
