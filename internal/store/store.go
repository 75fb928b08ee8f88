// Package store owns every entity collection. All reads hand out clones; all
// mutations happen under one mutex so each operation is atomic with respect
// to the others.
package store

import (
	"strconv"
	"sync"
	"time"

	"sanctuary-api/internal/models"
	"sanctuary-api/internal/util"
)

type dataset struct {
	categories  []models.Category
	articles    []models.Article
	products    []models.Product
	users       []models.User
	orders      []models.Order
	credentials []models.Credential
	stats       models.SiteStats
}

type Store struct {
	mu    sync.RWMutex
	data  *dataset
	now   func() time.Time
	newID func(prefix string) string
}

type Option func(*Store)

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides identifier generation, used by tests.
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore creates a store seeded from the static dataset.
func NewStore(opts ...Option) *Store {
	s := &Store{
		data:  seedDataset(),
		now:   time.Now,
		newID: util.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset discards all mutations and restores the seed data.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = seedDataset()
}

// Categories returns clones of the static category set.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.data.categories))
	for i, category := range s.data.categories {
		out[i] = category.Clone()
	}
	return out
}

// FallbackStats returns the seed's precomputed statistics, used when the live
// computation comes up empty.
func (s *Store) FallbackStats() models.SiteStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.stats.Clone()
}

// uniqueSlug derives a slug from raw and disambiguates it against both the
// article and product slug spaces, skipping the record identified by
// currentID so updates do not collide with themselves.
func (s *Store) uniqueSlug(raw, currentID string) string {
	base := util.Slugify(raw)
	slug := base
	counter := 1

	taken := func(candidate string) bool {
		for _, article := range s.data.articles {
			if article.Slug == candidate && article.ID != currentID {
				return true
			}
		}
		for _, product := range s.data.products {
			if product.Slug == candidate && product.ID != currentID {
				return true
			}
		}
		return false
	}

	for taken(slug) {
		counter++
		slug = base + "-" + strconv.Itoa(counter)
	}
	return slug
}
