package service

import (
	"context"
	"math"
	"slices"
	"sort"

	"sanctuary-api/internal/models"
)

// FetchStats derives site statistics from current entity state. Each top list
// falls back to the seed's precomputed values only when the live computation
// is empty, so an emptied dataset never surfaces misleading zeros.
func (s *Service) FetchStats(ctx context.Context) (models.SiteStats, error) {
	return run(ctx, s, "stats:get", nil, func() (models.SiteStats, error) {
		return s.computeStats(), nil
	})
}

func (s *Service) computeStats() models.SiteStats {
	fallback := s.store.FallbackStats()
	orders := s.store.Orders()
	articles := s.store.Articles()
	products := s.store.Products()
	categories := s.store.Categories()

	var revenue float64
	customers := map[string]struct{}{}
	productRevenue := map[string]float64{}
	for _, order := range orders {
		revenue += order.TotalAmount
		customers[order.UserID] = struct{}{}
		for _, item := range order.Items {
			productRevenue[item.ProductID] += item.UnitPrice * float64(item.Quantity)
		}
	}

	topProducts := make([]models.ProductRevenue, 0, len(productRevenue))
	for productID, amount := range productRevenue {
		topProducts = append(topProducts, models.ProductRevenue{ProductID: productID, Revenue: amount})
	}
	sort.Slice(topProducts, func(i, j int) bool { return topProducts[i].Revenue > topProducts[j].Revenue })
	topProducts = topN(topProducts, 3)

	topArticles := make([]models.ArticleReads, 0, len(articles))
	for _, article := range articles {
		topArticles = append(topArticles, models.ArticleReads{ArticleID: article.ID, Reads: article.Metrics.Reads})
	}
	sort.SliceStable(topArticles, func(i, j int) bool { return topArticles[i].Reads > topArticles[j].Reads })
	topArticles = topN(topArticles, 3)

	trending := make([]models.CategoryTrend, 0, len(categories))
	for _, category := range categories {
		var reads, sold int
		for _, article := range articles {
			if slices.Contains(article.CategoryIDs, category.ID) {
				reads += article.Metrics.Reads
			}
		}
		for _, product := range products {
			if slices.Contains(product.CategoryIDs, category.ID) {
				sold += product.Metrics.Sold
			}
		}

		growth := int(math.Round((float64(reads)/100 + float64(sold)/20) / 2))
		trending = append(trending, models.CategoryTrend{
			CategoryID:       category.ID,
			GrowthPercentage: clampInt(growth, 5, 40),
		})
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].GrowthPercentage > trending[j].GrowthPercentage
	})
	trending = topN(trending, 3)

	stats := models.SiteStats{
		TotalRevenue:              revenue,
		TotalOrders:               len(orders),
		TotalCustomers:            len(customers),
		NewsletterSubscribers:     fallback.NewsletterSubscribers,
		RetreatBookings:           fallback.RetreatBookings,
		MeditationSessionsTracked: fallback.MeditationSessionsTracked,
		TrendingCategories:        trending,
		TopProducts:               topProducts,
		TopArticles:               topArticles,
	}

	if len(stats.TrendingCategories) == 0 {
		stats.TrendingCategories = fallback.TrendingCategories
	}
	if len(stats.TopProducts) == 0 {
		stats.TopProducts = fallback.TopProducts
	}
	if len(stats.TopArticles) == 0 {
		stats.TopArticles = fallback.TopArticles
	}

	return stats
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
