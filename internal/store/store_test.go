package store

import (
	"fmt"
	"testing"
	"time"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	counter := 0
	return NewStore(
		WithClock(func() time.Time { return testClock }),
		WithIDGenerator(func(prefix string) string {
			counter++
			return fmt.Sprintf("%s-test-%d", prefix, counter)
		}),
	)
}

func TestSeedCounts(t *testing.T) {
	s := newTestStore()

	assert.Len(t, s.Categories(), 6)
	assert.Len(t, s.Articles(), 6)
	assert.Len(t, s.Products(), 5)
	assert.Len(t, s.Users(), 3)
	assert.Len(t, s.Orders(), 3)
}

func TestArticleLookup(t *testing.T) {
	s := newTestStore()

	article, err := s.ArticleByID("art-celestial-pivots")
	require.NoError(t, err)
	assert.Equal(t, "celestial-pivots-breath-big-dipper", article.Slug)
	assert.Equal(t, 4820, article.Metrics.Reads)

	bySlug, err := s.ArticleBySlug("celestial-pivots-breath-big-dipper")
	require.NoError(t, err)
	assert.Equal(t, article.ID, bySlug.ID)

	_, err = s.ArticleByID("non-existent")
	assert.True(t, apierr.IsKind(err, apierr.KindArticleNotFound))
}

func TestReadsReturnIndependentCopies(t *testing.T) {
	s := newTestStore()

	articles := s.Articles()
	articles[0].Tags[0] = "mutated"
	articles[0].Title = "mutated"

	fresh, err := s.ArticleByID(articles[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.Title)
	assert.NotEqual(t, "mutated", fresh.Tags[0])
}

func TestCreateArticleDerivesUniqueSlug(t *testing.T) {
	s := newTestStore()

	first := s.CreateArticle(models.Article{Title: "Tracing the Celestial Pivots: Aligning Breath with the Big Dipper", Slug: "celestial-pivots-breath-big-dipper"})
	assert.Equal(t, "celestial-pivots-breath-big-dipper-2", first.Slug)

	second := s.CreateArticle(models.Article{Title: "Untitled", Slug: "celestial-pivots-breath-big-dipper"})
	assert.Equal(t, "celestial-pivots-breath-big-dipper-3", second.Slug)
}

func TestSlugUniquenessSpansArticlesAndProducts(t *testing.T) {
	s := newTestStore()

	article := s.CreateArticle(models.Article{Title: "Azure Qi Tonic Elixir"})
	assert.Equal(t, "azure-qi-tonic-elixir-2", article.Slug)

	product := s.CreateProduct(models.Product{Name: "Teaware", Slug: "golden-elixir-tea-ritual"})
	assert.Equal(t, "golden-elixir-tea-ritual-2", product.Slug)
}

func TestCreateArticleDefaults(t *testing.T) {
	s := newTestStore()

	created := s.CreateArticle(models.Article{Title: "New Practice Notes"})

	assert.Equal(t, "art-test-1", created.ID)
	assert.Equal(t, "new-practice-notes", created.Slug)
	assert.Equal(t, testClock, created.PublishedAt)
	assert.Equal(t, testClock, created.UpdatedAt)

	articles := s.Articles()
	assert.Equal(t, created.ID, articles[0].ID)
	assert.Len(t, articles, 7)
}

func TestUpdateArticleMergesOnlyProvidedFields(t *testing.T) {
	s := newTestStore()

	title := "Renamed"
	updated, err := s.UpdateArticle("art-golden-elixir-tea", models.ArticleUpdate{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "golden-elixir-tea-ritual", updated.Slug)
	assert.Equal(t, 3680, updated.Metrics.Reads)
	assert.Equal(t, testClock, updated.UpdatedAt)

	_, err = s.UpdateArticle("non-existent", models.ArticleUpdate{Title: &title})
	assert.True(t, apierr.IsKind(err, apierr.KindArticleNotFound))
}

func TestDeleteArticle(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.DeleteArticle("art-azure-mists"))
	assert.Len(t, s.Articles(), 5)

	err := s.DeleteArticle("art-azure-mists")
	assert.True(t, apierr.IsKind(err, apierr.KindArticleNotFound))
}

func TestCreateOrderAdjustsInventory(t *testing.T) {
	s := newTestStore()

	order, err := s.CreateOrder("user-adept-wei",
		[]models.OrderLineRequest{{ProductID: "prod-qi-tonic-elixir", Quantity: 2}},
		models.ShippingAddress{FullName: "Wei Ling", Line1: "No. 12", City: "Chengdu", Country: "China"},
		"")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 104.0, order.TotalAmount)
	assert.Equal(t, "USD", order.Currency)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 52.0, order.Items[0].UnitPrice)
	require.Len(t, order.Timeline, 1)
	assert.Equal(t, models.OrderStatusPending, order.Timeline[0].Status)
	assert.Equal(t, orderReceivedNote, order.Timeline[0].Note)

	product, err := s.ProductByID("prod-qi-tonic-elixir")
	require.NoError(t, err)
	assert.Equal(t, 62, product.Stock)
	assert.Equal(t, 322, product.Metrics.Sold)

	orders := s.Orders()
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateOrder("user-adept-wei",
		[]models.OrderLineRequest{{ProductID: "prod-lacquered-luopan", Quantity: 500}},
		models.ShippingAddress{}, "")
	assert.True(t, apierr.IsKind(err, apierr.KindInsufficientStock))

	product, err := s.ProductByID("prod-lacquered-luopan")
	require.NoError(t, err)
	assert.Equal(t, 24, product.Stock)
}

func TestCreateOrderDoesNotRestoreEarlierLines(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateOrder("user-adept-wei",
		[]models.OrderLineRequest{
			{ProductID: "prod-celestial-incense", Quantity: 1},
			{ProductID: "prod-lacquered-luopan", Quantity: 500},
		},
		models.ShippingAddress{}, "")
	assert.True(t, apierr.IsKind(err, apierr.KindInsufficientStock))

	incense, err := s.ProductByID("prod-celestial-incense")
	require.NoError(t, err)
	assert.Equal(t, 119, incense.Stock)
	assert.Equal(t, 541, incense.Metrics.Sold)

	assert.Len(t, s.Orders(), 3)
}

func TestCreateOrderUnknownUserOrProduct(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateOrder("user-unknown", nil, models.ShippingAddress{}, "")
	assert.True(t, apierr.IsKind(err, apierr.KindUserNotFound))

	_, err = s.CreateOrder("user-adept-wei",
		[]models.OrderLineRequest{{ProductID: "prod-unknown", Quantity: 1}},
		models.ShippingAddress{}, "")
	assert.True(t, apierr.IsKind(err, apierr.KindProductNotFound))
}

func TestCreateOrderWithoutLinesFallsBackToUSD(t *testing.T) {
	s := newTestStore()

	order, err := s.CreateOrder("user-seeker-mei", nil, models.ShippingAddress{}, "draft basket")
	require.NoError(t, err)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, 0.0, order.TotalAmount)
}

func TestUpdateOrderStatusAppendsTimeline(t *testing.T) {
	s := newTestStore()

	order, err := s.UpdateOrderStatus("order-202403-003", models.OrderStatusShipped, "resent")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.Equal(t, 156.0, order.TotalAmount)
	require.Len(t, order.Timeline, 5)
	assert.Equal(t, "resent", order.Timeline[4].Note)
	assert.Equal(t, testClock, order.UpdatedAt)

	again, err := s.UpdateOrderStatus("order-202403-003", models.OrderStatusShipped, "")
	require.NoError(t, err)
	assert.Equal(t, 156.0, again.TotalAmount)
	assert.Len(t, again.Timeline, 6)

	_, err = s.UpdateOrderStatus("non-existent", models.OrderStatusShipped, "")
	assert.True(t, apierr.IsKind(err, apierr.KindOrderNotFound))
}

func TestDeleteOrder(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.DeleteOrder("order-202404-002"))
	assert.Len(t, s.Orders(), 2)

	err := s.DeleteOrder("order-202404-002")
	assert.True(t, apierr.IsKind(err, apierr.KindOrderNotFound))
}

func TestTouchLogin(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.TouchLogin("user-seeker-mei"))

	user, err := s.UserByID("user-seeker-mei")
	require.NoError(t, err)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, testClock, *user.LastLoginAt)
	assert.Equal(t, testClock, user.UpdatedAt)

	err = s.TouchLogin("user-unknown")
	assert.True(t, apierr.IsKind(err, apierr.KindUserNotFound))
}

func TestResetRestoresSeedData(t *testing.T) {
	s := newTestStore()

	s.CreateArticle(models.Article{Title: "Scratch"})
	require.NoError(t, s.DeleteProduct("prod-qi-stone-kit"))
	_, err := s.CreateOrder("user-adept-wei",
		[]models.OrderLineRequest{{ProductID: "prod-qi-tonic-elixir", Quantity: 1}},
		models.ShippingAddress{}, "")
	require.NoError(t, err)

	s.Reset()

	assert.Len(t, s.Articles(), 6)
	assert.Len(t, s.Products(), 5)
	assert.Len(t, s.Orders(), 3)

	product, err := s.ProductByID("prod-qi-tonic-elixir")
	require.NoError(t, err)
	assert.Equal(t, 64, product.Stock)
}
