package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sanctuary-api/internal/service"
	"sanctuary-api/internal/session"
	"sanctuary-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	core := service.NewService(store.NewStore(), session.NewManager(), service.Options{
		Rand:  rand.New(rand.NewSource(1)),
		Sleep: func(time.Duration) {},
	})

	router := gin.New()
	NewHandler(core).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func loginToken(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListArticles(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/articles", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			TotalItems int `json:"totalItems"`
			Page       int `json:"page"`
			PageSize   int `json:"pageSize"`
		} `json:"meta"`
	}
	decode(t, rec, &page)

	assert.Equal(t, 6, page.Meta.TotalItems)
	assert.Equal(t, 1, page.Meta.Page)
	assert.Equal(t, 10, page.Meta.PageSize)
	assert.Len(t, page.Data, 6)
}

func TestListArticlesWithFilters(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/articles?featured=true&pageSize=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data []struct {
			ID         string `json:"id"`
			IsFeatured bool   `json:"isFeatured"`
		} `json:"data"`
		Meta struct {
			TotalItems int `json:"totalItems"`
			TotalPages int `json:"totalPages"`
		} `json:"meta"`
	}
	decode(t, rec, &page)

	assert.Equal(t, 3, page.Meta.TotalItems)
	assert.Equal(t, 2, page.Meta.TotalPages)
	require.Len(t, page.Data, 2)
	for _, article := range page.Data {
		assert.True(t, article.IsFeatured)
	}
}

func TestGetArticleNotFound(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/articles/non-existent", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "ARTICLE_NOT_FOUND", body.Kind)
	assert.Equal(t, "Article non-existent not found", body.Error)
}

func TestGetArticleBySlug(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/slugs/articles/golden-elixir-tea-ritual", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var article struct {
		ID string `json:"id"`
	}
	decode(t, rec, &article)
	assert.Equal(t, "art-golden-elixir-tea", article.ID)
}

func TestCreateArticleValidation(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/articles", gin.H{"title": "Missing everything"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/articles", gin.H{
		"title":    "Terrace Notes",
		"summary":  "Dew hour observations.",
		"content":  "Walk slowly.",
		"authorId": "user-master-li",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var article struct {
		Slug string `json:"slug"`
	}
	decode(t, rec, &article)
	assert.Equal(t, "terrace-notes", article.Slug)
}

func TestLoginAndProfile(t *testing.T) {
	router := newTestRouter()

	token := loginToken(t, router, "wei.ling@example.com", "lotuscloud")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var user struct {
		ID string `json:"id"`
	}
	decode(t, rec, &user)
	assert.Equal(t, "user-adept-wei", user.ID)
}

func TestLoginRejected(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "wei.ling@example.com",
		"password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Kind string `json:"kind"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Kind)
}

func TestOrdersScopedByBearerToken(t *testing.T) {
	router := newTestRouter()

	token := loginToken(t, router, "wei.ling@example.com", "lotuscloud")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/orders", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data []struct {
			UserID string `json:"userId"`
		} `json:"data"`
		Meta struct {
			TotalItems int `json:"totalItems"`
		} `json:"meta"`
	}
	decode(t, rec, &page)

	assert.Equal(t, 2, page.Meta.TotalItems)
	for _, order := range page.Data {
		assert.Equal(t, "user-adept-wei", order.UserID)
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", gin.H{
		"userId": "user-adept-wei",
		"items": []gin.H{
			{"productId": "prod-qi-tonic-elixir", "quantity": 2},
		},
		"shippingAddress": gin.H{
			"fullName": "Wei Ling",
			"line1":    "No. 12, Lotus Clinic Lane",
			"city":     "Chengdu",
			"country":  "China",
		},
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var order struct {
		Status      string  `json:"status"`
		TotalAmount float64 `json:"totalAmount"`
	}
	decode(t, rec, &order)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, 104.0, order.TotalAmount)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", gin.H{
		"userId":          "user-adept-wei",
		"items":           []gin.H{},
		"shippingAddress": gin.H{"fullName": "Wei Ling"},
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", gin.H{
		"userId": "user-adept-wei",
		"items": []gin.H{
			{"productId": "prod-lacquered-luopan", "quantity": 500},
		},
		"shippingAddress": gin.H{"fullName": "Wei Ling"},
	}, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Kind string `json:"kind"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Kind)
}

func TestUsersRequireAdmin(t *testing.T) {
	router := newTestRouter()

	member := loginToken(t, router, "mei.chen@example.com", "riverstone")
	rec := doJSON(t, router, http.MethodGet, "/api/v1/users", nil, member)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := loginToken(t, router, "abbot@wudangsanctuary.org", "celestialpine")
	rec = doJSON(t, router, http.MethodGet, "/api/v1/users", nil, admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/stats", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		TotalRevenue float64 `json:"totalRevenue"`
		TotalOrders  int     `json:"totalOrders"`
	}
	decode(t, rec, &stats)
	assert.Equal(t, 590.0, stats.TotalRevenue)
	assert.Equal(t, 3, stats.TotalOrders)
}

func TestSimulatorKnobs(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPut, "/api/v1/simulator/error-rate", gin.H{"rate": 1.0}, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/categories", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Kind string `json:"kind"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "SIMULATED_FAILURE", body.Kind)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/simulator/error-rate", gin.H{"rate": 0}, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/categories", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSimulatorReset(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/articles/art-azure-mists", nil, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/simulator/reset", nil, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/articles/art-azure-mists", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
