package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
	"sanctuary-api/internal/query"
	"sanctuary-api/internal/service"
	"sanctuary-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	core *service.Service
}

// NewHandler creates a new HTTP handler
func NewHandler(core *service.Service) *Handler {
	return &Handler{core: core}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", h.listCategories)

		v1.GET("/articles", h.listArticles)
		v1.GET("/articles/:id", h.getArticle)
		v1.POST("/articles", h.createArticle)
		v1.PUT("/articles/:id", h.updateArticle)
		v1.DELETE("/articles/:id", h.deleteArticle)

		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)
		v1.POST("/products", h.createProduct)
		v1.PUT("/products/:id", h.updateProduct)
		v1.DELETE("/products/:id", h.deleteProduct)

		// slug lookups live under their own prefix; gin's tree rejects a
		// static segment alongside the :id wildcard
		v1.GET("/slugs/articles/:slug", h.getArticleBySlug)
		v1.GET("/slugs/products/:slug", h.getProductBySlug)

		v1.POST("/auth/login", h.login)
		v1.POST("/auth/logout", h.logout)
		v1.POST("/auth/refresh", h.refreshSession)
		v1.GET("/auth/profile", h.getProfile)

		v1.GET("/orders", h.listOrders)
		v1.POST("/orders", h.createOrder)
		v1.PATCH("/orders/:id/status", h.updateOrderStatus)
		v1.DELETE("/orders/:id", h.deleteOrder)

		v1.GET("/stats", h.getStats)
		v1.GET("/users", h.listUsers)

		v1.PUT("/simulator/latency", h.setLatency)
		v1.PUT("/simulator/error-rate", h.setErrorRate)
		v1.POST("/simulator/reset", h.reset)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.core.FetchCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (h *Handler) listArticles(c *gin.Context) {
	q := service.ArticleQuery{
		Params:     paginationParams(c),
		Search:     c.Query("search"),
		CategoryID: c.Query("categoryId"),
		Tag:        c.Query("tag"),
		Featured:   optionalBool(c, "featured"),
		SortBy:     c.Query("sortBy"),
	}

	page, err := h.core.FetchArticles(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) getArticle(c *gin.Context) {
	article, err := h.core.GetArticleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *Handler) getArticleBySlug(c *gin.Context) {
	article, err := h.core.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *Handler) createArticle(c *gin.Context) {
	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	article, err := h.core.CreateArticle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *Handler) updateArticle(c *gin.Context) {
	var update models.ArticleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	article, err := h.core.UpdateArticle(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *Handler) deleteArticle(c *gin.Context) {
	if err := h.core.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listProducts(c *gin.Context) {
	q := service.ProductQuery{
		Params:     paginationParams(c),
		Search:     c.Query("search"),
		CategoryID: c.Query("categoryId"),
		SortBy:     c.Query("sortBy"),
	}
	if featured := optionalBool(c, "featured"); featured != nil && *featured {
		q.Featured = true
	}
	if priceRange := optionalPriceRange(c); priceRange != nil {
		q.PriceRange = priceRange
	}

	page, err := h.core.FetchProducts(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.core.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) getProductBySlug(c *gin.Context) {
	product, err := h.core.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) createProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	product, err := h.core.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) updateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	product, err := h.core.UpdateProduct(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	if err := h.core.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.core.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.core.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) refreshSession(c *gin.Context) {
	resp, err := h.core.RefreshSession(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getProfile(c *gin.Context) {
	user, err := h.core.GetProfile(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) listOrders(c *gin.Context) {
	q := service.OrderQuery{
		Params: paginationParams(c),
		Status: c.Query("status"),
		UserID: c.Query("userId"),
	}

	page, err := h.core.FetchOrders(c.Request.Context(), q, bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) createOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.core.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=draft pending processing shipped completed cancelled"`
		Note   string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.core.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	if err := h.core.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.core.FetchStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.core.FetchUsers(c.Request.Context(), bearerToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (h *Handler) setLatency(c *gin.Context) {
	var req struct {
		MinMs int `json:"minMs" binding:"gte=0"`
		MaxMs int `json:"maxMs" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.core.SetLatency(time.Duration(req.MinMs)*time.Millisecond, time.Duration(req.MaxMs)*time.Millisecond)
	c.Status(http.StatusNoContent)
}

func (h *Handler) setErrorRate(c *gin.Context) {
	var req struct {
		Rate float64 `json:"rate" binding:"gte=0,lte=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.core.SetErrorRate(req.Rate)
	c.Status(http.StatusNoContent)
}

func (h *Handler) reset(c *gin.Context) {
	h.core.Reset()
	c.Status(http.StatusNoContent)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func paginationParams(c *gin.Context) query.Params {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	return query.Params{Page: page, PageSize: pageSize}
}

func optionalBool(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func optionalPriceRange(c *gin.Context) *[2]float64 {
	minRaw, maxRaw := c.Query("priceMin"), c.Query("priceMax")
	if minRaw == "" || maxRaw == "" {
		return nil
	}
	min, minErr := strconv.ParseFloat(minRaw, 64)
	max, maxErr := strconv.ParseFloat(maxRaw, 64)
	if minErr != nil || maxErr != nil {
		return nil
	}
	return &[2]float64{min, max}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

func respondError(c *gin.Context, err error) {
	if apiErr := apierr.As(err); apiErr != nil {
		c.JSON(apiErr.Status, gin.H{
			"error": apiErr.Message,
			"kind":  apiErr.Kind,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal error",
		"details": err.Error(),
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
