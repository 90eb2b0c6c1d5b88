package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hisashi-abk/cafe-analytics/internal/application/analytics"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/config"
)

// ProductHandler handles the product analysis API endpoints
type ProductHandler struct {
	BaseHandler
	products *analytics.ProductService
	cfg      config.AnalyticsConfig
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *analytics.ProductService, cfg config.AnalyticsConfig) *ProductHandler {
	return &ProductHandler{products: products, cfg: cfg}
}

// RegisterRoutes registers product analysis routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("/bestsellers", h.Bestsellers)
		products.GET("/discount_analysis", h.DiscountAnalysis)
		products.GET("/dine_in_popular_items", h.DineInPopularItems)
		products.GET("/dine_in_popular", h.DineInPopular)
		products.GET("/takeout_popular", h.TakeoutPopular)
		products.GET("/combo_analysis", h.ComboAnalysis)
	}
}

// Bestsellers returns the top menu items by quantity sold
func (h *ProductHandler) Bestsellers(c *gin.Context) {
	limit := intQuery(c, "limit", h.cfg.DefaultLimit)
	bestsellers, err := h.products.GetBestsellers(c.Request.Context(), limit, filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, bestsellers)
}

// DiscountAnalysis returns per-slot aggregates over discounted orders
func (h *ProductHandler) DiscountAnalysis(c *gin.Context) {
	stats, err := h.products.GetDiscountAnalysis(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, stats)
}

// DineInPopularItems returns the dine-in item rankings bucketed by
// time slot
func (h *ProductHandler) DineInPopularItems(c *gin.Context) {
	buckets, err := h.products.GetDineInPopularByTimeSlot(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, buckets)
}

// DineInPopular returns the most popular dine-in menu items
func (h *ProductHandler) DineInPopular(c *gin.Context) {
	h.popularByType(c, ordering.OrderTypeDineInID)
}

// TakeoutPopular returns the most popular takeout menu items
func (h *ProductHandler) TakeoutPopular(c *gin.Context) {
	h.popularByType(c, ordering.OrderTypeTakeoutID)
}

func (h *ProductHandler) popularByType(c *gin.Context, orderTypeID int64) {
	limit := intQuery(c, "limit", h.cfg.DefaultLimit)
	items, err := h.products.GetPopularItemsByType(c.Request.Context(), orderTypeID, limit, filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, items)
}

// ComboAnalysis returns pairs of menu items frequently ordered
// together
func (h *ProductHandler) ComboAnalysis(c *gin.Context) {
	minOccurrence := intQuery(c, "min_occurrence", h.cfg.MinComboOccurrence)
	limit := intQuery(c, "limit", h.cfg.DefaultLimit)
	combos, err := h.products.GetComboAnalysis(c.Request.Context(), minOccurrence, limit)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, combos)
}
