package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hisashi-abk/cafe-analytics/internal/application/analytics"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
)

// SalesHandler handles the sales analysis API endpoints
type SalesHandler struct {
	BaseHandler
	sales *analytics.SalesService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(sales *analytics.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// RegisterRoutes registers sales analysis routes
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.GET("/sales_summary", h.SalesSummary)
		sales.GET("/category_sales", h.CategorySales)
		sales.GET("/sales_by_weather", h.SalesByWeather)
		sales.GET("/sales_by_gender", h.SalesByGender)
		sales.GET("/weather_timeslot_analysis", h.WeatherTimeSlotAnalysis)
	}
}

// SalesSummary returns the order aggregates for the window
func (h *SalesHandler) SalesSummary(c *gin.Context) {
	summary, err := h.sales.GetSalesSummary(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, summary)
}

// CategorySales returns sales of every category, best selling first
func (h *SalesHandler) CategorySales(c *gin.Context) {
	categories, err := h.sales.GetTopCategories(c.Request.Context(), nil, filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, categories)
}

// SalesByWeather returns sales grouped by weather condition
func (h *SalesHandler) SalesByWeather(c *gin.Context) {
	h.salesByFactor(c, report.DimensionWeather)
}

// SalesByGender returns sales grouped by customer gender
func (h *SalesHandler) SalesByGender(c *gin.Context) {
	h.salesByFactor(c, report.DimensionGender)
}

func (h *SalesHandler) salesByFactor(c *gin.Context, d report.Dimension) {
	factors, err := h.sales.GetSalesByFactor(c.Request.Context(), d, filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, factors)
}

// WeatherTimeSlotAnalysis returns the weather-by-time-slot cross
// analysis
func (h *SalesHandler) WeatherTimeSlotAnalysis(c *gin.Context) {
	cells, err := h.sales.GetWeatherTimeSlotAnalysis(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, cells)
}
