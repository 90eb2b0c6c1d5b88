package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hisashi-abk/cafe-analytics/internal/application/analytics"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
)

// DashboardHandler handles the dashboard API endpoints
type DashboardHandler struct {
	BaseHandler
	dashboards *analytics.DashboardService
	orders     *analytics.OrderService
	sales      *analytics.SalesService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboards *analytics.DashboardService, orders *analytics.OrderService, sales *analytics.SalesService) *DashboardHandler {
	return &DashboardHandler{
		dashboards: dashboards,
		orders:     orders,
		sales:      sales,
	}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/daily_dashboard", h.DailyDashboard)
		dashboard.GET("/weekly_dashboard", h.WeeklyDashboard)
		dashboard.GET("/monthly_dashboard", h.MonthlyDashboard)
		dashboard.GET("/daily_sales", h.DailySales)
		dashboard.GET("/weekly_sales", h.WeeklySales)
		dashboard.GET("/monthly_sales", h.MonthlySales)
	}
}

// DailyDashboard returns the dashboard for a single day. Without a
// date parameter the day of the newest order is used.
func (h *DashboardHandler) DailyDashboard(c *gin.Context) {
	target, err := h.orders.ResolveTargetDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.DomainError(c, err)
		return
	}

	dashboard, err := h.dashboards.GetDailyDashboard(c.Request.Context(), target)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, dashboard)
}

// WeeklyDashboard returns the dashboard for the week containing the
// target date
func (h *DashboardHandler) WeeklyDashboard(c *gin.Context) {
	target, err := h.orders.ResolveTargetDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.DomainError(c, err)
		return
	}

	dashboard, err := h.dashboards.GetWeeklyDashboard(c.Request.Context(), target)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, dashboard)
}

// MonthlyDashboard returns the dashboard for the month containing the
// target date
func (h *DashboardHandler) MonthlyDashboard(c *gin.Context) {
	target, err := h.orders.ResolveTargetDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.DomainError(c, err)
		return
	}

	dashboard, err := h.dashboards.GetMonthlyDashboard(c.Request.Context(), target)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, dashboard)
}

// DailySales returns the daily sales series
func (h *DashboardHandler) DailySales(c *gin.Context) {
	h.periodSales(c, report.GranularityDaily)
}

// WeeklySales returns the weekly sales series
func (h *DashboardHandler) WeeklySales(c *gin.Context) {
	h.periodSales(c, report.GranularityWeekly)
}

// MonthlySales returns the monthly sales series
func (h *DashboardHandler) MonthlySales(c *gin.Context) {
	h.periodSales(c, report.GranularityMonthly)
}

func (h *DashboardHandler) periodSales(c *gin.Context, g report.Granularity) {
	series, err := h.sales.GetPeriodSales(c.Request.Context(), g, filterFromQuery(c))
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.OK(c, series)
}

// filterFromQuery builds the report filter from the start_date and
// end_date query parameters. Malformed bounds are dropped rather than
// rejected.
func filterFromQuery(c *gin.Context) report.Filter {
	return report.Filter{
		Start: report.ParseOptionalDate(c.Query("start_date")),
		End:   report.ParseOptionalDate(c.Query("end_date")),
	}
}
