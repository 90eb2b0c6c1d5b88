package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hisashi-abk/cafe-analytics/internal/application/analytics"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAnalyticsConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		DefaultLimit:       10,
		DashboardTopN:      5,
		TimeSlotTopN:       5,
		MinComboOccurrence: 2,
		ComboMaxOrders:     10000,
	}
}

func newDashboardRouter(orders *MockOrderRepository, reports *MockSalesReportRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	cfg := testAnalyticsConfig()
	orderSvc := analytics.NewOrderService(orders, logger)
	salesSvc := analytics.NewSalesService(reports, orders, logger)
	dashboardSvc := analytics.NewDashboardService(orderSvc, salesSvc, cfg, logger)

	engine := gin.New()
	NewDashboardHandler(dashboardSvc, orderSvc, salesSvc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestDailyDashboardInvalidDate(t *testing.T) {
	engine := newDashboardRouter(new(MockOrderRepository), new(MockSalesReportRepository))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/daily_dashboard?date=not-a-date", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid date format"}`, w.Body.String())
}

func TestDailyDashboard(t *testing.T) {
	orders := new(MockOrderRepository)
	reports := new(MockSalesReportRepository)

	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	orders.On("FindInRange", mock.Anything, mock.Anything).Return([]ordering.Order{
		{ID: "ORD-001", Timestamp: day.Add(9 * time.Hour), OrderTypeID: ordering.OrderTypeTakeoutID, GenderName: "女性", TotalPrice: 700},
	}, nil)
	reports.On("GetSalesSummary", mock.Anything, mock.Anything).Return(&report.SalesSummary{TotalOrders: 1}, nil)
	reports.On("GetTopCategories", mock.Anything, mock.Anything, mock.Anything).Return([]report.CategorySales{}, nil)

	engine := newDashboardRouter(orders, reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/daily_dashboard?date=2024-04-01", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, `"2024-04-01"`, string(payload["date"]))
	assert.Contains(t, payload, "sales_summary")
	assert.Contains(t, payload, "hourly_sales")
	assert.Contains(t, payload, "customer_demographics")
	assert.NotContains(t, payload, "weather_distribution")
	assert.Equal(t, "100", string(payload["takeout_rate"]))
}

func TestWeeklyDashboardUsesLatestOrderDate(t *testing.T) {
	orders := new(MockOrderRepository)
	reports := new(MockSalesReportRepository)

	latest := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	orders.On("LatestOrderDate", mock.Anything).Return(&latest, nil)
	orders.On("FindInRange", mock.Anything, mock.Anything).Return([]ordering.Order{}, nil)
	reports.On("GetSalesSummary", mock.Anything, mock.Anything).Return(&report.SalesSummary{}, nil)
	reports.On("GetTopCategories", mock.Anything, mock.Anything, mock.Anything).Return([]report.CategorySales{}, nil)
	reports.On("GetPeriodSales", mock.Anything, report.GranularityDaily, mock.Anything).Return([]report.PeriodSales{}, nil)

	engine := newDashboardRouter(orders, reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/weekly_dashboard", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	// April 5 2024 is a Friday; its week starts on April 1.
	assert.Equal(t, `"2024-04-01"`, string(payload["week_start"]))
	assert.Equal(t, `"2024-04-07"`, string(payload["week_end"]))
	orders.AssertCalled(t, "LatestOrderDate", mock.Anything)
}

func TestDailySalesDropsMalformedBounds(t *testing.T) {
	orders := new(MockOrderRepository)
	reports := new(MockSalesReportRepository)
	reports.On("GetPeriodSales", mock.Anything, report.GranularityDaily, report.Filter{}).
		Return([]report.PeriodSales{}, nil)

	engine := newDashboardRouter(orders, reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/daily_sales?start_date=garbage", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	reports.AssertExpectations(t)
}

func TestMonthlySales(t *testing.T) {
	orders := new(MockOrderRepository)
	reports := new(MockSalesReportRepository)

	series := []report.PeriodSales{{Period: "2024-04-01", TotalSales: 12000, TotalOrders: 30, AvgOrderValue: 400, NetSales: 12000}}
	reports.On("GetPeriodSales", mock.Anything, report.GranularityMonthly, mock.Anything).Return(series, nil)

	engine := newDashboardRouter(orders, reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard/monthly_sales?start_date=2024-04-01&end_date=2024-06-30", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"period": "2024-04-01", "total_sales": 12000, "total_orders": 30, "avg_order_value": 400, "total_discount": 0, "net_sales": 12000}]`, w.Body.String())
}
