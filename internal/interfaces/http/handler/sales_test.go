package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hisashi-abk/cafe-analytics/internal/application/analytics"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSalesRouter(reports *MockSalesReportRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	salesSvc := analytics.NewSalesService(reports, new(MockOrderRepository), zap.NewNop())

	engine := gin.New()
	NewSalesHandler(salesSvc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestSalesSummaryEndpoint(t *testing.T) {
	reports := new(MockSalesReportRepository)
	reports.On("GetSalesSummary", mock.Anything, mock.Anything).Return(&report.SalesSummary{}, nil)
	engine := newSalesRouter(reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/sales_summary", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// An empty window yields nulls for every aggregate except the count.
	assert.JSONEq(t, `{"total_amount": null, "total_orders": 0, "avg_order_value": null, "total_discount": null, "net_sales": null}`, w.Body.String())
}

func TestCategorySalesReturnsAllCategories(t *testing.T) {
	reports := new(MockSalesReportRepository)
	categories := []report.CategorySales{
		{CategoryName: "ドリンク", TotalSales: 9000, ItemsSold: 25},
		{CategoryName: "フード", TotalSales: 4000, ItemsSold: 10},
	}
	reports.On("GetTopCategories", mock.Anything, (*int)(nil), mock.Anything).Return(categories, nil)
	engine := newSalesRouter(reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/category_sales", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"menu_item__category__name": "ドリンク", "total_sales": 9000, "items_sold": 25},
		{"menu_item__category__name": "フード", "total_sales": 4000, "items_sold": 10}
	]`, w.Body.String())
	reports.AssertExpectations(t)
}

func TestSalesByWeatherUsesWeatherKey(t *testing.T) {
	reports := new(MockSalesReportRepository)
	factors := []report.FactorSales{
		{Dimension: report.DimensionWeather, Name: "晴れ", TotalSales: 5000, TotalOrders: 12, AvgOrderValue: 416.67},
	}
	reports.On("GetSalesByFactor", mock.Anything, report.DimensionWeather, mock.Anything).Return(factors, nil)
	engine := newSalesRouter(reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/sales_by_weather", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"weather__name": "晴れ", "total_sales": 5000, "total_orders": 12, "avg_order_value": 416.67}]`, w.Body.String())
}

func TestSalesByGenderUsesGenderKey(t *testing.T) {
	reports := new(MockSalesReportRepository)
	factors := []report.FactorSales{
		{Dimension: report.DimensionGender, Name: "女性", TotalSales: 3000, TotalOrders: 8, AvgOrderValue: 375},
	}
	reports.On("GetSalesByFactor", mock.Anything, report.DimensionGender, mock.Anything).Return(factors, nil)
	engine := newSalesRouter(reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/sales_by_gender", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"gender__name":"女性"`)
}

func TestWeatherTimeSlotAnalysisEndpoint(t *testing.T) {
	reports := new(MockSalesReportRepository)
	cells := []report.WeatherTimeSlotSales{
		{Weather: "晴れ", TimeSlot: "モーニング", TotalSales: 2000, OrderCount: 5, AvgOrderValue: 400},
	}
	reports.On("GetWeatherTimeSlotAnalysis", mock.Anything, mock.Anything).Return(cells, nil)
	engine := newSalesRouter(reports)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/weather_timeslot_analysis?start_date=2024-04-01&end_date=2024-04-30", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"weather__name": "晴れ", "time_slot__name": "モーニング", "total_sales": 2000, "order_count": 5, "avg_order_value": 400}]`, w.Body.String())
}
