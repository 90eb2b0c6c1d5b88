package analytics

import (
	"context"
	"time"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/config"
	"go.uber.org/zap"
)

// DailyDashboard is the composed report for a single business day.
type DailyDashboard struct {
	Date                 string                 `json:"date"`
	SalesSummary         *report.SalesSummary   `json:"sales_summary"`
	Orders               []ordering.Order       `json:"orders"`
	TakeoutRate          float64                `json:"takeout_rate"`
	PopularItems         []report.CategorySales `json:"popular_items"`
	CustomerCount        int64                  `json:"customer_count"`
	AvgOrderValue        *float64               `json:"avg_order_value"`
	TotalDiscount        *int64                 `json:"total_discount"`
	HourlySales          []report.HourlySales   `json:"hourly_sales"`
	CustomerDemographics report.Demographics    `json:"customer_demographics"`
}

// WeeklyDashboard is the composed report for a Monday-based week.
type WeeklyDashboard struct {
	WeekStart            string                 `json:"week_start"`
	WeekEnd              string                 `json:"week_end"`
	SalesSummary         *report.SalesSummary   `json:"sales_summary"`
	WeatherDistribution  []report.FactorCount   `json:"weather_distribution"`
	Orders               []ordering.Order       `json:"orders"`
	TakeoutRate          float64                `json:"takeout_rate"`
	PopularItems         []report.CategorySales `json:"popular_items"`
	CustomerCount        int64                  `json:"customer_count"`
	AvgOrderValue        *float64               `json:"avg_order_value"`
	TotalDiscount        *int64                 `json:"total_discount"`
	DailySalesBreakdown  []report.PeriodSales   `json:"daily_sales_breakdown"`
	CustomerDemographics report.Demographics    `json:"customer_demographics"`
}

// MonthlyDashboard is the composed report for a calendar month.
type MonthlyDashboard struct {
	MonthStart           string                 `json:"month_start"`
	MonthEnd             string                 `json:"month_end"`
	SalesSummary         *report.SalesSummary   `json:"sales_summary"`
	WeatherDistribution  []report.FactorCount   `json:"weather_distribution"`
	Orders               []ordering.Order       `json:"orders"`
	TakeoutRate          float64                `json:"takeout_rate"`
	PopularItems         []report.CategorySales `json:"popular_items"`
	CustomerCount        int64                  `json:"customer_count"`
	AvgOrderValue        *float64               `json:"avg_order_value"`
	TotalDiscount        *int64                 `json:"total_discount"`
	WeeklySalesBreakdown []report.PeriodSales   `json:"weekly_sales_breakdown"`
	CustomerDemographics report.Demographics    `json:"customer_demographics"`
}

// DashboardService composes the daily, weekly, and monthly dashboard
// payloads from the order and sales services.
type DashboardService struct {
	orders *OrderService
	sales  *SalesService
	cfg    config.AnalyticsConfig
	logger *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(orders *OrderService, sales *SalesService, cfg config.AnalyticsConfig, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		orders: orders,
		sales:  sales,
		cfg:    cfg,
		logger: logger.Named("dashboard-service"),
	}
}

// GetDailyDashboard builds the dashboard for the given date.
func (s *DashboardService) GetDailyDashboard(ctx context.Context, target time.Time) (*DailyDashboard, error) {
	start, end := report.DayBounds(target)
	orders, summary, popular, err := s.loadCommon(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &DailyDashboard{
		Date:                 target.Format(report.DateLayout),
		SalesSummary:         summary,
		Orders:               orders,
		TakeoutRate:          s.sales.TakeoutRate(orders),
		PopularItems:         popular,
		CustomerCount:        summary.TotalOrders,
		AvgOrderValue:        summary.AvgOrderValue,
		TotalDiscount:        summary.TotalDiscount,
		HourlySales:          s.sales.HourlySales(orders),
		CustomerDemographics: s.orders.CustomerDemographics(orders),
	}, nil
}

// GetWeeklyDashboard builds the dashboard for the week containing the
// given date.
func (s *DashboardService) GetWeeklyDashboard(ctx context.Context, target time.Time) (*WeeklyDashboard, error) {
	start, end := report.WeekBounds(target)
	orders, summary, popular, err := s.loadCommon(ctx, start, end)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.sales.GetPeriodSales(ctx, report.GranularityDaily, report.Filter{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	return &WeeklyDashboard{
		WeekStart:            start.Format(report.DateLayout),
		WeekEnd:              end.Format(report.DateLayout),
		SalesSummary:         summary,
		WeatherDistribution:  s.orders.WeatherDistribution(orders),
		Orders:               orders,
		TakeoutRate:          s.sales.TakeoutRate(orders),
		PopularItems:         popular,
		CustomerCount:        summary.TotalOrders,
		AvgOrderValue:        summary.AvgOrderValue,
		TotalDiscount:        summary.TotalDiscount,
		DailySalesBreakdown:  breakdown,
		CustomerDemographics: s.orders.CustomerDemographics(orders),
	}, nil
}

// GetMonthlyDashboard builds the dashboard for the month containing
// the given date.
func (s *DashboardService) GetMonthlyDashboard(ctx context.Context, target time.Time) (*MonthlyDashboard, error) {
	start, end := report.MonthBounds(target)
	orders, summary, popular, err := s.loadCommon(ctx, start, end)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.sales.GetPeriodSales(ctx, report.GranularityWeekly, report.Filter{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	return &MonthlyDashboard{
		MonthStart:           start.Format(report.DateLayout),
		MonthEnd:             end.Format(report.DateLayout),
		SalesSummary:         summary,
		WeatherDistribution:  s.orders.WeatherDistribution(orders),
		Orders:               orders,
		TakeoutRate:          s.sales.TakeoutRate(orders),
		PopularItems:         popular,
		CustomerCount:        summary.TotalOrders,
		AvgOrderValue:        summary.AvgOrderValue,
		TotalDiscount:        summary.TotalDiscount,
		WeeklySalesBreakdown: breakdown,
		CustomerDemographics: s.orders.CustomerDemographics(orders),
	}, nil
}

func (s *DashboardService) loadCommon(ctx context.Context, start, end time.Time) ([]ordering.Order, *report.SalesSummary, []report.CategorySales, error) {
	orders, err := s.orders.GetOrdersInPeriod(ctx, start, end)
	if err != nil {
		return nil, nil, nil, err
	}

	filter := report.Filter{Start: &start, End: &end}
	summary, err := s.sales.GetSalesSummary(ctx, filter)
	if err != nil {
		return nil, nil, nil, err
	}

	topN := s.cfg.DashboardTopN
	popular, err := s.sales.GetTopCategories(ctx, &topN, filter)
	if err != nil {
		return nil, nil, nil, err
	}

	return orders, summary, popular, nil
}
