package analytics

import (
	"context"
	"sort"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SalesService exposes the sales aggregation reports.
type SalesService struct {
	reports report.SalesReportRepository
	orders  ordering.OrderRepository
	logger  *zap.Logger
}

// NewSalesService creates a new SalesService
func NewSalesService(reports report.SalesReportRepository, orders ordering.OrderRepository, logger *zap.Logger) *SalesService {
	return &SalesService{
		reports: reports,
		orders:  orders,
		logger:  logger.Named("sales-service"),
	}
}

// GetSalesSummary returns the order aggregates for the window
func (s *SalesService) GetSalesSummary(ctx context.Context, f report.Filter) (*report.SalesSummary, error) {
	return s.reports.GetSalesSummary(ctx, f)
}

// GetPeriodSales returns the sales series for the given granularity
func (s *SalesService) GetPeriodSales(ctx context.Context, g report.Granularity, f report.Filter) ([]report.PeriodSales, error) {
	return s.reports.GetPeriodSales(ctx, g, f)
}

// GetSalesByFactor groups sales by an order dimension
func (s *SalesService) GetSalesByFactor(ctx context.Context, d report.Dimension, f report.Filter) ([]report.FactorSales, error) {
	return s.reports.GetSalesByFactor(ctx, d, f)
}

// GetTopCategories returns category sales rankings. A nil limit
// returns all categories.
func (s *SalesService) GetTopCategories(ctx context.Context, limit *int, f report.Filter) ([]report.CategorySales, error) {
	return s.reports.GetTopCategories(ctx, limit, f)
}

// GetWeatherTimeSlotAnalysis returns the weather-by-time-slot cross
// analysis
func (s *SalesService) GetWeatherTimeSlotAnalysis(ctx context.Context, f report.Filter) ([]report.WeatherTimeSlotSales, error) {
	return s.reports.GetWeatherTimeSlotAnalysis(ctx, f)
}

// TakeoutRate returns the takeout share of the given orders as a
// percentage. An empty collection yields zero.
func (s *SalesService) TakeoutRate(orders []ordering.Order) float64 {
	if len(orders) == 0 {
		return 0
	}

	var takeout int64
	for _, o := range orders {
		if o.IsTakeout() {
			takeout++
		}
	}

	rate := decimal.NewFromInt(takeout).
		Div(decimal.NewFromInt(int64(len(orders)))).
		Mul(decimal.NewFromInt(100))
	return rate.InexactFloat64()
}

// HourlySales buckets the given orders by hour of day. Hours without
// orders are omitted and buckets are sorted by hour ascending.
func (s *SalesService) HourlySales(orders []ordering.Order) []report.HourlySales {
	type bucket struct {
		sales int64
		count int64
	}
	buckets := make(map[int]*bucket)
	for _, o := range orders {
		hour := o.Timestamp.Hour()
		b, ok := buckets[hour]
		if !ok {
			b = &bucket{}
			buckets[hour] = b
		}
		b.sales += o.TotalPrice
		b.count++
	}

	result := make([]report.HourlySales, 0, len(buckets))
	for hour, b := range buckets {
		result = append(result, report.HourlySales{
			Hour:       hour,
			TotalSales: b.sales,
			OrderCount: b.count,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Hour < result[j].Hour })
	return result
}
