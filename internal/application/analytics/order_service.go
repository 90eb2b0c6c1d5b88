package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderService exposes order lookups and the collection-based order
// statistics that feed the dashboards.
type OrderService struct {
	orders ordering.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orders ordering.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		logger: logger.Named("order-service"),
	}
}

// GetOrder returns a single order with items and reference names
func (s *OrderService) GetOrder(ctx context.Context, id string) (*ordering.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// GetOrdersInPeriod returns the orders of the inclusive date window,
// oldest first
func (s *OrderService) GetOrdersInPeriod(ctx context.Context, start, end time.Time) ([]ordering.Order, error) {
	return s.orders.FindInRange(ctx, ordering.DateRange{Start: &start, End: &end})
}

// GetOrders returns orders matching the optional date filter
func (s *OrderService) GetOrders(ctx context.Context, dr ordering.DateRange) ([]ordering.Order, error) {
	return s.orders.FindInRange(ctx, dr)
}

// ResolveTargetDate resolves the anchor date for a dashboard request.
// An explicit date must parse; without one the date of the newest
// order is used, falling back to today when no orders exist.
func (s *OrderService) ResolveTargetDate(ctx context.Context, dateStr string) (time.Time, error) {
	if dateStr != "" {
		target, err := report.ParseDate(dateStr)
		if err != nil {
			return time.Time{}, shared.ErrInvalidDateFormat
		}
		return target, nil
	}

	latest, err := s.orders.LatestOrderDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if latest != nil {
		return *latest, nil
	}

	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
}

// CustomerDemographics computes the customer distribution of the
// given orders.
func (s *OrderService) CustomerDemographics(orders []ordering.Order) report.Demographics {
	counts := make(map[string]int64)
	for _, o := range orders {
		counts[o.GenderName]++
	}

	distribution := make([]report.FactorCount, 0, len(counts))
	for name, count := range counts {
		distribution = append(distribution, report.FactorCount{
			Dimension: report.DimensionGender,
			Name:      name,
			Count:     count,
		})
	}
	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Name < distribution[j].Name
	})

	return report.Demographics{GenderDistribution: distribution}
}

// WeatherDistribution counts the given orders per weather condition,
// most frequent first.
func (s *OrderService) WeatherDistribution(orders []ordering.Order) []report.FactorCount {
	counts := make(map[string]int64)
	for _, o := range orders {
		counts[o.WeatherName]++
	}

	distribution := make([]report.FactorCount, 0, len(counts))
	for name, count := range counts {
		distribution = append(distribution, report.FactorCount{
			Dimension: report.DimensionWeather,
			Name:      name,
			Count:     count,
		})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Name < distribution[j].Name
	})

	return distribution
}
