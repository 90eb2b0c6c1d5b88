package handler

import (
	"context"
	"time"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindInRange(ctx context.Context, dr ordering.DateRange) ([]ordering.Order, error) {
	args := m.Called(ctx, dr)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) LatestOrderDate(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

// MockMenuItemRepository is a mock implementation of MenuItemRepository
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) FindAll(ctx context.Context) ([]ordering.MenuItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ordering.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) FindByID(ctx context.Context, id int64) (*ordering.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.MenuItem), args.Error(1)
}

// MockSalesReportRepository is a mock implementation of SalesReportRepository
type MockSalesReportRepository struct {
	mock.Mock
}

func (m *MockSalesReportRepository) GetSalesSummary(ctx context.Context, f report.Filter) (*report.SalesSummary, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.SalesSummary), args.Error(1)
}

func (m *MockSalesReportRepository) GetPeriodSales(ctx context.Context, g report.Granularity, f report.Filter) ([]report.PeriodSales, error) {
	args := m.Called(ctx, g, f)
	return args.Get(0).([]report.PeriodSales), args.Error(1)
}

func (m *MockSalesReportRepository) GetSalesByFactor(ctx context.Context, d report.Dimension, f report.Filter) ([]report.FactorSales, error) {
	args := m.Called(ctx, d, f)
	return args.Get(0).([]report.FactorSales), args.Error(1)
}

func (m *MockSalesReportRepository) GetTopCategories(ctx context.Context, limit *int, f report.Filter) ([]report.CategorySales, error) {
	args := m.Called(ctx, limit, f)
	return args.Get(0).([]report.CategorySales), args.Error(1)
}

func (m *MockSalesReportRepository) GetWeatherTimeSlotAnalysis(ctx context.Context, f report.Filter) ([]report.WeatherTimeSlotSales, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]report.WeatherTimeSlotSales), args.Error(1)
}

// MockProductReportRepository is a mock implementation of ProductReportRepository
type MockProductReportRepository struct {
	mock.Mock
}

func (m *MockProductReportRepository) GetBestsellers(ctx context.Context, limit int, f report.Filter) ([]report.Bestseller, error) {
	args := m.Called(ctx, limit, f)
	return args.Get(0).([]report.Bestseller), args.Error(1)
}

func (m *MockProductReportRepository) GetPopularItemsByType(ctx context.Context, orderTypeID int64, limit int, f report.Filter) ([]report.PopularItem, error) {
	args := m.Called(ctx, orderTypeID, limit, f)
	return args.Get(0).([]report.PopularItem), args.Error(1)
}

func (m *MockProductReportRepository) GetDineInPopularByTimeSlot(ctx context.Context, f report.Filter) ([]report.TimeSlotPopularItem, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]report.TimeSlotPopularItem), args.Error(1)
}

func (m *MockProductReportRepository) GetDiscountAnalysis(ctx context.Context, f report.Filter) ([]report.DiscountSlotStats, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]report.DiscountSlotStats), args.Error(1)
}

func (m *MockProductReportRepository) ItemNamesByOrder(ctx context.Context, maxOrders int) ([][]string, error) {
	args := m.Called(ctx, maxOrders)
	return args.Get(0).([][]string), args.Error(1)
}
