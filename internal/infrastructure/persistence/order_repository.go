package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/shared"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items and reference names
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Gender").
		Preload("OrderType").
		Preload("Weather").
		Preload("TimeSlot").
		Preload("Items.MenuItem.Category").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	order := model.ToDomain()
	return &order, nil
}

// FindInRange finds orders whose calendar date falls within the
// range, ordered by timestamp ascending
func (r *GormOrderRepository) FindInRange(ctx context.Context, dr ordering.DateRange) ([]ordering.Order, error) {
	var results []models.OrderModel
	query := r.db.WithContext(ctx).
		Preload("Gender").
		Preload("OrderType").
		Preload("Weather").
		Preload("TimeSlot").
		Preload("Items.MenuItem.Category")

	query = applyOrderDateRange(query, dr)

	if err := query.Order("timestamp ASC").Find(&results).Error; err != nil {
		return nil, err
	}

	orders := make([]ordering.Order, len(results))
	for i := range results {
		orders[i] = results[i].ToDomain()
	}
	return orders, nil
}

// LatestOrderDate returns the calendar date of the most recent order
func (r *GormOrderRepository) LatestOrderDate(ctx context.Context) (*time.Time, error) {
	var result struct {
		Latest *time.Time
	}
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("MAX(timestamp) as latest").
		Scan(&result).Error; err != nil {
		return nil, err
	}
	if result.Latest == nil {
		return nil, nil
	}
	d := time.Date(result.Latest.Year(), result.Latest.Month(), result.Latest.Day(), 0, 0, 0, 0, result.Latest.Location())
	return &d, nil
}

// applyOrderDateRange narrows a query on the orders table to the
// inclusive calendar-date window. Comparison is against the date part
// of the timestamp so bounds cover whole days.
func applyOrderDateRange(query *gorm.DB, dr ordering.DateRange) *gorm.DB {
	if dr.Start != nil {
		query = query.Where("timestamp >= ?", *dr.Start)
	}
	if dr.End != nil {
		query = query.Where("timestamp < ?", dr.End.AddDate(0, 0, 1))
	}
	return query
}
