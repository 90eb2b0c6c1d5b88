package persistence

import (
	"context"
	"errors"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/shared"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// FindAll returns the full menu catalog with category names
func (r *GormMenuItemRepository) FindAll(ctx context.Context) ([]ordering.MenuItem, error) {
	var results []models.MenuItemModel
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	items := make([]ordering.MenuItem, len(results))
	for i := range results {
		items[i] = results[i].ToDomain()
	}
	return items, nil
}

// FindByID finds a menu item by its ID
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id int64) (*ordering.MenuItem, error) {
	var model models.MenuItemModel
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	item := model.ToDomain()
	return &item, nil
}
