package models

import "github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"

// Reference tables are keyed by the integer IDs carried in the
// dataset files, so primary keys are assigned explicitly rather than
// auto-incremented.

// CategoryModel is the GORM model for menu categories
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to a domain category
func (m *CategoryModel) ToDomain() ordering.Category {
	return ordering.Category{ID: m.ID, Name: m.Name}
}

// GenderModel is the GORM model for customer genders
type GenderModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(10);not null"`
}

func (GenderModel) TableName() string {
	return "genders"
}

func (m *GenderModel) ToDomain() ordering.Gender {
	return ordering.Gender{ID: m.ID, Name: m.Name}
}

// OrderTypeModel is the GORM model for order types
type OrderTypeModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(20);not null"`
}

func (OrderTypeModel) TableName() string {
	return "order_types"
}

func (m *OrderTypeModel) ToDomain() ordering.OrderType {
	return ordering.OrderType{ID: m.ID, Name: m.Name}
}

// WeatherTypeModel is the GORM model for weather types
type WeatherTypeModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(20);not null"`
}

func (WeatherTypeModel) TableName() string {
	return "weather_types"
}

func (m *WeatherTypeModel) ToDomain() ordering.Weather {
	return ordering.Weather{ID: m.ID, Name: m.Name}
}

// TimeSlotModel is the GORM model for time slots
type TimeSlotModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(20);not null"`
}

func (TimeSlotModel) TableName() string {
	return "time_slots"
}

func (m *TimeSlotModel) ToDomain() ordering.TimeSlot {
	return ordering.TimeSlot{ID: m.ID, Name: m.Name}
}

// MenuItemModel is the GORM model for menu items
type MenuItemModel struct {
	ID         int64          `gorm:"primaryKey"`
	Name       string         `gorm:"type:varchar(100);not null"`
	Price      int64          `gorm:"not null;check:price >= 0"`
	CategoryID int64          `gorm:"not null;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (MenuItemModel) TableName() string {
	return "menu_items"
}

// ToDomain converts the model to a domain menu item. The category
// name is filled only when the association was loaded.
func (m *MenuItemModel) ToDomain() ordering.MenuItem {
	item := ordering.MenuItem{
		ID:         m.ID,
		Name:       m.Name,
		Price:      m.Price,
		CategoryID: m.CategoryID,
	}
	if m.Category != nil {
		item.CategoryName = m.Category.Name
	}
	return item
}
