package models

import (
	"time"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
)

// OrderModel is the GORM model for orders. Order IDs come from the
// POS export, so the primary key is the exported string ID.
type OrderModel struct {
	ID          string            `gorm:"type:varchar(50);primaryKey"`
	Timestamp   time.Time         `gorm:"not null;index"`
	GenderID    int64             `gorm:"not null;index"`
	Gender      *GenderModel      `gorm:"foreignKey:GenderID;constraint:OnDelete:RESTRICT"`
	OrderTypeID int64             `gorm:"not null;index"`
	OrderType   *OrderTypeModel   `gorm:"foreignKey:OrderTypeID;constraint:OnDelete:RESTRICT"`
	WeatherID   int64             `gorm:"not null;index"`
	Weather     *WeatherTypeModel `gorm:"foreignKey:WeatherID;constraint:OnDelete:RESTRICT"`
	TimeSlotID  int64             `gorm:"not null;index"`
	TimeSlot    *TimeSlotModel    `gorm:"foreignKey:TimeSlotID;constraint:OnDelete:RESTRICT"`
	TotalPrice  int64             `gorm:"not null;check:total_price >= 0"`
	Discount    int64             `gorm:"not null;check:discount >= 0"`
	Items       []OrderItemModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the model to a domain order. Reference names are
// filled only for loaded associations.
func (m *OrderModel) ToDomain() ordering.Order {
	order := ordering.Order{
		ID:          m.ID,
		Timestamp:   m.Timestamp,
		GenderID:    m.GenderID,
		OrderTypeID: m.OrderTypeID,
		WeatherID:   m.WeatherID,
		TimeSlotID:  m.TimeSlotID,
		TotalPrice:  m.TotalPrice,
		Discount:    m.Discount,
	}
	if m.Gender != nil {
		order.GenderName = m.Gender.Name
	}
	if m.OrderType != nil {
		order.OrderTypeName = m.OrderType.Name
	}
	if m.Weather != nil {
		order.WeatherName = m.Weather.Name
	}
	if m.TimeSlot != nil {
		order.TimeSlotName = m.TimeSlot.Name
	}
	order.Items = make([]ordering.OrderItem, len(m.Items))
	for i := range m.Items {
		order.Items[i] = m.Items[i].ToDomain()
	}
	return order
}

// OrderItemModel is the GORM model for order items
type OrderItemModel struct {
	ID         string         `gorm:"type:varchar(50);primaryKey"`
	OrderID    string         `gorm:"type:varchar(50);not null;index"`
	MenuItemID int64          `gorm:"not null;index"`
	MenuItem   *MenuItemModel `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT"`
	Price      int64          `gorm:"not null;check:price >= 0"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the model to a domain order item
func (m *OrderItemModel) ToDomain() ordering.OrderItem {
	item := ordering.OrderItem{
		ID:         m.ID,
		OrderID:    m.OrderID,
		MenuItemID: m.MenuItemID,
		Price:      m.Price,
	}
	if m.MenuItem != nil {
		item.MenuItemName = m.MenuItem.Name
		if m.MenuItem.Category != nil {
			item.CategoryName = m.MenuItem.Category.Name
		}
	}
	return item
}
