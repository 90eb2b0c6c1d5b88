package ordering

import (
	"encoding/json"
	"time"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/shared"
)

// Order is a completed POS transaction. It is the aggregate root for
// order items; orders are immutable once recorded, so the domain type
// carries the resolved reference names alongside the foreign keys.
//
// TotalPrice is the gross amount across all items before discount.
// Discount never exceeds TotalPrice.
type Order struct {
	ID            string      `json:"id"`
	Timestamp     time.Time   `json:"timestamp"`
	GenderID      int64       `json:"gender"`
	GenderName    string      `json:"gender_name"`
	OrderTypeID   int64       `json:"order_type"`
	OrderTypeName string      `json:"order_type_name"`
	WeatherID     int64       `json:"weather"`
	WeatherName   string      `json:"weather_name"`
	TimeSlotID    int64       `json:"time_slot"`
	TimeSlotName  string      `json:"time_slot_name"`
	TotalPrice    int64       `json:"total_price"`
	Discount      int64       `json:"discount"`
	Items         []OrderItem `json:"items"`
}

// OrderItem is a single line of an order. Price is the amount charged
// for this line, which may differ from the menu item's current price.
type OrderItem struct {
	ID           string `json:"id"`
	OrderID      string `json:"-"`
	MenuItemID   int64  `json:"menu_item"`
	MenuItemName string `json:"menu_item_name"`
	CategoryName string `json:"category_name"`
	Price        int64  `json:"price"`
}

// FinalPrice returns the amount actually paid after discount.
func (o *Order) FinalPrice() int64 {
	return o.TotalPrice - o.Discount
}

// MarshalJSON includes the computed final price in the payload.
func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		FinalPrice int64 `json:"final_price"`
	}{alias(o), o.FinalPrice()})
}

// IsTakeout reports whether the order was a takeout order.
func (o *Order) IsTakeout() bool {
	return o.OrderTypeID == OrderTypeTakeoutID
}

// Validate checks the monetary invariants of the order.
func (o *Order) Validate() error {
	if o.ID == "" {
		return shared.NewDomainError("INVALID_INPUT", "order id is required")
	}
	if o.TotalPrice < 0 {
		return shared.NewDomainError("INVALID_INPUT", "total_price cannot be negative")
	}
	if o.Discount < 0 {
		return shared.NewDomainError("INVALID_INPUT", "discount cannot be negative")
	}
	if o.Discount > o.TotalPrice {
		return shared.NewDomainError("INVALID_INPUT", "discount cannot exceed total_price")
	}
	return nil
}
