package report

import "context"

// Bestseller ranks a menu item by the number of times it was ordered.
type Bestseller struct {
	CategoryName  string `json:"menu_item__category__name"`
	Name          string `json:"menu_item__name"`
	Price         int64  `json:"menu_item__price"`
	TotalQuantity int64  `json:"total_quantity"`
	TotalSales    int64  `json:"total_sales"`
}

// PopularItem ranks a menu item within a single order type.
type PopularItem struct {
	Name         string `json:"menu_item__name"`
	CategoryName string `json:"menu_item__category__name"`
	Price        int64  `json:"menu_item__price"`
	TotalOrders  int64  `json:"total_orders"`
	TotalSales   int64  `json:"total_sales"`
}

// TimeSlotPopularItem is one ranking row of the dine-in popularity
// report. TimeSlot is the bucket key and is not serialized with the
// row itself.
type TimeSlotPopularItem struct {
	TimeSlot     string `json:"-"`
	CategoryName string `json:"category"`
	Name         string `json:"menu_item"`
	Price        int64  `json:"menu_item__price"`
	TotalOrders  int64  `json:"total_orders"`
	TotalSales   int64  `json:"total_sales"`
}

// DiscountSlotStats aggregates discounted orders per time slot.
// Orders with a zero discount are excluded from these figures.
type DiscountSlotStats struct {
	TimeSlot                 string  `json:"time_slot__name"`
	TotalOrders              int64   `json:"total_orders"`
	TotalDiscount            int64   `json:"total_discount"`
	AvgDiscount              float64 `json:"avg_discount"`
	TotalSalesBeforeDiscount int64   `json:"total_sales_before_discount"`
	TotalSalesAfterDiscount  int64   `json:"total_sales_after_discount"`
}

// ItemCombo is a pair of menu items frequently ordered together.
type ItemCombo struct {
	Items           [2]string `json:"items"`
	OccurrenceCount int64     `json:"occurrence_count"`
}

// ProductReportRepository defines the aggregation queries over order
// items.
type ProductReportRepository interface {
	// GetBestsellers returns the top menu items by times ordered.
	GetBestsellers(ctx context.Context, limit int, f Filter) ([]Bestseller, error)

	// GetPopularItemsByType returns the top menu items among orders
	// of the given order type.
	GetPopularItemsByType(ctx context.Context, orderTypeID int64, limit int, f Filter) ([]PopularItem, error)

	// GetDineInPopularByTimeSlot returns dine-in item rankings
	// ordered by time slot name ascending, then total orders
	// descending. Callers bucket and cap the rows per slot.
	GetDineInPopularByTimeSlot(ctx context.Context, f Filter) ([]TimeSlotPopularItem, error)

	// GetDiscountAnalysis returns per-slot discount aggregates over
	// orders with a non-zero discount, ordered by slot name.
	GetDiscountAnalysis(ctx context.Context, f Filter) ([]DiscountSlotStats, error)

	// ItemNamesByOrder returns the menu item names of each order
	// holding at least two items, capped at maxOrders orders.
	ItemNamesByOrder(ctx context.Context, maxOrders int) ([][]string, error)
}
