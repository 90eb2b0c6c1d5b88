package report

import (
	"context"
	"encoding/json"
	"time"
)

// Filter is an optional inclusive calendar-date window applied to
// report queries. Nil bounds are open.
type Filter struct {
	Start *time.Time
	End   *time.Time
}

// Dimension names an order attribute that reports can group by.
type Dimension string

const (
	DimensionWeather   Dimension = "weather"
	DimensionGender    Dimension = "gender"
	DimensionTimeSlot  Dimension = "time_slot"
	DimensionOrderType Dimension = "order_type"
)

// Key returns the payload key used for the dimension's display name.
// The double-underscore form is the established wire contract.
func (d Dimension) Key() string {
	return string(d) + "__name"
}

// SalesSummary aggregates orders over a window. All sum and average
// fields are nil when the window contains no orders; TotalOrders is
// plain zero.
type SalesSummary struct {
	TotalAmount   *int64   `json:"total_amount"`
	TotalOrders   int64    `json:"total_orders"`
	AvgOrderValue *float64 `json:"avg_order_value"`
	TotalDiscount *int64   `json:"total_discount"`
	NetSales      *int64   `json:"net_sales"`
}

// PeriodSales is one bucket of a period-by-period sales series.
// Period is the bucket start date in DateLayout.
type PeriodSales struct {
	Period        string  `json:"period"`
	TotalSales    int64   `json:"total_sales"`
	TotalOrders   int64   `json:"total_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
	TotalDiscount int64   `json:"total_discount"`
	NetSales      int64   `json:"net_sales"`
}

// FactorSales aggregates sales per value of a grouping dimension.
type FactorSales struct {
	Dimension     Dimension `json:"-"`
	Name          string    `json:"-"`
	TotalSales    int64     `json:"total_sales"`
	TotalOrders   int64     `json:"total_orders"`
	AvgOrderValue float64   `json:"avg_order_value"`
}

// MarshalJSON keys the display name by the dimension it was grouped
// by, e.g. "weather__name" or "gender__name".
func (f FactorSales) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		f.Dimension.Key(): f.Name,
		"total_sales":     f.TotalSales,
		"total_orders":    f.TotalOrders,
		"avg_order_value": f.AvgOrderValue,
	})
}

// FactorCount is a simple occurrence count per value of a grouping
// dimension, used for distribution payloads.
type FactorCount struct {
	Dimension Dimension `json:"-"`
	Name      string    `json:"-"`
	Count     int64     `json:"count"`
}

func (f FactorCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		f.Dimension.Key(): f.Name,
		"count":           f.Count,
	})
}

// Demographics groups customer distribution payloads for dashboards.
type Demographics struct {
	GenderDistribution []FactorCount `json:"gender_distribution"`
}

// CategorySales aggregates item sales per menu category.
type CategorySales struct {
	CategoryName string `json:"menu_item__category__name"`
	TotalSales   int64  `json:"total_sales"`
	ItemsSold    int64  `json:"items_sold"`
}

// HourlySales aggregates orders by hour of day, 0 through 23. Hours
// without orders are omitted.
type HourlySales struct {
	Hour       int   `json:"hour"`
	TotalSales int64 `json:"total_sales"`
	OrderCount int64 `json:"order_count"`
}

// WeatherTimeSlotSales is one cell of the weather-by-time-slot cross
// analysis.
type WeatherTimeSlotSales struct {
	Weather       string  `json:"weather__name"`
	TimeSlot      string  `json:"time_slot__name"`
	TotalSales    int64   `json:"total_sales"`
	OrderCount    int64   `json:"order_count"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// SalesReportRepository defines the aggregation queries over orders.
type SalesReportRepository interface {
	// GetSalesSummary returns the order aggregates for the window.
	GetSalesSummary(ctx context.Context, f Filter) (*SalesSummary, error)

	// GetPeriodSales returns the sales series bucketed by the given
	// granularity, ordered by period ascending. Weekly buckets start
	// on Monday.
	GetPeriodSales(ctx context.Context, g Granularity, f Filter) ([]PeriodSales, error)

	// GetSalesByFactor groups order sales by the dimension's display
	// name, ordered by total sales descending.
	GetSalesByFactor(ctx context.Context, d Dimension, f Filter) ([]FactorSales, error)

	// GetTopCategories returns item sales per category ordered by
	// total sales descending. A nil limit returns all categories.
	GetTopCategories(ctx context.Context, limit *int, f Filter) ([]CategorySales, error)

	// GetWeatherTimeSlotAnalysis returns the weather-by-time-slot
	// cross analysis ordered by weather then time slot name.
	GetWeatherTimeSlotAnalysis(ctx context.Context, f Filter) ([]WeatherTimeSlotSales, error)
}
