package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSalesReportRepository implements SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// GetSalesSummary returns the order aggregates for the window. SQL
// SUM and AVG yield NULL over an empty set, which the nil pointer
// fields carry through to the payload unchanged.
func (r *GormSalesReportRepository) GetSalesSummary(ctx context.Context, f report.Filter) (*report.SalesSummary, error) {
	var result struct {
		TotalAmount   *int64
		TotalOrders   int64
		AvgOrderValue *float64
		TotalDiscount *int64
		NetSales      *int64
	}

	query := r.db.WithContext(ctx).Table("orders o").
		Select(`
			SUM(o.total_price) as total_amount,
			COUNT(o.id) as total_orders,
			AVG(o.total_price) as avg_order_value,
			SUM(o.discount) as total_discount,
			SUM(o.total_price - o.discount) as net_sales
		`)
	query = applyReportDateRange(query, "o.timestamp", f)

	if err := query.Scan(&result).Error; err != nil {
		return nil, err
	}

	return &report.SalesSummary{
		TotalAmount:   result.TotalAmount,
		TotalOrders:   result.TotalOrders,
		AvgOrderValue: result.AvgOrderValue,
		TotalDiscount: result.TotalDiscount,
		NetSales:      result.NetSales,
	}, nil
}

// GetPeriodSales returns the sales series bucketed by granularity.
// DATE_TRUNC('week', ...) starts buckets on Monday, matching the
// week convention used by the dashboards.
func (r *GormSalesReportRepository) GetPeriodSales(ctx context.Context, g report.Granularity, f report.Filter) ([]report.PeriodSales, error) {
	truncUnit := map[report.Granularity]string{
		report.GranularityDaily:   "day",
		report.GranularityWeekly:  "week",
		report.GranularityMonthly: "month",
	}[g]
	if truncUnit == "" {
		truncUnit = "day"
	}

	type periodResult struct {
		Period        time.Time
		TotalSales    int64
		TotalOrders   int64
		AvgOrderValue float64
		TotalDiscount int64
		NetSales      int64
	}

	var results []periodResult

	query := r.db.WithContext(ctx).Table("orders o").
		Select(fmt.Sprintf(`
			DATE_TRUNC('%s', o.timestamp)::date as period,
			SUM(o.total_price) as total_sales,
			COUNT(o.id) as total_orders,
			AVG(o.total_price) as avg_order_value,
			SUM(o.discount) as total_discount,
			SUM(o.total_price - o.discount) as net_sales
		`, truncUnit))
	query = applyReportDateRange(query, "o.timestamp", f)

	if err := query.Group("period").Order("period ASC").Scan(&results).Error; err != nil {
		return nil, err
	}

	series := make([]report.PeriodSales, len(results))
	for i, row := range results {
		series[i] = report.PeriodSales{
			Period:        row.Period.Format(report.DateLayout),
			TotalSales:    row.TotalSales,
			TotalOrders:   row.TotalOrders,
			AvgOrderValue: row.AvgOrderValue,
			TotalDiscount: row.TotalDiscount,
			NetSales:      row.NetSales,
		}
	}
	return series, nil
}

// factorJoins maps a grouping dimension to its reference table join.
var factorJoins = map[report.Dimension]string{
	report.DimensionWeather:   "JOIN weather_types f ON f.id = o.weather_id",
	report.DimensionGender:    "JOIN genders f ON f.id = o.gender_id",
	report.DimensionTimeSlot:  "JOIN time_slots f ON f.id = o.time_slot_id",
	report.DimensionOrderType: "JOIN order_types f ON f.id = o.order_type_id",
}

// GetSalesByFactor groups order sales by the dimension's display name
func (r *GormSalesReportRepository) GetSalesByFactor(ctx context.Context, d report.Dimension, f report.Filter) ([]report.FactorSales, error) {
	join, ok := factorJoins[d]
	if !ok {
		return nil, shared.ErrInvalidInput
	}

	type factorResult struct {
		Name          string
		TotalSales    int64
		TotalOrders   int64
		AvgOrderValue float64
	}

	var results []factorResult

	query := r.db.WithContext(ctx).Table("orders o").
		Select(`
			f.name as name,
			SUM(o.total_price) as total_sales,
			COUNT(o.id) as total_orders,
			AVG(o.total_price) as avg_order_value
		`).
		Joins(join)
	query = applyReportDateRange(query, "o.timestamp", f)

	if err := query.Group("f.name").Order("total_sales DESC").Scan(&results).Error; err != nil {
		return nil, err
	}

	rows := make([]report.FactorSales, len(results))
	for i, row := range results {
		rows[i] = report.FactorSales{
			Dimension:     d,
			Name:          row.Name,
			TotalSales:    row.TotalSales,
			TotalOrders:   row.TotalOrders,
			AvgOrderValue: row.AvgOrderValue,
		}
	}
	return rows, nil
}

// GetTopCategories returns item sales per category, best sellers first
func (r *GormSalesReportRepository) GetTopCategories(ctx context.Context, limit *int, f report.Filter) ([]report.CategorySales, error) {
	var results []report.CategorySales

	query := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			c.name as category_name,
			SUM(oi.price) as total_sales,
			COUNT(oi.id) as items_sold
		`).
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Joins("JOIN categories c ON c.id = mi.category_id").
		Joins("JOIN orders o ON o.id = oi.order_id")
	query = applyReportDateRange(query, "o.timestamp", f)
	query = query.Group("c.name").Order("total_sales DESC")

	if limit != nil {
		query = query.Limit(*limit)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetWeatherTimeSlotAnalysis returns the weather-by-time-slot cross analysis
func (r *GormSalesReportRepository) GetWeatherTimeSlotAnalysis(ctx context.Context, f report.Filter) ([]report.WeatherTimeSlotSales, error) {
	type crossResult struct {
		Weather       string
		TimeSlot      string
		TotalSales    int64
		OrderCount    int64
		AvgOrderValue float64
	}

	var results []crossResult

	query := r.db.WithContext(ctx).Table("orders o").
		Select(`
			w.name as weather,
			ts.name as time_slot,
			SUM(o.total_price) as total_sales,
			COUNT(o.id) as order_count,
			AVG(o.total_price) as avg_order_value
		`).
		Joins("JOIN weather_types w ON w.id = o.weather_id").
		Joins("JOIN time_slots ts ON ts.id = o.time_slot_id")
	query = applyReportDateRange(query, "o.timestamp", f)

	if err := query.Group("w.name, ts.name").Order("w.name ASC, ts.name ASC").Scan(&results).Error; err != nil {
		return nil, err
	}

	rows := make([]report.WeatherTimeSlotSales, len(results))
	for i, row := range results {
		rows[i] = report.WeatherTimeSlotSales{
			Weather:       row.Weather,
			TimeSlot:      row.TimeSlot,
			TotalSales:    row.TotalSales,
			OrderCount:    row.OrderCount,
			AvgOrderValue: row.AvgOrderValue,
		}
	}
	return rows, nil
}

// applyReportDateRange narrows a report query to the inclusive
// calendar-date window of the filter. Bounds compare against the date
// part of the timestamp column.
func applyReportDateRange(query *gorm.DB, column string, f report.Filter) *gorm.DB {
	if f.Start != nil {
		query = query.Where(column+" >= ?", *f.Start)
	}
	if f.End != nil {
		query = query.Where(column+" < ?", f.End.AddDate(0, 0, 1))
	}
	return query
}
