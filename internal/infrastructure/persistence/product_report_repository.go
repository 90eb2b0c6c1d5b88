package persistence

import (
	"context"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"gorm.io/gorm"
)

// GormProductReportRepository implements ProductReportRepository using GORM
type GormProductReportRepository struct {
	db *gorm.DB
}

// NewGormProductReportRepository creates a new GormProductReportRepository
func NewGormProductReportRepository(db *gorm.DB) *GormProductReportRepository {
	return &GormProductReportRepository{db: db}
}

// GetBestsellers returns the top menu items by times ordered
func (r *GormProductReportRepository) GetBestsellers(ctx context.Context, limit int, f report.Filter) ([]report.Bestseller, error) {
	type bestsellerResult struct {
		CategoryName  string
		Name          string
		Price         int64
		TotalQuantity int64
		TotalSales    int64
	}

	var results []bestsellerResult

	query := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			c.name as category_name,
			mi.name as name,
			mi.price as price,
			COUNT(oi.id) as total_quantity,
			SUM(oi.price) as total_sales
		`).
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Joins("JOIN categories c ON c.id = mi.category_id").
		Joins("JOIN orders o ON o.id = oi.order_id")
	query = applyReportDateRange(query, "o.timestamp", f)

	err := query.
		Group("c.name, mi.name, mi.price").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.Bestseller, len(results))
	for i, row := range results {
		rows[i] = report.Bestseller{
			CategoryName:  row.CategoryName,
			Name:          row.Name,
			Price:         row.Price,
			TotalQuantity: row.TotalQuantity,
			TotalSales:    row.TotalSales,
		}
	}
	return rows, nil
}

// GetPopularItemsByType returns the top menu items among orders of
// the given order type
func (r *GormProductReportRepository) GetPopularItemsByType(ctx context.Context, orderTypeID int64, limit int, f report.Filter) ([]report.PopularItem, error) {
	type popularResult struct {
		Name         string
		CategoryName string
		Price        int64
		TotalOrders  int64
		TotalSales   int64
	}

	var results []popularResult

	query := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			mi.name as name,
			c.name as category_name,
			mi.price as price,
			COUNT(oi.id) as total_orders,
			SUM(oi.price) as total_sales
		`).
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Joins("JOIN categories c ON c.id = mi.category_id").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.order_type_id = ?", orderTypeID)
	query = applyReportDateRange(query, "o.timestamp", f)

	err := query.
		Group("mi.name, c.name, mi.price").
		Order("total_orders DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.PopularItem, len(results))
	for i, row := range results {
		rows[i] = report.PopularItem{
			Name:         row.Name,
			CategoryName: row.CategoryName,
			Price:        row.Price,
			TotalOrders:  row.TotalOrders,
			TotalSales:   row.TotalSales,
		}
	}
	return rows, nil
}

// GetDineInPopularByTimeSlot returns dine-in item rankings ordered by
// time slot name, then popularity. Bucketing per slot happens in the
// service layer.
func (r *GormProductReportRepository) GetDineInPopularByTimeSlot(ctx context.Context, f report.Filter) ([]report.TimeSlotPopularItem, error) {
	type slotResult struct {
		TimeSlot     string
		CategoryName string
		Name         string
		Price        int64
		TotalOrders  int64
		TotalSales   int64
	}

	var results []slotResult

	query := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			ts.name as time_slot,
			c.name as category_name,
			mi.name as name,
			mi.price as price,
			COUNT(oi.id) as total_orders,
			SUM(oi.price) as total_sales
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN time_slots ts ON ts.id = o.time_slot_id").
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Joins("JOIN categories c ON c.id = mi.category_id").
		Where("o.order_type_id = ?", ordering.OrderTypeDineInID)
	query = applyReportDateRange(query, "o.timestamp", f)

	err := query.
		Group("ts.name, c.name, mi.name, mi.price").
		Order("ts.name ASC, total_orders DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.TimeSlotPopularItem, len(results))
	for i, row := range results {
		rows[i] = report.TimeSlotPopularItem{
			TimeSlot:     row.TimeSlot,
			CategoryName: row.CategoryName,
			Name:         row.Name,
			Price:        row.Price,
			TotalOrders:  row.TotalOrders,
			TotalSales:   row.TotalSales,
		}
	}
	return rows, nil
}

// GetDiscountAnalysis returns per-slot aggregates over discounted orders
func (r *GormProductReportRepository) GetDiscountAnalysis(ctx context.Context, f report.Filter) ([]report.DiscountSlotStats, error) {
	type discountResult struct {
		TimeSlot                 string
		TotalOrders              int64
		TotalDiscount            int64
		AvgDiscount              float64
		TotalSalesBeforeDiscount int64
		TotalSalesAfterDiscount  int64
	}

	var results []discountResult

	query := r.db.WithContext(ctx).Table("orders o").
		Select(`
			ts.name as time_slot,
			COUNT(o.id) as total_orders,
			SUM(o.discount) as total_discount,
			AVG(o.discount) as avg_discount,
			SUM(o.total_price) as total_sales_before_discount,
			SUM(o.total_price - o.discount) as total_sales_after_discount
		`).
		Joins("JOIN time_slots ts ON ts.id = o.time_slot_id").
		Where("o.discount <> 0")
	query = applyReportDateRange(query, "o.timestamp", f)

	err := query.
		Group("ts.name").
		Order("ts.name ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	rows := make([]report.DiscountSlotStats, len(results))
	for i, row := range results {
		rows[i] = report.DiscountSlotStats{
			TimeSlot:                 row.TimeSlot,
			TotalOrders:              row.TotalOrders,
			TotalDiscount:            row.TotalDiscount,
			AvgDiscount:              row.AvgDiscount,
			TotalSalesBeforeDiscount: row.TotalSalesBeforeDiscount,
			TotalSalesAfterDiscount:  row.TotalSalesAfterDiscount,
		}
	}
	return rows, nil
}

// ItemNamesByOrder returns the menu item names of each order holding
// at least two items. Rows come back ordered by order ID so the per-
// order grouping below is a single pass; maxOrders caps the scan.
func (r *GormProductReportRepository) ItemNamesByOrder(ctx context.Context, maxOrders int) ([][]string, error) {
	type nameResult struct {
		OrderID string
		Name    string
	}

	var results []nameResult

	err := r.db.WithContext(ctx).Table("order_items oi").
		Select("oi.order_id as order_id, mi.name as name").
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Where(`oi.order_id IN (
			SELECT order_id FROM order_items GROUP BY order_id HAVING COUNT(id) >= 2
		)`).
		Order("oi.order_id ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	var orders [][]string
	var current []string
	currentID := ""
	for _, row := range results {
		if row.OrderID != currentID {
			if current != nil {
				orders = append(orders, current)
				if len(orders) >= maxOrders {
					return orders, nil
				}
			}
			currentID = row.OrderID
			current = nil
		}
		current = append(current, row.Name)
	}
	if current != nil && len(orders) < maxOrders {
		orders = append(orders, current)
	}
	return orders, nil
}
