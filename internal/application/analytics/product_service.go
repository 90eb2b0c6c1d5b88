package analytics

import (
	"context"
	"sort"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/ordering"
	"github.com/hisashi-abk/cafe-analytics/internal/domain/report"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ProductService exposes the menu item and combo reports.
type ProductService struct {
	reports   report.ProductReportRepository
	menuItems ordering.MenuItemRepository
	cfg       config.AnalyticsConfig
	logger    *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(reports report.ProductReportRepository, menuItems ordering.MenuItemRepository, cfg config.AnalyticsConfig, logger *zap.Logger) *ProductService {
	return &ProductService{
		reports:   reports,
		menuItems: menuItems,
		cfg:       cfg,
		logger:    logger.Named("product-service"),
	}
}

// GetMenuItems returns the full menu with category names
func (s *ProductService) GetMenuItems(ctx context.Context) ([]ordering.MenuItem, error) {
	return s.menuItems.FindAll(ctx)
}

// GetMenuItem returns a single menu item
func (s *ProductService) GetMenuItem(ctx context.Context, id int64) (*ordering.MenuItem, error) {
	return s.menuItems.FindByID(ctx, id)
}

// GetBestsellers returns the top menu items by quantity sold
func (s *ProductService) GetBestsellers(ctx context.Context, limit int, f report.Filter) ([]report.Bestseller, error) {
	return s.reports.GetBestsellers(ctx, limit, f)
}

// GetPopularItemsByType returns the top items among orders of one
// order type
func (s *ProductService) GetPopularItemsByType(ctx context.Context, orderTypeID int64, limit int, f report.Filter) ([]report.PopularItem, error) {
	return s.reports.GetPopularItemsByType(ctx, orderTypeID, limit, f)
}

// GetDineInPopularByTimeSlot buckets the dine-in rankings by time
// slot, keeping the top rows per slot.
func (s *ProductService) GetDineInPopularByTimeSlot(ctx context.Context, f report.Filter) (map[string][]report.TimeSlotPopularItem, error) {
	rows, err := s.reports.GetDineInPopularByTimeSlot(ctx, f)
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by slot then total orders descending, so
	// appending in order preserves each slot's ranking.
	buckets := make(map[string][]report.TimeSlotPopularItem)
	for _, row := range rows {
		if len(buckets[row.TimeSlot]) >= s.cfg.TimeSlotTopN {
			continue
		}
		buckets[row.TimeSlot] = append(buckets[row.TimeSlot], row)
	}
	return buckets, nil
}

// GetDiscountAnalysis returns the per-slot discount aggregates
func (s *ProductService) GetDiscountAnalysis(ctx context.Context, f report.Filter) ([]report.DiscountSlotStats, error) {
	return s.reports.GetDiscountAnalysis(ctx, f)
}

// GetComboAnalysis finds pairs of distinct menu items ordered
// together at least minOccurrence times, most frequent first. A pair
// counts toward an order only when the order holds exactly those two
// item rows. Zero or negative arguments fall back to the configured
// defaults.
func (s *ProductService) GetComboAnalysis(ctx context.Context, minOccurrence, limit int) ([]report.ItemCombo, error) {
	if minOccurrence <= 0 {
		minOccurrence = s.cfg.MinComboOccurrence
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	orders, err := s.reports.ItemNamesByOrder(ctx, s.cfg.ComboMaxOrders)
	if err != nil {
		return nil, err
	}

	type nameCounts map[string]int64
	counts := make([]nameCounts, len(orders))
	pairs := make(map[[2]string]struct{})
	for i, names := range orders {
		c := make(nameCounts, len(names))
		for _, n := range names {
			c[n]++
		}
		counts[i] = c

		for a := range c {
			for b := range c {
				if a >= b {
					continue
				}
				pairs[[2]string{a, b}] = struct{}{}
			}
		}
	}

	combos := make([]report.ItemCombo, 0, len(pairs))
	for pair := range pairs {
		var occurrences int64
		for _, c := range counts {
			if c[pair[0]]+c[pair[1]] == 2 {
				occurrences++
			}
		}
		if occurrences < int64(minOccurrence) {
			continue
		}
		combos = append(combos, report.ItemCombo{Items: pair, OccurrenceCount: occurrences})
	}

	sort.Slice(combos, func(i, j int) bool {
		if combos[i].OccurrenceCount != combos[j].OccurrenceCount {
			return combos[i].OccurrenceCount > combos[j].OccurrenceCount
		}
		if combos[i].Items[0] != combos[j].Items[0] {
			return combos[i].Items[0] < combos[j].Items[0]
		}
		return combos[i].Items[1] < combos[j].Items[1]
	})
	if len(combos) > limit {
		combos = combos[:limit]
	}
	return combos, nil
}
