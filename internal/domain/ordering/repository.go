package ordering

import (
	"context"
	"time"
)

// DateRange is an optional, inclusive calendar-date filter. A nil
// bound leaves that side open. Bounds compare against the calendar
// date of the order timestamp, not the full timestamp.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// OrderRepository provides access to recorded orders.
type OrderRepository interface {
	// FindByID returns the order with its items and resolved
	// reference names, or shared.ErrNotFound.
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindInRange returns orders whose calendar date falls within
	// the range, ordered by timestamp ascending, items included.
	FindInRange(ctx context.Context, r DateRange) ([]Order, error)

	// LatestOrderDate returns the calendar date of the most recent
	// order, or nil when no orders exist.
	LatestOrderDate(ctx context.Context) (*time.Time, error)
}

// MenuItemRepository provides access to the menu catalog.
type MenuItemRepository interface {
	FindAll(ctx context.Context) ([]MenuItem, error)
	FindByID(ctx context.Context, id int64) (*MenuItem, error)
}
