package ordering

// Reference data for orders. These tables are small, append-rarely
// lookup sets loaded from the master data file.

// Gender is a customer gender attribute attached to an order.
type Gender struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Weather describes the weather condition recorded at order time.
type Weather struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TimeSlot is a named slice of the business day (morning, lunch, ...).
type TimeSlot struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrderType distinguishes dine-in from takeout orders.
type OrderType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Well-known order type IDs. Analytics filters match on these stable
// IDs rather than on display names, which are locale-dependent.
const (
	OrderTypeDineInID  int64 = 1
	OrderTypeTakeoutID int64 = 2
)

// Category groups menu items (coffee, dessert, ...).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MenuItem is a sellable item on the menu. Price is in the smallest
// currency unit (yen), so plain integers are exact.
type MenuItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	CategoryID   int64  `json:"category"`
	CategoryName string `json:"category_name"`
}
