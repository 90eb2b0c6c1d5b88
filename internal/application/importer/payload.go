package importer

// ReferenceRecord is one row of a reference table in the master data
// file.
type ReferenceRecord struct {
	ID   int64  `json:"id"   validate:"required"`
	Name string `json:"name" validate:"required"`
}

// MenuItemRecord is one menu item row in the master data file.
type MenuItemRecord struct {
	ID         int64  `json:"id"          validate:"required"`
	Name       string `json:"name"        validate:"required"`
	Price      int64  `json:"price"       validate:"gte=0"`
	CategoryID int64  `json:"category_id" validate:"required"`
}

// MasterData is the shape of the master data file. Reference rows
// must be imported before the orders that point at them.
type MasterData struct {
	Categories   []ReferenceRecord `json:"categories"    validate:"dive"`
	Genders      []ReferenceRecord `json:"genders"       validate:"dive"`
	OrderTypes   []ReferenceRecord `json:"order_types"   validate:"dive"`
	WeatherTypes []ReferenceRecord `json:"weather_types" validate:"dive"`
	TimeSlots    []ReferenceRecord `json:"time_slots"    validate:"dive"`
	MenuItems    []MenuItemRecord  `json:"menu_items"    validate:"dive"`
}

// OrderRecord is one order row in the orders file. Timestamps use the
// "2006-01-02 15:04:05" layout.
type OrderRecord struct {
	ID          string `json:"id"            validate:"required"`
	Timestamp   string `json:"timestamp"     validate:"required"`
	GenderID    int64  `json:"gender_id"     validate:"required"`
	OrderTypeID int64  `json:"order_type_id" validate:"required"`
	WeatherID   int64  `json:"weather_id"    validate:"required"`
	TimeSlotID  int64  `json:"time_slot_id"  validate:"required"`
	TotalPrice  int64  `json:"total_price"   validate:"gte=0"`
	Discount    int64  `json:"discount"      validate:"gte=0"`
}

// OrderItemRecord is one order item row in the order items file.
type OrderItemRecord struct {
	ID         string `json:"id"           validate:"required"`
	OrderID    string `json:"order_id"     validate:"required"`
	MenuItemID int64  `json:"menu_item_id" validate:"required"`
	Price      int64  `json:"price"        validate:"gte=0"`
}
