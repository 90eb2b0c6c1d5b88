package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/config"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TimestampLayout is the order timestamp format of the POS export.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	// ErrFileNotFound is returned when a data file is missing.
	ErrFileNotFound = errors.New("data file not found")

	// ErrInvalidJSON is returned when a data file cannot be decoded.
	ErrInvalidJSON = errors.New("data file is not valid JSON")
)

// Result summarizes an import run. Existing rows are left untouched,
// so only newly created rows are counted.
type Result struct {
	OrdersCreated     int `json:"orders_created"`
	OrderItemsCreated int `json:"order_items_created"`
}

// Service loads the POS JSON export into the database. Imports are
// idempotent and run in a single transaction.
type Service struct {
	db       *gorm.DB
	cfg      config.ImportConfig
	validate *validator.Validate
	logger   *zap.Logger
}

// NewService creates a new import Service
func NewService(db *gorm.DB, cfg config.ImportConfig, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger.Named("importer"),
	}
}

// ImportAll imports the master data, orders, and order items files
// from the configured data directory. All three files import in one
// transaction, so a failure leaves the database unchanged.
func (s *Service) ImportAll(ctx context.Context) (*Result, error) {
	var master MasterData
	if err := s.readFile(s.cfg.MasterFile, &master); err != nil {
		return nil, err
	}

	var orders []OrderRecord
	if err := s.readFile(s.cfg.OrdersFile, &orders); err != nil {
		return nil, err
	}

	var items []OrderItemRecord
	if err := s.readFile(s.cfg.OrderItemsFile, &items); err != nil {
		return nil, err
	}

	result := &Result{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.importMasterData(tx, &master); err != nil {
			return err
		}

		created, err := s.importOrders(tx, orders)
		if err != nil {
			return err
		}
		result.OrdersCreated = created

		created, err = s.importOrderItems(tx, items)
		if err != nil {
			return err
		}
		result.OrderItemsCreated = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("import completed",
		zap.Int("orders_created", result.OrdersCreated),
		zap.Int("order_items_created", result.OrderItemsCreated))
	return result, nil
}

func (s *Service) readFile(name string, dest interface{}) error {
	path := filepath.Join(s.cfg.DataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}
	return nil
}

func (s *Service) importMasterData(tx *gorm.DB, master *MasterData) error {
	if err := s.validate.Struct(master); err != nil {
		return fmt.Errorf("invalid master data: %w", err)
	}

	for _, r := range master.Categories {
		var m models.CategoryModel
		err := tx.Where(models.CategoryModel{ID: r.ID}).
			Attrs(models.CategoryModel{Name: r.Name}).
			FirstOrCreate(&m).Error
		if err != nil {
			return fmt.Errorf("failed to import category %d: %w", r.ID, err)
		}
	}
	for _, r := range master.Genders {
		var m models.GenderModel
		err := tx.Where(models.GenderModel{ID: r.ID}).
			Attrs(models.GenderModel{Name: r.Name}).
			FirstOrCreate(&m).Error
		if err != nil {
			return fmt.Errorf("failed to import gender %d: %w", r.ID, err)
		}
	}
	for _, r := range master.OrderTypes {
		var m models.OrderTypeModel
		err := tx.Where(models.OrderTypeModel{ID: r.ID}).
			Attrs(models.OrderTypeModel{Name: r.Name}).
			FirstOrCreate(&m).Error
		if err != nil {
			return fmt.Errorf("failed to import order type %d: %w", r.ID, err)
		}
	}
	for _, r := range master.WeatherTypes {
		var m models.WeatherTypeModel
		err := tx.Where(models.WeatherTypeModel{ID: r.ID}).
			Attrs(models.WeatherTypeModel{Name: r.Name}).
			FirstOrCreate(&m).Error
		if err != nil {
			return fmt.Errorf("failed to import weather type %d: %w", r.ID, err)
		}
	}
	for _, r := range master.TimeSlots {
		var m models.TimeSlotModel
		err := tx.Where(models.TimeSlotModel{ID: r.ID}).
			Attrs(models.TimeSlotModel{Name: r.Name}).
			FirstOrCreate(&m).Error
		if err != nil {
			return fmt.Errorf("failed to import time slot %d: %w", r.ID, err)
		}
	}
	for _, r := range master.MenuItems {
		var m models.MenuItemModel
		err := tx.Where(models.MenuItemModel{ID: r.ID}).
			Attrs(models.MenuItemModel{Name: r.Name, Price: r.Price, CategoryID: r.CategoryID}).
			FirstOrCreate(&m).Error
		if err != nil {
			return fmt.Errorf("failed to import menu item %d: %w", r.ID, err)
		}
	}
	return nil
}

func (s *Service) importOrders(tx *gorm.DB, orders []OrderRecord) (int, error) {
	created := 0
	for _, r := range orders {
		if err := s.validate.Struct(r); err != nil {
			return created, fmt.Errorf("invalid order %s: %w", r.ID, err)
		}
		if r.Discount > r.TotalPrice {
			return created, fmt.Errorf("invalid order %s: discount %d exceeds total price %d", r.ID, r.Discount, r.TotalPrice)
		}

		timestamp, err := time.Parse(TimestampLayout, r.Timestamp)
		if err != nil {
			return created, fmt.Errorf("invalid order %s: bad timestamp %q", r.ID, r.Timestamp)
		}

		var m models.OrderModel
		result := tx.Where(models.OrderModel{ID: r.ID}).
			Attrs(models.OrderModel{
				Timestamp:   timestamp,
				GenderID:    r.GenderID,
				OrderTypeID: r.OrderTypeID,
				WeatherID:   r.WeatherID,
				TimeSlotID:  r.TimeSlotID,
				TotalPrice:  r.TotalPrice,
				Discount:    r.Discount,
			}).
			FirstOrCreate(&m)
		if result.Error != nil {
			return created, fmt.Errorf("failed to import order %s: %w", r.ID, result.Error)
		}
		if result.RowsAffected > 0 {
			created++
		}
	}
	return created, nil
}

func (s *Service) importOrderItems(tx *gorm.DB, items []OrderItemRecord) (int, error) {
	created := 0
	for _, r := range items {
		if err := s.validate.Struct(r); err != nil {
			return created, fmt.Errorf("invalid order item %s: %w", r.ID, err)
		}

		var m models.OrderItemModel
		result := tx.Where(models.OrderItemModel{ID: r.ID}).
			Attrs(models.OrderItemModel{
				OrderID:    r.OrderID,
				MenuItemID: r.MenuItemID,
				Price:      r.Price,
			}).
			FirstOrCreate(&m)
		if result.Error != nil {
			return created, fmt.Errorf("failed to import order item %s: %w", r.ID, result.Error)
		}
		if result.RowsAffected > 0 {
			created++
		}
	}
	return created, nil
}
