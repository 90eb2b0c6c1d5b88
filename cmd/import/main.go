package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hisashi-abk/cafe-analytics/internal/application/importer"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/config"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/logger"
	"github.com/hisashi-abk/cafe-analytics/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var dataDir string
	flag.StringVar(&dataDir, "data-dir", "", "directory holding the JSON export (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Cafe Analytics Data Import Tool\n\n")
		fmt.Fprintf(os.Stderr, "Loads the POS JSON export (master data, orders, order items)\n")
		fmt.Fprintf(os.Stderr, "into the database. Imports are idempotent.\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  import [-data-dir <path>]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if dataDir != "" {
		cfg.Import.DataDir = dataDir
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	svc := importer.NewService(db.DB, cfg.Import, log)
	result, err := svc.ImportAll(context.Background())
	if err != nil {
		log.Fatal("Import failed", zap.Error(err))
	}

	log.Info("Import finished",
		zap.String("data_dir", cfg.Import.DataDir),
		zap.Int("orders_created", result.OrdersCreated),
		zap.Int("order_items_created", result.OrderItemsCreated))
}
