package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"specialroom-backend/config"
	"specialroom-backend/internal/model"
	"specialroom-backend/internal/store"
)

// Open selects the GORM dialector for the configured driver.
func Open(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Init initializes the database connection, runs migrations and, when
// enabled, seeds the mock bookings.
func Init(ctx context.Context, cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database migrated", zap.String("driver", cfg.Driver))

	if cfg.Seed {
		fixtures := model.MockBookings()
		if err := store.NewGormStore(db).Seed(ctx, fixtures); err != nil {
			return nil, err
		}
		log.Info("mock bookings seeded", zap.Int("count", len(fixtures)))
	}

	return db, nil
}

// Migrate creates or updates the booking table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Booking{}); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return nil
}
