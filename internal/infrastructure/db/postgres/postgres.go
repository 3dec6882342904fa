// Package postgres implements the persistence ports on PostgreSQL via GORM.
// Each repository maps between GORM models and domain types at the boundary
// so the core never sees database tags or join tables.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// Connect opens a pooled connection and verifies it with a ping.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve postgres sql db handle: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the schema and seeds the built-in roles. The
// seed is idempotent: existing roles are left untouched.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&roleModel{}, &userModel{}, &destinationModel{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	for _, name := range []string{domain.RoleUser, domain.RoleAdmin} {
		var count int64
		if err := db.Model(&roleModel{}).Where("UPPER(role_name) = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("check role %s: %w", name, err)
		}
		if count == 0 {
			if err := db.Create(&roleModel{Name: name}).Error; err != nil {
				return fmt.Errorf("seed role %s: %w", name, err)
			}
		}
	}
	return nil
}
