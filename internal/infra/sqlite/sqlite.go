package sqlite

import (
	"storefront/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the storefront database and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Notification{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
