package sqlite

import (
	"storefront/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts a demo admin, a demo customer and sample products when the
// user table is empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&domain.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []domain.User{
		{Username: "admin", Email: "admin@example.com", PasswordHash: string(adminHash), IsAdmin: true},
		{Username: "demo_user", Email: "user@example.com", PasswordHash: string(userHash)},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	products := []domain.Product{
		{Name: "Bluetooth Headphones", Price: 49.99,
			Description: "Wireless over-ear Bluetooth headphones with noise isolation.",
			ImageURL:    "/static/uploads/headphones.jpg", Category: "Headphones", Stock: 25},
		{Name: "Portable Bluetooth Speaker", Price: 29.99,
			Description: "Water-resistant portable speaker with 8h battery.",
			ImageURL:    "/static/uploads/speaker.jpg", Category: "Speakers", Stock: 40},
		{Name: "Smart Watch", Price: 119.99,
			Description: "Fitness-focused smart watch with heart-rate monitor.",
			ImageURL:    "/static/uploads/smartwatch.jpg", Category: "Watches", Stock: 15},
		{Name: "USB-C Charger", Price: 15.50,
			Description: "Fast charging USB-C adapter, 30W.",
			ImageURL:    "/static/uploads/chargecable.jpg", Category: "Accessories", Stock: 100},
	}
	return db.Create(&products).Error
}
