package catalog

import (
	"log"

	"github.com/wirix/market-sfu/models"
	"gorm.io/gorm"
)

// Seed fills an empty product table with the fallback dataset so a
// fresh deployment has something to sell. No-op when products exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("🌱 Seeding products...")
	products := FallbackProducts()
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("✅ Created %d products", len(products))
	return nil
}
