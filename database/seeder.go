// database/seeder.go
package database

import (
	"log"
	"time"

	"granja-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedEggStock(db)
	SeedEggPrice(db)
	SeedUserMaster(db)
}

// SeedEggStock creates the singleton stock row with zeroed counts. All
// later changes go through the repositories.
func SeedEggStock(db *gorm.DB) {
	var existing models.EggStock
	if err := db.First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			now := time.Now()
			stock := models.EggStock{
				Date: now.Format("2006-01-02"),
				Time: now.Format("15:04:05"),
			}
			if err := db.Create(&stock).Error; err != nil {
				log.Fatalf("Failed to seed egg stock: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

// SeedEggPrice creates one active placeholder price so the sales screens
// always have a current price to show.
func SeedEggPrice(db *gorm.DB) {
	var existing models.EggPrice
	if err := db.First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			price := models.EggPrice{
				EffectiveDate: time.Now().Format("2006-01-02"),
				PriceC:        300,
				PriceB:        350,
				PriceA:        400,
				PriceAA:       450,
				PriceAAA:      500,
				PriceJumbo:    600,
				Active:        true,
			}
			if err := db.Create(&price).Error; err != nil {
				log.Fatalf("Failed to seed egg price: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("Failed to hash password: %v", err)
			}
			user := models.User{
				Username: "admin",
				Password: string(hashed),
				Name:     "Administrator",
			}
			if err := db.Create(&user).Error; err != nil {
				log.Fatalf("Failed to seed user: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}
