// database/migrate.go
package database

import (
	"granja-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Worker{},
		&models.ProductionBatch{},
		&models.EggStock{},
		&models.StockAdjustment{},
		&models.FlockPopulation{},
		&models.FeedConsumption{},
		&models.EggPrice{},
		&models.Order{},
		&models.Dispatch{},
		&models.Supply{},
		&models.SupplyStock{},
		&models.SupplyMovement{},
		&models.WorkerPayment{},
		&models.FinancialMovement{},
	)
}
