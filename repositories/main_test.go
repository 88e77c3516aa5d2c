package repositories

import (
	"fmt"
	"os"
	"testing"

	"granja-app/controllers/idgen"
	"granja-app/database"
	"granja-app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	idgen.Init()
	os.Exit(m.Run())
}

// setupTestDB opens a private in-memory database per test, migrated and
// seeded with the singleton egg stock and an active price.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	database.SeedEggStock(db)
	database.SeedEggPrice(db)

	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Contact: "555-0001", IsActive: true}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedWorker(t *testing.T, db *gorm.DB, name, role string) models.Worker {
	t.Helper()
	worker := models.Worker{Name: name, Role: role, IsActive: true}
	require.NoError(t, db.Create(&worker).Error)
	return worker
}

func currentEggStock(t *testing.T, db *gorm.DB) models.EggStock {
	t.Helper()
	var stock models.EggStock
	require.NoError(t, db.First(&stock).Error)
	return stock
}

func countMovements(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.FinancialMovement{}).Count(&n).Error)
	return n
}
