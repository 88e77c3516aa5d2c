package repositories

import (
	"testing"

	"granja-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPurchasePostsExpenseAndStock(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSupplyRepository(db)

	supply := models.Supply{
		Name:         "Layer feed 20kg",
		Category:     models.SupplyCategoryFeed,
		Quantity:     10,
		Unit:         "bags",
		UnitCost:     52000,
		PurchaseDate: "2026-08-03",
		TotalCost:    1, // must be recomputed
	}
	require.NoError(t, repo.RecordPurchase(&supply))

	assert.Equal(t, 520000.0, supply.TotalCost)

	var movement models.FinancialMovement
	require.NoError(t, db.Where("ref_table = ? AND ref_id = ?", models.RefTableSupplies, supply.ID).
		First(&movement).Error)
	assert.Equal(t, models.MovementExpense, movement.Type)
	assert.Equal(t, "Purchase of Feed", movement.Category)
	assert.Equal(t, 520000.0, movement.Amount)

	var stock models.SupplyStock
	require.NoError(t, db.Where("supply_name = ?", supply.Name).First(&stock).Error)
	assert.Equal(t, 10.0, stock.Quantity)
	assert.Equal(t, models.SupplyCategoryFeed, stock.Category)

	var entries []models.SupplyMovement
	require.NoError(t, db.Where("supply_stock_id = ?", stock.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, models.SupplyMovementIn, entries[0].Kind)
}

func TestRepeatPurchaseAccumulatesSameStockRow(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSupplyRepository(db)

	first := models.Supply{
		Name: "Layer feed 20kg", Category: models.SupplyCategoryFeed,
		Quantity: 10, Unit: "bags", UnitCost: 52000, PurchaseDate: "2026-08-03",
	}
	require.NoError(t, repo.RecordPurchase(&first))

	var stock models.SupplyStock
	require.NoError(t, db.Where("supply_name = ?", first.Name).First(&stock).Error)
	require.NoError(t, repo.SetMinQuantity(stock.ID, 5))

	second := models.Supply{
		Name: "Layer feed 20kg", Category: models.SupplyCategoryFeed,
		Quantity: 8, Unit: "bags", UnitCost: 53000, PurchaseDate: "2026-08-10",
	}
	require.NoError(t, repo.RecordPurchase(&second))

	var rows []models.SupplyStock
	require.NoError(t, db.Where("supply_name = ?", first.Name).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 18.0, rows[0].Quantity)
	assert.Equal(t, 5.0, rows[0].MinQuantity)
}

func TestRecordPurchaseValidation(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSupplyRepository(db)

	err := repo.RecordPurchase(&models.Supply{
		Name: "Layer feed", Category: models.SupplyCategoryFeed,
		Quantity: 0, Unit: "bags", PurchaseDate: "2026-08-03",
	})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = repo.RecordPurchase(&models.Supply{
		Name: "Mystery item", Category: "Snacks",
		Quantity: 1, Unit: "units", PurchaseDate: "2026-08-03",
	})
	require.ErrorIs(t, err, ErrInvalidCategory)

	assert.Zero(t, countMovements(t, db))
}

func TestRecordConsumptionDeductsAndLogs(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSupplyRepository(db)

	purchase := models.Supply{
		Name: "Layer feed 20kg", Category: models.SupplyCategoryFeed,
		Quantity: 10, Unit: "bags", UnitCost: 52000, PurchaseDate: "2026-08-03",
	}
	require.NoError(t, repo.RecordPurchase(&purchase))

	var stock models.SupplyStock
	require.NoError(t, db.Where("supply_name = ?", purchase.Name).First(&stock).Error)

	require.NoError(t, repo.RecordConsumption(stock.ID, 3, "daily feeding"))

	require.NoError(t, db.First(&stock, stock.ID).Error)
	assert.Equal(t, 7.0, stock.Quantity)

	var out models.SupplyMovement
	require.NoError(t, db.Where("supply_stock_id = ? AND kind = ?", stock.ID, models.SupplyMovementOut).
		First(&out).Error)
	assert.Equal(t, 3.0, out.Quantity)
	assert.Equal(t, "daily feeding", out.Reason)

	require.ErrorIs(t, repo.RecordConsumption(stock.ID, 0, "nothing"), ErrInvalidQuantity)
	require.ErrorIs(t, repo.RecordConsumption(999, 1, "ghost"), ErrSupplyNotFound)
}

func TestLowStockThreshold(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSupplyRepository(db)

	require.NoError(t, repo.RecordPurchase(&models.Supply{
		Name: "Layer feed 20kg", Category: models.SupplyCategoryFeed,
		Quantity: 10, Unit: "bags", UnitCost: 52000, PurchaseDate: "2026-08-03",
	}))
	require.NoError(t, repo.RecordPurchase(&models.Supply{
		Name: "Calcium supplement", Category: models.SupplyCategoryMedicine,
		Quantity: 2, Unit: "units", UnitCost: 15000, PurchaseDate: "2026-08-03",
	}))

	var calcium models.SupplyStock
	require.NoError(t, db.Where("supply_name = ?", "Calcium supplement").First(&calcium).Error)
	require.NoError(t, repo.SetMinQuantity(calcium.ID, 3))

	low, err := repo.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Calcium supplement", low[0].SupplyName)

	rows, err := repo.StockList()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		if row.SupplyName == "Calcium supplement" {
			assert.True(t, row.LowStock)
		} else {
			assert.False(t, row.LowStock)
		}
	}

	require.ErrorIs(t, repo.SetMinQuantity(999, 1), ErrSupplyNotFound)
}

func TestPurchasesByCategory(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSupplyRepository(db)

	require.NoError(t, repo.RecordPurchase(&models.Supply{
		Name: "Layer feed 20kg", Category: models.SupplyCategoryFeed,
		Quantity: 10, Unit: "bags", UnitCost: 52000, PurchaseDate: "2026-08-03",
	}))
	require.NoError(t, repo.RecordPurchase(&models.Supply{
		Name: "Grower feed 20kg", Category: models.SupplyCategoryFeed,
		Quantity: 5, Unit: "bags", UnitCost: 48000, PurchaseDate: "2026-08-05",
	}))
	require.NoError(t, repo.RecordPurchase(&models.Supply{
		Name: "Egg crates", Category: models.SupplyCategoryCrates,
		Quantity: 100, Unit: "units", UnitCost: 500, PurchaseDate: "2026-08-05",
	}))

	rows, err := repo.PurchasesByCategory("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.SupplyCategoryFeed, rows[0].Category)
	assert.Equal(t, 2, rows[0].Purchases)
	assert.Equal(t, 760000.0, rows[0].TotalSpent)
	assert.Equal(t, models.SupplyCategoryCrates, rows[1].Category)
}
