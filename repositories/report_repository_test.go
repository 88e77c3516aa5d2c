package repositories

import (
	"testing"

	"granja-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceForPeriod(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	customer := seedCustomer(t, db, "Tienda La Esquina")
	worker := seedWorker(t, db, "María López", "galponera")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeAA: 100,
	}))

	orderRepo := NewOrderRepository(db)
	order := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 50, TotalPrice: 22500}
	require.NoError(t, orderRepo.CreateOrder(&order))
	require.NoError(t, orderRepo.RecordDispatch(&models.Dispatch{
		OrderID: order.ID, Date: "2026-08-02", GradeAA: 50,
	}))

	require.NoError(t, NewSupplyRepository(db).RecordPurchase(&models.Supply{
		Name: "Layer feed 20kg", Category: models.SupplyCategoryFeed,
		Quantity: 2, Unit: "bags", UnitCost: 5000, PurchaseDate: "2026-08-03",
	}))
	require.NoError(t, NewPaymentRepository(db).RecordPayment(&models.WorkerPayment{
		WorkerID: worker.ID, Date: "2026-08-15", Amount: 7500,
	}))

	repo := NewReportRepository(db)
	balance, err := repo.BalanceForPeriod("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 22500.0, balance.TotalIncome)
	assert.Equal(t, 17500.0, balance.TotalExpense)
	assert.Equal(t, 5000.0, balance.Balance)

	movements, err := repo.Movements("2026-08-01", "2026-08-31", models.MovementExpense)
	require.NoError(t, err)
	assert.Len(t, movements, 2)

	byCategory, err := repo.MovementsByCategory("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, byCategory, 3)
	assert.Equal(t, models.MovementIncome, byCategory[0].Type)
	assert.Equal(t, models.CategoryEggSale, byCategory[0].Category)
}

func TestCostPerEgg(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	worker := seedWorker(t, db, "María López", "galponera")

	repo := NewReportRepository(db)

	// no production yet, cost must stay zero
	cost, err := repo.CostPerEgg("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Zero(t, cost)

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-05", GradeAA: 1000,
	}))
	require.NoError(t, NewSupplyRepository(db).RecordPurchase(&models.Supply{
		Name: "Layer feed 20kg", Category: models.SupplyCategoryFeed,
		Quantity: 1, Unit: "bags", UnitCost: 30000, PurchaseDate: "2026-08-03",
	}))
	// medicine purchases stay out of the egg cost
	require.NoError(t, NewSupplyRepository(db).RecordPurchase(&models.Supply{
		Name: "Antibiotic", Category: models.SupplyCategoryMedicine,
		Quantity: 1, Unit: "units", UnitCost: 99999, PurchaseDate: "2026-08-03",
	}))
	require.NoError(t, NewPaymentRepository(db).RecordPayment(&models.WorkerPayment{
		WorkerID: worker.ID, Date: "2026-08-15", Amount: 20000,
	}))

	cost, err = repo.CostPerEgg("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, cost, 0.0001)
}

func TestProductionVsSales(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeAA: 200, GradeA: 100,
	}))

	orderRepo := NewOrderRepository(db)
	order := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 120, TotalPrice: 54000}
	require.NoError(t, orderRepo.CreateOrder(&order))
	require.NoError(t, orderRepo.RecordDispatch(&models.Dispatch{
		OrderID: order.ID, Date: "2026-08-02", GradeAA: 120,
	}))

	// pending orders do not count as sold
	require.NoError(t, orderRepo.CreateOrder(&models.Order{
		CustomerID: customer.ID, Date: "2026-08-03", GradeA: 50,
	}))

	repo := NewReportRepository(db)
	summary, err := repo.ProductionVsSales("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 300, summary.TotalProduced)
	assert.Equal(t, 120, summary.TotalSold)
}

func TestDailyProductionAndSales(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")

	production := NewProductionRepository(db)
	require.NoError(t, production.RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", Time: "08:00:00", GradeAA: 60,
	}))
	require.NoError(t, production.RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", Time: "16:00:00", GradeAA: 40,
	}))
	require.NoError(t, production.RecordProduction(&models.ProductionBatch{
		Date: "2026-08-02", Time: "08:00:00", GradeA: 30,
	}))

	orderRepo := NewOrderRepository(db)
	order := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 50, TotalPrice: 22500}
	require.NoError(t, orderRepo.CreateOrder(&order))
	require.NoError(t, orderRepo.RecordDispatch(&models.Dispatch{
		OrderID: order.ID, Date: "2026-08-02", GradeAA: 50,
	}))

	repo := NewReportRepository(db)

	daily, err := repo.DailyProduction("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "2026-08-01", daily[0].Date)
	assert.Equal(t, 100, daily[0].GradeAA)
	assert.Equal(t, 100, daily[0].Total)
	assert.Equal(t, 30, daily[1].Total)

	sales, err := repo.DailySales("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "2026-08-02", sales[0].Date)
	assert.Equal(t, 1, sales[0].Sales)
	assert.Equal(t, 50, sales[0].TotalEggs)
	assert.Equal(t, 22500.0, sales[0].TotalIncome)
}

func TestTopCustomers(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	first := seedCustomer(t, db, "Tienda La Esquina")
	second := seedCustomer(t, db, "Panadería Central")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeAA: 500,
	}))

	orderRepo := NewOrderRepository(db)
	buys := []struct {
		customer models.Customer
		eggs     int
		price    float64
	}{
		{first, 100, 45000},
		{second, 200, 90000},
		{second, 50, 22500},
	}
	for _, b := range buys {
		order := models.Order{
			CustomerID: b.customer.ID, Date: "2026-08-02",
			GradeAA: b.eggs, TotalPrice: b.price,
		}
		require.NoError(t, orderRepo.CreateOrder(&order))
		require.NoError(t, orderRepo.RecordDispatch(&models.Dispatch{
			OrderID: order.ID, Date: "2026-08-02", GradeAA: b.eggs,
		}))
	}

	repo := NewReportRepository(db)
	rows, err := repo.TopCustomers("2026-08-01", "2026-08-31", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Panadería Central", rows[0].Name)
	assert.Equal(t, 2, rows[0].Orders)
	assert.Equal(t, 112500.0, rows[0].TotalBought)
	assert.Equal(t, 250, rows[0].TotalEggs)
}

func TestStockStatistics(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeC: 5, GradeAA: 100, GradeJumbo: 10,
	}))

	repo := NewReportRepository(db)
	stats, err := repo.StockStatistics()
	require.NoError(t, err)
	assert.Equal(t, 115, stats.TotalEggs)
	assert.Equal(t, 5, stats.GradeC)
	assert.Equal(t, 100, stats.GradeAA)
	assert.Equal(t, 10, stats.GradeJumbo)
}
