package repositories

import (
	"strings"
	"testing"

	"granja-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequiresExistingCustomer(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	err := repo.CreateOrder(&models.Order{
		CustomerID: 999, Date: "2026-08-02", GradeAA: 50,
	})
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreateOrderStartsPending(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")
	repo := NewOrderRepository(db)

	order := models.Order{
		CustomerID: customer.ID,
		Date:       "2026-08-02",
		GradeAA:    50,
		TotalPrice: 22500,
		Status:     models.OrderStatusCompleted, // must be ignored
	}
	require.NoError(t, repo.CreateOrder(&order))

	got, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.Equal(t, customer.Name, got.Customer.Name)
}

func TestDispatchCompletesOrderAndPostsIncome(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", Time: "08:00:00", GradeAA: 100,
	}))

	repo := NewOrderRepository(db)
	order := models.Order{
		CustomerID: customer.ID,
		Date:       "2026-08-02",
		GradeAA:    50,
		TotalPrice: 22500,
	}
	require.NoError(t, repo.CreateOrder(&order))

	dispatch := models.Dispatch{
		OrderID: order.ID,
		Date:    "2026-08-02",
		Time:    "10:00:00",
		GradeAA: 50,
	}
	require.NoError(t, repo.RecordDispatch(&dispatch))

	assert.True(t, strings.HasPrefix(dispatch.DispatchNo, "DP"))

	stock := currentEggStock(t, db)
	assert.Equal(t, 50, stock.GradeAA)

	got, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, got.Status)
	require.Len(t, got.Dispatches, 1)

	var movement models.FinancialMovement
	require.NoError(t, db.Where("ref_table = ? AND ref_id = ?", models.RefTableOrders, order.ID).
		First(&movement).Error)
	assert.Equal(t, models.MovementIncome, movement.Type)
	assert.Equal(t, models.CategoryEggSale, movement.Category)
	assert.Equal(t, 22500.0, movement.Amount)
	assert.Equal(t, "2026-08-02", movement.Date)
	assert.NotZero(t, int64(movement.MovementNo))
}

func TestDispatchRejectedOnInsufficientStock(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeAA: 30,
	}))

	repo := NewOrderRepository(db)
	order := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 50, TotalPrice: 22500}
	require.NoError(t, repo.CreateOrder(&order))

	err := repo.RecordDispatch(&models.Dispatch{
		OrderID: order.ID, Date: "2026-08-02", GradeAA: 50,
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// nothing of the dispatch made it through
	stock := currentEggStock(t, db)
	assert.Equal(t, 30, stock.GradeAA)

	got, getErr := repo.GetOrder(order.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.OrderStatusPending, got.Status)
	assert.Empty(t, got.Dispatches)
	assert.Zero(t, countMovements(t, db))
}

func TestDispatchRejectedForMissingOrNonPendingOrder(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeAA: 100,
	}))

	repo := NewOrderRepository(db)

	err := repo.RecordDispatch(&models.Dispatch{OrderID: 999, Date: "2026-08-02", GradeAA: 10})
	require.ErrorIs(t, err, ErrOrderNotFound)

	order := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 10, TotalPrice: 4500}
	require.NoError(t, repo.CreateOrder(&order))
	require.NoError(t, repo.CancelOrder(order.ID))

	err = repo.RecordDispatch(&models.Dispatch{OrderID: order.ID, Date: "2026-08-02", GradeAA: 10})
	require.ErrorIs(t, err, ErrOrderNotPending)

	stock := currentEggStock(t, db)
	assert.Equal(t, 100, stock.GradeAA)
	assert.Zero(t, countMovements(t, db))
}

func TestDispatchNumbersIncrementWithinDay(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeAA: 100,
	}))

	repo := NewOrderRepository(db)
	var numbers []string
	for i := 0; i < 2; i++ {
		order := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 10, TotalPrice: 4500}
		require.NoError(t, repo.CreateOrder(&order))

		dispatch := models.Dispatch{OrderID: order.ID, Date: "2026-08-02", GradeAA: 10}
		require.NoError(t, repo.RecordDispatch(&dispatch))
		numbers = append(numbers, dispatch.DispatchNo)
	}

	require.Len(t, numbers, 2)
	assert.Len(t, numbers[0], 12)
	assert.True(t, strings.HasSuffix(numbers[0], "0001"))
	assert.True(t, strings.HasSuffix(numbers[1], "0002"))
}

func TestCancelOrderOnlyWhilePending(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeAA: 100,
	}))

	repo := NewOrderRepository(db)

	require.ErrorIs(t, repo.CancelOrder(999), ErrOrderNotFound)

	order := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 10, TotalPrice: 4500}
	require.NoError(t, repo.CreateOrder(&order))
	require.NoError(t, repo.RecordDispatch(&models.Dispatch{
		OrderID: order.ID, Date: "2026-08-02", GradeAA: 10,
	}))

	require.ErrorIs(t, repo.CancelOrder(order.ID), ErrOrderNotPending)

	// cancelling leaves the stock and the ledger alone
	pending := models.Order{CustomerID: customer.ID, Date: "2026-08-03", GradeAA: 5, TotalPrice: 2250}
	require.NoError(t, repo.CreateOrder(&pending))
	movementsBefore := countMovements(t, db)
	stockBefore := currentEggStock(t, db)

	require.NoError(t, repo.CancelOrder(pending.ID))

	got, err := repo.GetOrder(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
	assert.Equal(t, movementsBefore, countMovements(t, db))
	assert.Equal(t, stockBefore.GradeAA, currentEggStock(t, db).GradeAA)
}

func TestUpdateOrderOnlyWhilePending(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")
	repo := NewOrderRepository(db)

	order := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 10, TotalPrice: 4500}
	require.NoError(t, repo.CreateOrder(&order))

	require.NoError(t, repo.UpdateOrder(order.ID, &models.Order{GradeAA: 20, TotalPrice: 9000}))

	got, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.GradeAA)
	assert.Equal(t, 9000.0, got.TotalPrice)

	require.NoError(t, repo.CancelOrder(order.ID))
	require.ErrorIs(t, repo.UpdateOrder(order.ID, &models.Order{GradeAA: 30}), ErrOrderNotPending)
}

func TestListOrdersFilters(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	first := seedCustomer(t, db, "Tienda La Esquina")
	second := seedCustomer(t, db, "Panadería Central")
	repo := NewOrderRepository(db)

	require.NoError(t, repo.CreateOrder(&models.Order{
		CustomerID: first.ID, Date: "2026-08-02", GradeAA: 10,
	}))
	require.NoError(t, repo.CreateOrder(&models.Order{
		CustomerID: second.ID, Date: "2026-08-05", GradeA: 30,
	}))
	cancelled := models.Order{CustomerID: second.ID, Date: "2026-08-06", GradeB: 5}
	require.NoError(t, repo.CreateOrder(&cancelled))
	require.NoError(t, repo.CancelOrder(cancelled.ID))

	byCustomer, err := repo.ListOrders(OrderFilter{CustomerID: second.ID})
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	byStatus, err := repo.ListOrders(OrderFilter{Status: models.OrderStatusCancelled})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, cancelled.ID, byStatus[0].ID)

	pending, err := repo.PendingOrders()
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	byDate, err := repo.ListOrders(OrderFilter{DateFrom: "2026-08-01", DateTo: "2026-08-03"})
	require.NoError(t, err)
	assert.Len(t, byDate, 1)
}

func TestSalesHistoryListsCompletedOrders(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Tienda La Esquina")

	require.NoError(t, NewProductionRepository(db).RecordProduction(&models.ProductionBatch{
		Date: "2026-08-01", GradeAA: 100,
	}))

	repo := NewOrderRepository(db)

	completed := models.Order{CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 40, TotalPrice: 18000}
	require.NoError(t, repo.CreateOrder(&completed))
	require.NoError(t, repo.RecordDispatch(&models.Dispatch{
		OrderID: completed.ID, Date: "2026-08-03", Time: "10:00:00", GradeAA: 40,
	}))

	require.NoError(t, repo.CreateOrder(&models.Order{
		CustomerID: customer.ID, Date: "2026-08-02", GradeAA: 10,
	}))

	rows, err := repo.SalesHistory("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, completed.ID, rows[0].OrderID)
	assert.Equal(t, customer.Name, rows[0].CustomerName)
	assert.Equal(t, 18000.0, rows[0].TotalPrice)
	assert.Equal(t, "2026-08-03", rows[0].DispatchDate)
}
