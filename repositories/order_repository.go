package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"granja-app/controllers/idgen"
	"granja-app/models"
	"granja-app/types"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GenerateDispatchNo() (string, error) {
	var lastDispatch models.Dispatch

	if err := r.db.Last(&lastDispatch).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	now := time.Now()
	currentDate := now.Format("060102") // 06=YY, 01=MM, 02=DD

	var dispatchNo string
	if lastDispatch.DispatchNo != "" && len(lastDispatch.DispatchNo) >= 12 {
		lastDatePart := lastDispatch.DispatchNo[2:8]
		lastSequenceStr := lastDispatch.DispatchNo[len(lastDispatch.DispatchNo)-4:]

		if currentDate != lastDatePart {
			dispatchNo = fmt.Sprintf("DP%s%04d", currentDate, 1)
		} else {
			lastSequenceInt, _ := strconv.Atoi(lastSequenceStr)
			dispatchNo = fmt.Sprintf("DP%s%04d", currentDate, lastSequenceInt+1)
		}
	} else {
		dispatchNo = fmt.Sprintf("DP%s%04d", currentDate, 1)
	}

	return dispatchNo, nil
}

// CreateOrder inserts an order as pending for an existing active customer.
func (r *OrderRepository) CreateOrder(order *models.Order) error {
	var customer models.Customer
	if err := r.db.First(&customer, order.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}

	order.Status = models.OrderStatusPending
	return r.db.Create(order).Error
}

func (r *OrderRepository) GetOrder(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Customer").Preload("Dispatches").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, ErrOrderNotFound
	}
	return order, err
}

type OrderFilter struct {
	Status     string
	CustomerID uint
	DateFrom   string
	DateTo     string
}

func (r *OrderRepository) ListOrders(filter OrderFilter) ([]models.Order, error) {
	query := r.db.Preload("Customer").Order("date DESC, time DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID > 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.DateFrom != "" && filter.DateTo != "" {
		query = query.Where("date BETWEEN ? AND ?", filter.DateFrom, filter.DateTo)
	}

	var orders []models.Order
	err := query.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) PendingOrders() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Customer").
		Where("status = ?", models.OrderStatusPending).
		Order("date ASC, time ASC").
		Find(&orders).Error
	return orders, err
}

// UpdateOrder replaces the quantities, price and notes of an order that is
// still pending.
func (r *OrderRepository) UpdateOrder(id uint, order *models.Order) error {
	var existing models.Order
	if err := r.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if existing.Status != models.OrderStatusPending {
		return ErrOrderNotPending
	}

	return r.db.Model(&existing).Updates(map[string]interface{}{
		"grade_c":     order.GradeC,
		"grade_b":     order.GradeB,
		"grade_a":     order.GradeA,
		"grade_aa":    order.GradeAA,
		"grade_aaa":   order.GradeAAA,
		"grade_jumbo": order.GradeJumbo,
		"total_price": order.TotalPrice,
		"notes":       order.Notes,
		"updated_by":  order.UpdatedBy,
	}).Error
}

// CancelOrder moves a pending order to cancelled. Nothing was dispatched or
// posted yet, so there is nothing to reverse.
func (r *OrderRepository) CancelOrder(id uint) error {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.Status != models.OrderStatusPending {
		return ErrOrderNotPending
	}

	return r.db.Model(&order).Update("status", models.OrderStatusCancelled).Error
}

// RecordDispatch registers the shipment of an order. In one transaction it
// deducts the dispatched quantities from the egg stock, marks the order
// completed and posts the income for the order's total price. A dispatch
// that would drive any grade negative is rejected before anything is
// written.
func (r *OrderRepository) RecordDispatch(dispatch *models.Dispatch) error {
	dispatchNo, err := r.GenerateDispatchNo()
	if err != nil {
		return err
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	var order models.Order
	if err := tx.First(&order, dispatch.OrderID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if order.Status != models.OrderStatusPending {
		tx.Rollback()
		return ErrOrderNotPending
	}

	var stock models.EggStock
	if err := tx.First(&stock).Error; err != nil {
		tx.Rollback()
		return err
	}

	if stock.GradeC < dispatch.GradeC ||
		stock.GradeB < dispatch.GradeB ||
		stock.GradeA < dispatch.GradeA ||
		stock.GradeAA < dispatch.GradeAA ||
		stock.GradeAAA < dispatch.GradeAAA ||
		stock.GradeJumbo < dispatch.GradeJumbo {
		tx.Rollback()
		return ErrInsufficientStock
	}

	stock.GradeC -= dispatch.GradeC
	stock.GradeB -= dispatch.GradeB
	stock.GradeA -= dispatch.GradeA
	stock.GradeAA -= dispatch.GradeAA
	stock.GradeAAA -= dispatch.GradeAAA
	stock.GradeJumbo -= dispatch.GradeJumbo
	stock.Date = dispatch.Date
	stock.Time = dispatch.Time

	if err := tx.Save(&stock).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&order).Update("status", models.OrderStatusCompleted).Error; err != nil {
		tx.Rollback()
		return err
	}

	dispatch.DispatchNo = dispatchNo
	if err := tx.Create(dispatch).Error; err != nil {
		tx.Rollback()
		return err
	}

	movement := models.FinancialMovement{
		MovementNo:  types.SnowflakeID(idgen.GenerateID()),
		Date:        dispatch.Date,
		Type:        models.MovementIncome,
		Category:    models.CategoryEggSale,
		Amount:      order.TotalPrice,
		Description: fmt.Sprintf("Sale of order #%d", order.ID),
		RefTable:    models.RefTableOrders,
		RefID:       order.ID,
	}
	if err := tx.Create(&movement).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

type SaleRow struct {
	OrderID      uint    `json:"order_id"`
	Date         string  `json:"date"`
	CustomerName string  `json:"customer_name"`
	GradeC       int     `json:"grade_c"`
	GradeB       int     `json:"grade_b"`
	GradeA       int     `json:"grade_a"`
	GradeAA      int     `json:"grade_aa"`
	GradeAAA     int     `json:"grade_aaa"`
	GradeJumbo   int     `json:"grade_jumbo"`
	TotalPrice   float64 `json:"total_price"`
	DispatchDate string  `json:"dispatch_date"`
	DispatchTime string  `json:"dispatch_time"`
}

// SalesHistory lists completed orders with the customer and dispatch info
// the sales screen shows.
func (r *OrderRepository) SalesHistory(from, to string) ([]SaleRow, error) {
	var rows []SaleRow
	err := r.db.Table("orders").
		Select(`orders.id as order_id, orders.date, customers.name as customer_name,
			orders.grade_c, orders.grade_b, orders.grade_a,
			orders.grade_aa, orders.grade_aaa, orders.grade_jumbo,
			orders.total_price,
			dispatches.date as dispatch_date, dispatches.time as dispatch_time`).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Joins("LEFT JOIN dispatches ON dispatches.order_id = orders.id").
		Where("orders.status = ? AND orders.date BETWEEN ? AND ?", models.OrderStatusCompleted, from, to).
		Order("orders.date DESC").
		Scan(&rows).Error
	return rows, err
}
