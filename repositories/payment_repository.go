package repositories

import (
	"errors"
	"fmt"

	"granja-app/controllers/idgen"
	"granja-app/models"
	"granja-app/types"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// RecordPayment registers a worker payment and posts the expense in one
// transaction. A payment for a nonexistent worker is rejected outright.
func (r *PaymentRepository) RecordPayment(payment *models.WorkerPayment) error {
	var worker models.Worker
	if err := r.db.First(&worker, payment.WorkerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkerNotFound
		}
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

	if err := tx.Create(payment).Error; err != nil {
		tx.Rollback()
		return err
	}

	movement := models.FinancialMovement{
		MovementNo:  types.SnowflakeID(idgen.GenerateID()),
		Date:        payment.Date,
		Type:        models.MovementExpense,
		Category:    models.CategoryWorkerPayment,
		Amount:      payment.Amount,
		Description: fmt.Sprintf("Payment to %s", worker.Name),
		RefTable:    models.RefTableWorkerPayments,
		RefID:       payment.ID,
	}
	if err := tx.Create(&movement).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

type PaymentRow struct {
	ID         uint    `json:"id"`
	WorkerID   uint    `json:"worker_id"`
	WorkerName string  `json:"worker_name"`
	WorkerRole string  `json:"worker_role"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Amount     float64 `json:"amount"`
	Concept    string  `json:"concept"`
}

func (r *PaymentRepository) History(from, to string) ([]PaymentRow, error) {
	var rows []PaymentRow
	err := r.db.Table("worker_payments").
		Select(`worker_payments.id, worker_payments.worker_id,
			workers.name as worker_name, workers.role as worker_role,
			worker_payments.date, worker_payments.time,
			worker_payments.amount, worker_payments.concept`).
		Joins("JOIN workers ON workers.id = worker_payments.worker_id").
		Where("worker_payments.date BETWEEN ? AND ?", from, to).
		Order("worker_payments.date DESC, worker_payments.time DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *PaymentRepository) ByWorker(workerID uint, from, to string) ([]models.WorkerPayment, error) {
	var payments []models.WorkerPayment
	err := r.db.Where("worker_id = ? AND date BETWEEN ? AND ?", workerID, from, to).
		Order("date DESC, time DESC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) TotalForWorker(workerID uint, from, to string) (float64, error) {
	var total float64
	err := r.db.Model(&models.WorkerPayment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("worker_id = ? AND date BETWEEN ? AND ?", workerID, from, to).
		Scan(&total).Error
	return total, err
}
