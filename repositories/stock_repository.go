package repositories

import (
	"errors"

	"granja-app/models"

	"gorm.io/gorm"
)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

func (r *StockRepository) CurrentStock() (models.EggStock, error) {
	var stock models.EggStock
	err := r.db.First(&stock).Error
	return stock, err
}

// RecordAdjustment logs a manual correction and applies the signed deltas
// to the egg stock in the same transaction. Adjustments exist to fix wrong
// counts, so no sign or floor checks here.
func (r *StockRepository) RecordAdjustment(adj *models.StockAdjustment) error {
	if adj.Kind != models.AdjustmentShrinkage && adj.Kind != models.AdjustmentCorrection {
		return ErrInvalidKind
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

	if err := tx.Create(adj).Error; err != nil {
		tx.Rollback()
		return err
	}

	var stock models.EggStock
	if err := tx.First(&stock).Error; err != nil {
		tx.Rollback()
		return err
	}

	stock.GradeC += adj.GradeC
	stock.GradeB += adj.GradeB
	stock.GradeA += adj.GradeA
	stock.GradeAA += adj.GradeAA
	stock.GradeAAA += adj.GradeAAA
	stock.GradeJumbo += adj.GradeJumbo
	stock.Date = adj.Date
	stock.Time = adj.Time

	if err := tx.Save(&stock).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *StockRepository) AdjustmentHistory(from, to string) ([]models.StockAdjustment, error) {
	var adjustments []models.StockAdjustment
	err := r.db.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC, time DESC").
		Find(&adjustments).Error
	return adjustments, err
}
