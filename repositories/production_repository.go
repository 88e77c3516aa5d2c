package repositories

import (
	"errors"

	"granja-app/models"

	"gorm.io/gorm"
)

type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// RecordProduction inserts the batch and adds its counts to the egg stock
// in one transaction. The stock row takes the batch's date and time.
func (r *ProductionRepository) RecordProduction(batch *models.ProductionBatch) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(batch).Error; err != nil {
		tx.Rollback()
		return err
	}

	var stock models.EggStock
	if err := tx.First(&stock).Error; err != nil {
		tx.Rollback()
		return err
	}

	stock.GradeC += batch.GradeC
	stock.GradeB += batch.GradeB
	stock.GradeA += batch.GradeA
	stock.GradeAA += batch.GradeAA
	stock.GradeAAA += batch.GradeAAA
	stock.GradeJumbo += batch.GradeJumbo
	stock.Date = batch.Date
	stock.Time = batch.Time

	if err := tx.Save(&stock).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *ProductionRepository) ListByDateRange(from, to string) ([]models.ProductionBatch, error) {
	var batches []models.ProductionBatch
	err := r.db.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC, time DESC").
		Find(&batches).Error
	return batches, err
}

func (r *ProductionRepository) ListByDate(date string) ([]models.ProductionBatch, error) {
	var batches []models.ProductionBatch
	err := r.db.Where("date = ?", date).Order("time DESC").Find(&batches).Error
	return batches, err
}

type ProductionTotals struct {
	TotalC     int `json:"total_c"`
	TotalB     int `json:"total_b"`
	TotalA     int `json:"total_a"`
	TotalAA    int `json:"total_aa"`
	TotalAAA   int `json:"total_aaa"`
	TotalJumbo int `json:"total_jumbo"`
	Batches    int `json:"batches"`
}

func (r *ProductionRepository) TotalsForPeriod(from, to string) (ProductionTotals, error) {
	var totals ProductionTotals
	err := r.db.Model(&models.ProductionBatch{}).
		Select(`COALESCE(SUM(grade_c), 0) as total_c,
			COALESCE(SUM(grade_b), 0) as total_b,
			COALESCE(SUM(grade_a), 0) as total_a,
			COALESCE(SUM(grade_aa), 0) as total_aa,
			COALESCE(SUM(grade_aaa), 0) as total_aaa,
			COALESCE(SUM(grade_jumbo), 0) as total_jumbo,
			COUNT(*) as batches`).
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&totals).Error
	return totals, err
}
