package repositories

import (
	"errors"

	"granja-app/models"

	"gorm.io/gorm"
)

type PriceRepository struct {
	db *gorm.DB
}

func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

func (r *PriceRepository) ActivePrice() (models.EggPrice, error) {
	var price models.EggPrice
	err := r.db.Where("active = ?", true).First(&price).Error
	return price, err
}

// CreatePrice inserts a new active price list. Every other row is
// deactivated in the same transaction so exactly one price stays active.
func (r *PriceRepository) CreatePrice(price *models.EggPrice) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.EggPrice{}).
		Where("active = ?", true).
		Update("active", false).Error; err != nil {
		tx.Rollback()
		return err
	}

	price.Active = true
	if err := tx.Create(price).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *PriceRepository) History(limit int) ([]models.EggPrice, error) {
	if limit <= 0 {
		limit = 10
	}
	var prices []models.EggPrice
	err := r.db.Order("effective_date DESC").Limit(limit).Find(&prices).Error
	return prices, err
}
