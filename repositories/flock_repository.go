package repositories

import (
	"errors"

	"granja-app/models"

	"gorm.io/gorm"
)

type FlockRepository struct {
	db *gorm.DB
}

func NewFlockRepository(db *gorm.DB) *FlockRepository {
	return &FlockRepository{db: db}
}

func (r *FlockRepository) RecordPopulation(entry *models.FlockPopulation) error {
	return r.db.Create(entry).Error
}

// CurrentPopulation returns the latest population entry. A farm with no
// entries yet reports zero birds, not an error.
func (r *FlockRepository) CurrentPopulation() (models.FlockPopulation, error) {
	var entry models.FlockPopulation
	err := r.db.Order("date DESC, time DESC").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FlockPopulation{}, nil
	}
	return entry, err
}

func (r *FlockRepository) PopulationHistory(from, to string) ([]models.FlockPopulation, error) {
	var entries []models.FlockPopulation
	err := r.db.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC, time DESC").
		Find(&entries).Error
	return entries, err
}

// RecordFeedConsumption stores a feed entry. The total is always
// per bird grams times bird count, whatever the request said.
func (r *FlockRepository) RecordFeedConsumption(entry *models.FeedConsumption) error {
	entry.TotalGrams = entry.PerBirdGrams * float64(entry.BirdCount)
	return r.db.Create(entry).Error
}

func (r *FlockRepository) ConsumptionHistory(from, to string) ([]models.FeedConsumption, error) {
	var entries []models.FeedConsumption
	err := r.db.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC, time DESC").
		Find(&entries).Error
	return entries, err
}
