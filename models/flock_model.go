package models

import "gorm.io/gorm"

// FlockPopulation is an append only log, the newest row by date and time is
// the current population.
type FlockPopulation struct {
	gorm.Model
	Date      string `json:"date" gorm:"index;not null"`
	Time      string `json:"time"`
	BirdCount int    `json:"bird_count" gorm:"default:0"`
	Culled    int    `json:"culled" gorm:"default:0"`
	Notes     string `json:"notes"`
	CreatedBy int
}

type FeedConsumption struct {
	gorm.Model
	Date         string  `json:"date" gorm:"index;not null"`
	Time         string  `json:"time"`
	PerBirdGrams float64 `json:"per_bird_grams" gorm:"default:0"`
	BirdCount    int     `json:"bird_count" gorm:"default:0"`
	TotalGrams   float64 `json:"total_grams" gorm:"default:0"`
	Notes        string  `json:"notes"`
	CreatedBy    int
}
