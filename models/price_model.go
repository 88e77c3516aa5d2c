package models

import "gorm.io/gorm"

// EggPrice holds the price per egg for each grade. At most one row is
// active, CreatePrice deactivates the rest when a new one is inserted.
type EggPrice struct {
	gorm.Model
	EffectiveDate string  `json:"effective_date" gorm:"not null"`
	PriceC        float64 `json:"price_c" gorm:"default:0"`
	PriceB        float64 `json:"price_b" gorm:"default:0"`
	PriceA        float64 `json:"price_a" gorm:"default:0"`
	PriceAA       float64 `json:"price_aa" gorm:"default:0"`
	PriceAAA      float64 `json:"price_aaa" gorm:"default:0"`
	PriceJumbo    float64 `json:"price_jumbo" gorm:"default:0"`
	Active        bool    `json:"active" gorm:"index;default:false"`
	CreatedBy     int
}
