package models

import "gorm.io/gorm"

// EggStock holds the current on hand count per grade. There is exactly one
// row (seeded with ID 1) and only the repositories write to it.
type EggStock struct {
	gorm.Model
	GradeC     int    `json:"grade_c" gorm:"default:0"`
	GradeB     int    `json:"grade_b" gorm:"default:0"`
	GradeA     int    `json:"grade_a" gorm:"default:0"`
	GradeAA    int    `json:"grade_aa" gorm:"default:0"`
	GradeAAA   int    `json:"grade_aaa" gorm:"default:0"`
	GradeJumbo int    `json:"grade_jumbo" gorm:"default:0"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

const (
	AdjustmentShrinkage  = "shrinkage"
	AdjustmentCorrection = "correction"
)

// StockAdjustment logs a manual correction of the egg stock. Quantities are
// signed, negative values deduct.
type StockAdjustment struct {
	gorm.Model
	Date       string `json:"date" gorm:"index;not null"`
	Time       string `json:"time"`
	Kind       string `json:"kind" gorm:"not null"`
	GradeC     int    `json:"grade_c" gorm:"default:0"`
	GradeB     int    `json:"grade_b" gorm:"default:0"`
	GradeA     int    `json:"grade_a" gorm:"default:0"`
	GradeAA    int    `json:"grade_aa" gorm:"default:0"`
	GradeAAA   int    `json:"grade_aaa" gorm:"default:0"`
	GradeJumbo int    `json:"grade_jumbo" gorm:"default:0"`
	Reason     string `json:"reason"`
	CreatedBy  int
}
