package models

import "gorm.io/gorm"

// ProductionBatch is one production entry. Rows are never updated or
// deleted once recorded.
type ProductionBatch struct {
	gorm.Model
	Date       string `json:"date" gorm:"index;not null"`
	Time       string `json:"time"`
	GradeC     int    `json:"grade_c" gorm:"default:0"`
	GradeB     int    `json:"grade_b" gorm:"default:0"`
	GradeA     int    `json:"grade_a" gorm:"default:0"`
	GradeAA    int    `json:"grade_aa" gorm:"default:0"`
	GradeAAA   int    `json:"grade_aaa" gorm:"default:0"`
	GradeJumbo int    `json:"grade_jumbo" gorm:"default:0"`
	Notes      string `json:"notes"`
	CreatedBy  int
}
