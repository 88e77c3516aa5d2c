package models

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Contact   string `json:"contact"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
}
