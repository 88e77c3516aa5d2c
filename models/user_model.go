package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
