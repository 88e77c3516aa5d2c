package models

import "gorm.io/gorm"

type Worker struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int

	Payments []WorkerPayment `gorm:"foreignKey:WorkerID;references:ID" json:"payments,omitempty"`
}

// WorkerPayment posts an expense movement on insert, see PaymentRepository.
type WorkerPayment struct {
	gorm.Model
	WorkerID  uint    `json:"worker_id" gorm:"index;not null"`
	Date      string  `json:"date" gorm:"index;not null"`
	Time      string  `json:"time"`
	Amount    float64 `json:"amount" gorm:"not null"`
	Concept   string  `json:"concept"`
	CreatedBy int
}
