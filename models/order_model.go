package models

import "gorm.io/gorm"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order quantities are eggs per grade. Status starts as pending, flips to
// completed when a dispatch is recorded and can only be cancelled while
// still pending.
type Order struct {
	gorm.Model
	CustomerID uint    `json:"customer_id" gorm:"index;not null"`
	Date       string  `json:"date" gorm:"index;not null"`
	Time       string  `json:"time"`
	GradeC     int     `json:"grade_c" gorm:"default:0"`
	GradeB     int     `json:"grade_b" gorm:"default:0"`
	GradeA     int     `json:"grade_a" gorm:"default:0"`
	GradeAA    int     `json:"grade_aa" gorm:"default:0"`
	GradeAAA   int     `json:"grade_aaa" gorm:"default:0"`
	GradeJumbo int     `json:"grade_jumbo" gorm:"default:0"`
	TotalPrice float64 `json:"total_price" gorm:"default:0"`
	Status     string  `json:"status" gorm:"index;default:'pending'"`
	Notes      string  `json:"notes"`
	CreatedBy  int
	UpdatedBy  int

	Customer   Customer   `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Dispatches []Dispatch `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"dispatches,omitempty"`
}

// Dispatch is the shipment of an order. Inserting one decrements the egg
// stock, completes the parent order and posts the income, all in one
// transaction (OrderRepository.RecordDispatch).
type Dispatch struct {
	gorm.Model
	DispatchNo string `json:"dispatch_no" gorm:"unique"`
	OrderID    uint   `json:"order_id" gorm:"index;not null"`
	Date       string `json:"date" gorm:"not null"`
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
