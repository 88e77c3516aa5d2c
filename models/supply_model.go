package models

import "gorm.io/gorm"

const (
	SupplyCategoryFeed        = "Feed"
	SupplyCategoryMedicine    = "Medicine"
	SupplyCategoryMaintenance = "Maintenance"
	SupplyCategoryCrates      = "Crates"
	SupplyCategoryOther       = "Other"
)

const (
	SupplyMovementIn  = "in"
	SupplyMovementOut = "out"
)

// Supply is one purchase. TotalCost is always recomputed from quantity and
// unit cost on insert, never trusted from the request.
type Supply struct {
	gorm.Model
	Name         string  `json:"name" gorm:"not null"`
	Category     string  `json:"category" gorm:"not null"`
	Quantity     float64 `json:"quantity" gorm:"not null"`
	Unit         string  `json:"unit" gorm:"not null"`
	UnitCost     float64 `json:"unit_cost" gorm:"default:0"`
	TotalCost    float64 `json:"total_cost" gorm:"default:0"`
	PurchaseDate string  `json:"purchase_date" gorm:"index;not null"`
	Supplier     string  `json:"supplier"`
	CreatedBy    int
}

// SupplyStock accumulates on hand quantity per supply name. Purchases of
// the same named item always land on the same row.
type SupplyStock struct {
	gorm.Model
	SupplyName  string  `json:"supply_name" gorm:"unique;not null"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity" gorm:"default:0"`
	MinQuantity float64 `json:"min_quantity" gorm:"default:0"`
}

// SupplyMovement is the audit log for supply stock changes.
type SupplyMovement struct {
	gorm.Model
	Date          string  `json:"date" gorm:"index;not null"`
	Time          string  `json:"time"`
	SupplyStockID uint    `json:"supply_stock_id" gorm:"index;not null"`
	Kind          string  `json:"kind" gorm:"not null"`
	Quantity      float64 `json:"quantity" gorm:"not null"`
	Reason        string  `json:"reason"`
	CreatedBy     int

	SupplyStock SupplyStock `gorm:"foreignKey:SupplyStockID;references:ID" json:"supply_stock,omitempty"`
}
