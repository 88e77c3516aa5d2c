package models

import (
	"granja-app/types"

	"gorm.io/gorm"
)

const (
	MovementIncome  = "income"
	MovementExpense = "expense"
)

// Origin tables a financial movement can point back to. The pair
// RefTable/RefID is only ever written by the repositories, one movement per
// originating dispatch, purchase or payment.
const (
	RefTableOrders         = "orders"
	RefTableSupplies       = "supplies"
	RefTableWorkerPayments = "worker_payments"
)

const (
	CategoryEggSale       = "Egg sale"
	CategoryWorkerPayment = "Worker payment"
)

// FinancialMovement is the append only ledger of record. Rows are never
// updated or deleted.
type FinancialMovement struct {
	gorm.Model
	MovementNo  types.SnowflakeID `json:"movement_no" gorm:"uniqueIndex"`
	Date        string            `json:"date" gorm:"index;not null"`
	Type        string            `json:"type" gorm:"index;not null"`
	Category    string            `json:"category" gorm:"not null"`
	Amount      float64           `json:"amount" gorm:"not null"`
	Description string            `json:"description"`
	RefTable    string            `json:"ref_table" gorm:"not null"`
	RefID       uint              `json:"ref_id" gorm:"not null"`
}
