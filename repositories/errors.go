package repositories

import "errors"

// Sentinel errors surfaced by the transaction functions. Controllers map
// them to HTTP statuses, tests assert on them directly.
var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotPending   = errors.New("order is not pending")
	ErrSupplyNotFound    = errors.New("supply stock not found")
	ErrInsufficientStock = errors.New("insufficient egg stock")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidKind       = errors.New("invalid kind")
	ErrInvalidCategory   = errors.New("invalid category")
)
