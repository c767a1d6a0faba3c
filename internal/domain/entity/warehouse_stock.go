package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseStock is one quantity-on-hand row for an item in a warehouse.
// Several rows per (warehouse, item) are legal (used/unused splits, partial
// receipts); readers must sum them, never overwrite.
// Invariant: Quantity >= 0 after any committed transaction.
type WarehouseStock struct {
	WarehouseID string
	ItemID      string
	Quantity    decimal.Decimal
	Defective   decimal.Decimal
	IsUsed      bool
	UpdatedAt   time.Time
	UpdatedBy   string
}
