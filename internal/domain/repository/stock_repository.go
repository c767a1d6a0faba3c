package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
)

// StockRepository is the port over warehouse quantity-on-hand rows.
// Multiple rows per (warehouse, item) are legal; SumByWarehouse aggregates
// them so readers never see a partial view of an item's stock.
type StockRepository interface {
	// SumByWarehouse returns itemID -> total on-hand quantity for a warehouse.
	SumByWarehouse(ctx context.Context, warehouseID string) (map[string]decimal.Decimal, error)
	ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.WarehouseStock, error)
}
