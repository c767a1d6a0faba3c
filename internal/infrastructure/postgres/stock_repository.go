package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo adapter over warehouse_stock. A (warehouse, item) pair may have
// several rows (used/unused splits, partial receipts); aggregation happens
// in SQL so readers always see the summed view.
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the stock adapter. Pass pool or tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// SumByWarehouse returns itemID -> total on-hand quantity for a warehouse.
func (r *StockRepo) SumByWarehouse(ctx context.Context, warehouseID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT item_id, SUM(quantity)
		FROM warehouse_stock
		WHERE warehouse_id = $1
		GROUP BY item_id`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("sum warehouse stock: %w", err)
	}
	defer rows.Close()
	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var itemID string
		var qty decimal.Decimal
		if err := rows.Scan(&itemID, &qty); err != nil {
			return nil, fmt.Errorf("scan stock sum: %w", err)
		}
		totals[itemID] = qty
	}
	return totals, rows.Err()
}

// ListByWarehouse returns the raw stock rows of a warehouse.
func (r *StockRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.WarehouseStock, error) {
	query := `
		SELECT warehouse_id, item_id, quantity, defective, is_used, updated_at, updated_by
		FROM warehouse_stock
		WHERE warehouse_id = $1
		ORDER BY item_id`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list warehouse stock: %w", err)
	}
	defer rows.Close()
	var list []entity.WarehouseStock
	for rows.Next() {
		var s entity.WarehouseStock
		if err := rows.Scan(&s.WarehouseID, &s.ItemID, &s.Quantity, &s.Defective, &s.IsUsed, &s.UpdatedAt, &s.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan warehouse stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
