package postgres

import (
	"context"
	"fmt"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

var _ repository.DemandRepository = (*DemandRepo)(nil)

// DemandRepo adapter over demand_orders. head_key is NULL for whole-system
// orders; it maps to the empty string in the entity.
type DemandRepo struct {
	q Querier
}

// NewDemandRepository builds the demand adapter.
func NewDemandRepository(q Querier) *DemandRepo {
	return &DemandRepo{q: q}
}

// ListBySystemAndWarehouse returns the outstanding order counters for a
// system in a warehouse.
func (r *DemandRepo) ListBySystemAndWarehouse(ctx context.Context, systemID, warehouseID string) ([]entity.DemandOrder, error) {
	query := `
		SELECT warehouse_id, system_id, COALESCE(head_key, ''), COALESCE(item_id, ''),
		       total_ordered, total_dispatched
		FROM demand_orders
		WHERE system_id = $1 AND warehouse_id = $2`
	rows, err := r.q.Query(ctx, query, systemID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list demand orders: %w", err)
	}
	defer rows.Close()
	var orders []entity.DemandOrder
	for rows.Next() {
		var d entity.DemandOrder
		if err := rows.Scan(&d.WarehouseID, &d.SystemID, &d.HeadKey, &d.ItemID, &d.TotalOrdered, &d.TotalDispatched); err != nil {
			return nil, fmt.Errorf("scan demand order: %w", err)
		}
		orders = append(orders, d)
	}
	return orders, rows.Err()
}

// AddDispatched moves the dispatched counter by delta, clamped so it never
// exceeds total_ordered nor drops below zero. Shipment workflows own the
// policy of when to call this.
func (r *DemandRepo) AddDispatched(ctx context.Context, warehouseID, systemID, headKey string, delta int64) error {
	query := `
		UPDATE demand_orders
		SET total_dispatched = LEAST(total_ordered, GREATEST(0, total_dispatched + $4))
		WHERE warehouse_id = $1 AND system_id = $2 AND COALESCE(head_key, '') = $3`
	cmd, err := r.q.Exec(ctx, query, warehouseID, systemID, headKey, delta)
	if err != nil {
		return fmt.Errorf("add dispatched: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("demand order (%s, %s, %q): no row", warehouseID, systemID, headKey)
	}
	return nil
}
