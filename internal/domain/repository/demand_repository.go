package repository

import (
	"context"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
)

// DemandRepository is the port over outstanding order counters. Read-mostly
// for this core; AddDispatched is the hook shipment workflows use to move
// the dispatched counter (they own that policy, not this core).
type DemandRepository interface {
	ListBySystemAndWarehouse(ctx context.Context, systemID, warehouseID string) ([]entity.DemandOrder, error)
	AddDispatched(ctx context.Context, warehouseID, systemID, headKey string, delta int64) error
}
