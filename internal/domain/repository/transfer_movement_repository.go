package repository

import (
	"context"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
)

// TransferMovementRepository is the port over the transfer audit trail.
// Movements are written inside the same transaction as the account rows
// they describe.
type TransferMovementRepository interface {
	Create(ctx context.Context, movement *entity.TransferMovement) error
	ListByJob(ctx context.Context, jobID string) ([]entity.TransferMovement, error)
}
