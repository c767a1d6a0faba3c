package transfer

import (
	"context"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, passing
// repositories bound to that transaction. It is the unit-of-work boundary
// of the stock transfer engine: every accept/complete call acquires one
// transaction and releases it on all exit paths, committing only when fn
// returns nil.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		jobRepo repository.JobRepository,
		accountRepo repository.CarriedAccountRepository,
		movementRepo repository.TransferMovementRepository,
	) error) error
}
