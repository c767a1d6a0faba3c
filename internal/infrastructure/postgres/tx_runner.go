package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/transfer"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

// Ensure TxRunner implements transfer.TxRunner.
var _ transfer.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction. It is the
// unit-of-work boundary of the stock transfer engine: fn gets repositories
// bound to the transaction, and a non-nil return rolls everything back.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run starts a transaction, executes fn with tx-bound repositories and
// commits, or rolls back when fn fails. Serialization and deadlock errors
// surface as domain.ErrStorageConflict for caller-level retry.
func (r *TxRunner) Run(ctx context.Context, fn func(
	jobRepo repository.JobRepository,
	accountRepo repository.CarriedAccountRepository,
	movementRepo repository.TransferMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", translateTxError(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	jobRepo := NewJobRepository(tx)
	accountRepo := NewCarriedAccountRepository(tx)
	movementRepo := NewTransferMovementRepository(tx)

	if err := fn(jobRepo, accountRepo, movementRepo); err != nil {
		return translateTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", translateTxError(err))
	}
	return nil
}
