package postgres

import (
	"context"
	"fmt"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

var _ repository.TransferMovementRepository = (*TransferMovementRepo)(nil)

// TransferMovementRepo adapter over transfer_movements.
type TransferMovementRepo struct {
	q Querier
}

// NewTransferMovementRepository builds the movement adapter. Pass pool or
// tx (Querier); transfers always bind it to a tx.
func NewTransferMovementRepository(q Querier) *TransferMovementRepo {
	return &TransferMovementRepo{q: q}
}

// Create persists one movement record.
func (r *TransferMovementRepo) Create(ctx context.Context, m *entity.TransferMovement) error {
	query := `
		INSERT INTO transfer_movements
			(id, transaction_id, job_id, installer_id, installer_kind, item_id, type, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TransactionID, m.JobID, m.Installer.ID, m.Installer.Kind,
		m.ItemID, m.Type, m.Quantity, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer movement: %w", err)
	}
	return nil
}

// ListByJob returns a job's movements in creation order.
func (r *TransferMovementRepo) ListByJob(ctx context.Context, jobID string) ([]entity.TransferMovement, error) {
	query := `
		SELECT id, transaction_id, job_id, installer_id, installer_kind, item_id, type, quantity, created_at
		FROM transfer_movements
		WHERE job_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list transfer movements: %w", err)
	}
	defer rows.Close()
	var list []entity.TransferMovement
	for rows.Next() {
		var m entity.TransferMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.JobID, &m.Installer.ID, &m.Installer.Kind,
			&m.ItemID, &m.Type, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
