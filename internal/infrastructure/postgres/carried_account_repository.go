package postgres

import (
	"context"
	"fmt"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

var _ repository.CarriedAccountRepository = (*CarriedAccountRepo)(nil)

// CarriedAccountRepo adapter over carried_account_items: one row per
// (installer id, installer kind, item). The account itself is implicit in
// its lines, created lazily on first credit.
type CarriedAccountRepo struct {
	q Querier
}

// NewCarriedAccountRepository builds the carried-account adapter. Pass pool
// or tx (Querier); transfers always bind it to a tx.
func NewCarriedAccountRepository(q Querier) *CarriedAccountRepo {
	return &CarriedAccountRepo{q: q}
}

// Get returns the account with its lines in item order, or nil when the
// installer holds nothing yet.
func (r *CarriedAccountRepo) Get(ctx context.Context, ref entity.InstallerRef) (*entity.CarriedAccount, error) {
	return r.get(ctx, ref, false)
}

// GetForUpdate locks the account's lines (SELECT FOR UPDATE) so concurrent
// accept/complete on the same installer serialize their read-modify-write.
func (r *CarriedAccountRepo) GetForUpdate(ctx context.Context, ref entity.InstallerRef) (*entity.CarriedAccount, error) {
	return r.get(ctx, ref, true)
}

func (r *CarriedAccountRepo) get(ctx context.Context, ref entity.InstallerRef, forUpdate bool) (*entity.CarriedAccount, error) {
	query := `
		SELECT item_id, quantity, updated_at
		FROM carried_account_items
		WHERE installer_id = $1 AND installer_kind = $2
		ORDER BY item_id`
	if forUpdate {
		query += `
		FOR UPDATE`
	}
	rows, err := r.q.Query(ctx, query, ref.ID, ref.Kind)
	if err != nil {
		return nil, fmt.Errorf("get carried account: %w", err)
	}
	defer rows.Close()
	account := &entity.CarriedAccount{Installer: ref}
	for rows.Next() {
		var line entity.CarriedLine
		if err := rows.Scan(&line.ItemID, &line.Quantity, &account.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan carried line: %w", err)
		}
		account.Lines = append(account.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(account.Lines) == 0 {
		return nil, nil
	}
	return account, nil
}

// Save upserts every line of the account.
func (r *CarriedAccountRepo) Save(ctx context.Context, account *entity.CarriedAccount) error {
	query := `
		INSERT INTO carried_account_items (installer_id, installer_kind, item_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (installer_id, installer_kind, item_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	for _, line := range account.Lines {
		_, err := r.q.Exec(ctx, query,
			account.Installer.ID, account.Installer.Kind, line.ItemID, line.Quantity, account.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert carried line %s: %w", line.ItemID, err)
		}
	}
	return nil
}
