package repository

import (
	"context"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
)

// CarriedAccountRepository is the port over installer carried-stock
// accounts. Used inside transactions to guarantee consistency.
type CarriedAccountRepository interface {
	// Get returns the account, or nil when the installer has none yet.
	Get(ctx context.Context, ref entity.InstallerRef) (*entity.CarriedAccount, error)
	// GetForUpdate locks the account's lines for the transaction
	// (SELECT FOR UPDATE) before a read-modify-write.
	GetForUpdate(ctx context.Context, ref entity.InstallerRef) (*entity.CarriedAccount, error)
	// Save upserts every line of the account.
	Save(ctx context.Context, account *entity.CarriedAccount) error
}
