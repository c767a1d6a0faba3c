package repository

import (
	"context"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
)

// InstallerRepository resolves which of the two installer roles an id
// belongs to. Service persons are checked first, then survey persons;
// neither matching is domain.ErrNotFound.
type InstallerRepository interface {
	ResolveKind(ctx context.Context, installerID string) (entity.InstallerRef, error)
}
