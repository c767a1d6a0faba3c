package repository

import (
	"context"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
)

// CatalogRepository is the read-only port over the BOM graph: systems, items
// and the two BOM relations. Catalog data is owned by planning workflows
// outside this core and may be cached freely.
type CatalogRepository interface {
	GetSystem(ctx context.Context, id string) (*entity.System, error)
	GetItem(ctx context.Context, id string) (*entity.Item, error)
	// ListSystemItems returns all System->Item edges of a system.
	ListSystemItems(ctx context.Context, systemID string) ([]entity.SystemItemEdge, error)
	// ListSubItems returns the Item->SubItem edges under one parent item.
	ListSubItems(ctx context.Context, parentItemID string) ([]entity.ComponentEdge, error)
}
