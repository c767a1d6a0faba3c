package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo read-only adapter over the BOM catalog tables (systems,
// items, system_items, item_components). Usable with pool or tx.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository builds the catalog adapter. Pass pool or tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// GetSystem fetches a system by id. Returns nil when absent.
func (r *CatalogRepo) GetSystem(ctx context.Context, id string) (*entity.System, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM systems WHERE id = $1`
	var s entity.System
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get system: %w", err)
	}
	return &s, nil
}

// GetItem fetches an item by id. Returns nil when absent, so the classifier
// can skip dangling BOM edges without treating them as fatal.
func (r *CatalogRepo) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	query := `
		SELECT id, name, unit, created_at, updated_at
		FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(&it.ID, &it.Name, &it.Unit, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListSystemItems returns every System->Item edge of a system in insertion
// order.
func (r *CatalogRepo) ListSystemItems(ctx context.Context, systemID string) ([]entity.SystemItemEdge, error) {
	query := `
		SELECT system_id, item_id, quantity, unit
		FROM system_items WHERE system_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, systemID)
	if err != nil {
		return nil, fmt.Errorf("list system items: %w", err)
	}
	defer rows.Close()
	var edges []entity.SystemItemEdge
	for rows.Next() {
		var e entity.SystemItemEdge
		if err := rows.Scan(&e.SystemID, &e.ItemID, &e.Quantity, &e.Unit); err != nil {
			return nil, fmt.Errorf("scan system item: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// ListSubItems returns the Item->SubItem edges under one parent item in
// insertion order.
func (r *CatalogRepo) ListSubItems(ctx context.Context, parentItemID string) ([]entity.ComponentEdge, error) {
	query := `
		SELECT parent_item_id, sub_item_id, quantity
		FROM item_components WHERE parent_item_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, parentItemID)
	if err != nil {
		return nil, fmt.Errorf("list sub items: %w", err)
	}
	defer rows.Close()
	var edges []entity.ComponentEdge
	for rows.Next() {
		var e entity.ComponentEdge
		if err := rows.Scan(&e.ParentItemID, &e.SubItemID, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scan component edge: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}
