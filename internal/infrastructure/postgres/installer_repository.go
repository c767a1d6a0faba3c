package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

var _ repository.InstallerRepository = (*InstallerRepo)(nil)

// InstallerRepo resolves installer ids against the two role tables.
type InstallerRepo struct {
	q Querier
}

// NewInstallerRepository builds the installer adapter.
func NewInstallerRepository(q Querier) *InstallerRepo {
	return &InstallerRepo{q: q}
}

// ResolveKind checks service_persons first, then survey_persons, and
// returns the tagged reference. Neither matching is domain.ErrNotFound.
func (r *InstallerRepo) ResolveKind(ctx context.Context, installerID string) (entity.InstallerRef, error) {
	exists, err := r.existsIn(ctx, "service_persons", installerID)
	if err != nil {
		return entity.InstallerRef{}, err
	}
	if exists {
		return entity.InstallerRef{Kind: entity.InstallerKindService, ID: installerID}, nil
	}
	exists, err = r.existsIn(ctx, "survey_persons", installerID)
	if err != nil {
		return entity.InstallerRef{}, err
	}
	if exists {
		return entity.InstallerRef{Kind: entity.InstallerKindSurvey, ID: installerID}, nil
	}
	return entity.InstallerRef{}, domain.ErrNotFound
}

func (r *InstallerRepo) existsIn(ctx context.Context, table, id string) (bool, error) {
	// table is one of two fixed names, never user input.
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE id = $1`, table)
	var one int
	err := r.q.QueryRow(ctx, query, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup %s: %w", table, err)
	}
	return true, nil
}
