package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo adapter over installation_jobs and installation_job_items.
type JobRepo struct {
	q Querier
}

// NewJobRepository builds the job adapter. Pass pool or tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobColumns = `
	id, farmer_id, warehouse_id, system_id,
	COALESCE(installer_id, ''), COALESCE(installer_kind, ''),
	accepted, installation_done, accepted_at, installed_at,
	site_latitude, site_longitude, COALESCE(site_remarks, ''),
	media_paths, created_at`

// GetByID fetches a job with its required item list. Returns nil when
// absent.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*entity.InstallationJob, error) {
	query := `SELECT ` + jobColumns + ` FROM installation_jobs WHERE id = $1`
	return r.scanJob(ctx, r.q.QueryRow(ctx, query, id))
}

// GetForUpdate fetches a job and locks its row so the accept check-and-set
// serializes with concurrent attempts.
func (r *JobRepo) GetForUpdate(ctx context.Context, id string) (*entity.InstallationJob, error) {
	query := `SELECT ` + jobColumns + ` FROM installation_jobs WHERE id = $1 FOR UPDATE`
	return r.scanJob(ctx, r.q.QueryRow(ctx, query, id))
}

// GetForInstallerForUpdate matches a job by the (job, farmer, installer)
// triple used by the completion flow, with a row lock.
func (r *JobRepo) GetForInstallerForUpdate(ctx context.Context, id, farmerID, installerID string) (*entity.InstallationJob, error) {
	query := `SELECT ` + jobColumns + `
		FROM installation_jobs
		WHERE id = $1 AND farmer_id = $2 AND installer_id = $3
		FOR UPDATE`
	return r.scanJob(ctx, r.q.QueryRow(ctx, query, id, farmerID, installerID))
}

func (r *JobRepo) scanJob(ctx context.Context, row pgx.Row) (*entity.InstallationJob, error) {
	var j entity.InstallationJob
	var lat, lng *float64
	var remarks string
	err := row.Scan(
		&j.ID, &j.FarmerID, &j.WarehouseID, &j.SystemID,
		&j.Installer.ID, &j.Installer.Kind,
		&j.Accepted, &j.InstallationDone, &j.AcceptedAt, &j.InstalledAt,
		&lat, &lng, &remarks,
		&j.MediaPaths, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	if lat != nil && lng != nil {
		j.Site = &entity.SiteMetadata{Latitude: *lat, Longitude: *lng, Remarks: remarks}
	}
	items, err := r.listItems(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	j.Items = items
	return &j, nil
}

// listItems returns the required list in job order: main list first, then
// the extra list, each in dispatcher insertion order.
func (r *JobRepo) listItems(ctx context.Context, jobID string) ([]entity.JobItem, error) {
	query := `
		SELECT item_id, quantity, extra
		FROM installation_job_items
		WHERE job_id = $1
		ORDER BY extra, position`
	rows, err := r.q.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job items: %w", err)
	}
	defer rows.Close()
	var items []entity.JobItem
	for rows.Next() {
		var it entity.JobItem
		if err := rows.Scan(&it.ItemID, &it.Quantity, &it.Extra); err != nil {
			return nil, fmt.Errorf("scan job item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// MarkAccepted stamps the acceptance metadata and flips the one-way
// accepted flag.
func (r *JobRepo) MarkAccepted(ctx context.Context, id string, installer entity.InstallerRef, at time.Time) error {
	query := `
		UPDATE installation_jobs
		SET accepted = TRUE, installer_id = $2, installer_kind = $3, accepted_at = $4
		WHERE id = $1 AND accepted = FALSE`
	cmd, err := r.q.Exec(ctx, query, id, installer.ID, installer.Kind, at)
	if err != nil {
		return fmt.Errorf("mark accepted: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("mark accepted %s: no row updated", id)
	}
	return nil
}

// MarkInstalled records the site metadata and media paths and flips the
// one-way installation_done flag.
func (r *JobRepo) MarkInstalled(ctx context.Context, id string, site entity.SiteMetadata, mediaPaths []string, at time.Time) error {
	query := `
		UPDATE installation_jobs
		SET installation_done = TRUE, site_latitude = $2, site_longitude = $3,
		    site_remarks = $4, media_paths = $5, installed_at = $6
		WHERE id = $1 AND installation_done = FALSE`
	cmd, err := r.q.Exec(ctx, query, id, site.Latitude, site.Longitude, site.Remarks, mediaPaths, at)
	if err != nil {
		return fmt.Errorf("mark installed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("mark installed %s: no row updated", id)
	}
	return nil
}
