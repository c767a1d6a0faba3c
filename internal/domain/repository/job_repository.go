package repository

import (
	"context"
	"time"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
)

// JobRepository is the port over installation jobs and their required item
// lists. The ForUpdate variants lock the job row so the accept/complete
// check-and-set serializes with concurrent attempts on the same job.
type JobRepository interface {
	GetByID(ctx context.Context, id string) (*entity.InstallationJob, error)
	GetForUpdate(ctx context.Context, id string) (*entity.InstallationJob, error)
	// GetForInstallerForUpdate matches a job by the (job, farmer, installer)
	// triple used by the completion flow.
	GetForInstallerForUpdate(ctx context.Context, id, farmerID, installerID string) (*entity.InstallationJob, error)
	MarkAccepted(ctx context.Context, id string, installer entity.InstallerRef, at time.Time) error
	MarkInstalled(ctx context.Context, id string, site entity.SiteMetadata, mediaPaths []string, at time.Time) error
}
