package jobs

import (
	"context"
	"fmt"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/dto"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/logger"
)

// FarmerDetailClient is the port to the farmer-detail enrichment service.
// Lookups carry their own timeout budget; a nil detail with nil error means
// the farmer could not be resolved in time.
type FarmerDetailClient interface {
	GetFarmer(ctx context.Context, farmerID string) (*dto.FarmerDetailDTO, error)
}

// QueryUseCase is the read side of installation jobs: the job with its
// required list, enriched best-effort with farmer details.
type QueryUseCase struct {
	jobRepo repository.JobRepository
	farmers FarmerDetailClient
	log     *logger.Logger
}

// NewQueryUseCase builds the job query usecase. farmers may be nil when no
// enrichment service is configured.
func NewQueryUseCase(jobRepo repository.JobRepository, farmers FarmerDetailClient, log *logger.Logger) *QueryUseCase {
	return &QueryUseCase{jobRepo: jobRepo, farmers: farmers, log: log}
}

// GetJobDetail returns the job view. A failed or timed-out farmer lookup
// degrades to a nil farmer block; it never fails the request.
func (uc *QueryUseCase) GetJobDetail(ctx context.Context, jobID string) (*dto.JobDetailResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}

	resp := &dto.JobDetailResponse{
		JobID:            job.ID,
		FarmerID:         job.FarmerID,
		WarehouseID:      job.WarehouseID,
		SystemID:         job.SystemID,
		InstallerID:      job.Installer.ID,
		InstallerKind:    job.Installer.Kind,
		Accepted:         job.Accepted,
		InstallationDone: job.InstallationDone,
		AcceptedAt:       job.AcceptedAt,
		InstalledAt:      job.InstalledAt,
		Items:            make([]dto.JobItemDTO, 0, len(job.Items)),
	}
	for _, item := range job.Items {
		resp.Items = append(resp.Items, dto.JobItemDTO{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Extra:    item.Extra,
		})
	}

	if uc.farmers != nil && job.FarmerID != "" {
		farmer, err := uc.farmers.GetFarmer(ctx, job.FarmerID)
		if err != nil {
			uc.log.Warn().
				Str("job_id", jobID).
				Str("farmer_id", job.FarmerID).
				Err(err).
				Msg("farmer enrichment failed, returning job without farmer block")
		} else {
			resp.Farmer = farmer
		}
	}
	return resp, nil
}
