package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/dto"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/logger"
)

// UseCase applies atomic component movements between the warehouse ledger
// and per-installer carried accounts as installation lifecycle events
// occur. Both operations are all-or-nothing: any violated precondition
// aborts the transaction and no partial credit or debit is persisted.
type UseCase struct {
	txRunner      TxRunner
	installerRepo repository.InstallerRepository
	log           *logger.Logger
}

// NewUseCase builds the stock transfer engine.
func NewUseCase(txRunner TxRunner, installerRepo repository.InstallerRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, installerRepo: installerRepo, log: log}
}

// CompleteInput carries the completion request: the job matched by the
// (job, farmer, installer) triple plus site metadata and the media paths
// recorded opaquely (upload handling lives outside this core).
type CompleteInput struct {
	JobID       string
	FarmerID    string
	InstallerID string
	Site        entity.SiteMetadata
	MediaPaths  []string
}

// AcceptJob credits the installer's carried account with every required
// item of the job (main list then extra list), merging by item id, and
// marks the job accepted. The check-and-set on the accepted flag runs
// inside the same transaction as the ledger credit, so a job can never be
// accepted twice.
func (uc *UseCase) AcceptJob(ctx context.Context, jobID, installerID string) (*dto.TransferResponse, error) {
	if jobID == "" || installerID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Resolve which of the two roles the installer id belongs to.
	installer, err := uc.installerRepo.ResolveKind(ctx, installerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(
		jobRepo repository.JobRepository,
		accountRepo repository.CarriedAccountRepository,
		movementRepo repository.TransferMovementRepository,
	) error {
		job, err := jobRepo.GetForUpdate(ctx, jobID)
		if err != nil {
			return err
		}
		if job == nil {
			return domain.ErrNotFound
		}
		if job.InstallationDone {
			return domain.ErrAlreadyInstalled
		}
		if job.Accepted {
			return domain.ErrAlreadyAccepted
		}

		account, err := accountRepo.GetForUpdate(ctx, installer)
		if err != nil {
			return err
		}
		if account == nil {
			// First credit creates the account lazily.
			account = &entity.CarriedAccount{Installer: installer}
		}
		for _, item := range append(job.MainItems(), job.ExtraItems()...) {
			account.Credit(item.ItemID, item.Quantity)
			mov := &entity.TransferMovement{
				ID:            uuid.New().String(),
				TransactionID: txID,
				JobID:         jobID,
				Installer:     installer,
				ItemID:        item.ItemID,
				Type:          entity.TransferTypeCredit,
				Quantity:      item.Quantity,
				CreatedAt:     now,
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		account.UpdatedAt = now
		if err := accountRepo.Save(ctx, account); err != nil {
			return err
		}
		return jobRepo.MarkAccepted(ctx, jobID, installer, now)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("job_id", jobID).
		Str("installer_id", installerID).
		Str("installer_kind", installer.Kind).
		Msg("job accepted, carried account credited")
	return &dto.TransferResponse{Success: true, JobID: jobID}, nil
}

// CompleteInstallation debits the installer's carried account with every
// required item of the job and marks the installation done. The debit is
// validate-then-commit: all lines are decremented on an in-memory copy
// first, and nothing is persisted when any line is missing or short. Error
// reporting references the first failing item in job list order.
func (uc *UseCase) CompleteInstallation(ctx context.Context, in CompleteInput) (*dto.TransferResponse, error) {
	if in.JobID == "" || in.InstallerID == "" || in.FarmerID == "" {
		return nil, domain.ErrInvalidInput
	}

	installer, err := uc.installerRepo.ResolveKind(ctx, in.InstallerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txID := uuid.New().String()
	err = uc.txRunner.Run(ctx, func(
		jobRepo repository.JobRepository,
		accountRepo repository.CarriedAccountRepository,
		movementRepo repository.TransferMovementRepository,
	) error {
		job, err := jobRepo.GetForInstallerForUpdate(ctx, in.JobID, in.FarmerID, in.InstallerID)
		if err != nil {
			return err
		}
		if job == nil {
			return domain.ErrNotFound
		}
		if job.InstallationDone {
			return domain.ErrAlreadyInstalled
		}

		account, err := accountRepo.GetForUpdate(ctx, installer)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}

		// Tentative decrements on a copy; the stored account stays intact
		// until every line validated.
		working := account.Clone()
		for _, item := range append(job.MainItems(), job.ExtraItems()...) {
			if !working.Debit(item.ItemID, item.Quantity) {
				return fmt.Errorf("item %s: %w", item.ItemID, domain.ErrInsufficientStock)
			}
		}
		for _, item := range append(job.MainItems(), job.ExtraItems()...) {
			mov := &entity.TransferMovement{
				ID:            uuid.New().String(),
				TransactionID: txID,
				JobID:         in.JobID,
				Installer:     installer,
				ItemID:        item.ItemID,
				Type:          entity.TransferTypeConsume,
				Quantity:      item.Quantity.Neg(),
				CreatedAt:     now,
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		working.UpdatedAt = now
		if err := accountRepo.Save(ctx, working); err != nil {
			return err
		}
		return jobRepo.MarkInstalled(ctx, in.JobID, in.Site, in.MediaPaths, now)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("job_id", in.JobID).
		Str("installer_id", in.InstallerID).
		Str("farmer_id", in.FarmerID).
		Msg("installation completed, carried account debited")
	return &dto.TransferResponse{Success: true, JobID: in.JobID}, nil
}
