package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/dto"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/jobs"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/transfer"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/validator"
)

// JobHandler serves the installation job lifecycle endpoints (protected).
type JobHandler struct {
	transferUC *transfer.UseCase
	queryUC    *jobs.QueryUseCase
}

// NewJobHandler builds the handler.
func NewJobHandler(transferUC *transfer.UseCase, queryUC *jobs.QueryUseCase) *JobHandler {
	return &JobHandler{transferUC: transferUC, queryUC: queryUC}
}

// Accept godoc
// @Summary      Accept an installation job
// @Description  Credits every required item of the job into the installer's
// carried account and marks the job accepted, atomically.
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Job ID"
// @Param        body  body  dto.AcceptJobRequest  true  "installer_id"
// @Success      200  {object}  dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/accept [post]
func (h *JobHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION", "errors": errs})
	}
	resp, err := h.transferUC.AcceptJob(c.Context(), c.Params("id"), in.InstallerID)
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(resp)
}

// Complete godoc
// @Summary      Report an installation as done
// @Description  Debits every required item from the installer's carried
// account, records site metadata and marks the job done; fails whole when
// any line is short.
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "Job ID"
// @Param        body  body  dto.CompleteInstallationRequest  true  "installer_id, farmer_id, site"
// @Success      200  {object}  dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id}/complete [post]
func (h *JobHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteInstallationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION", "errors": errs})
	}
	resp, err := h.transferUC.CompleteInstallation(c.Context(), transfer.CompleteInput{
		JobID:       c.Params("id"),
		FarmerID:    in.FarmerID,
		InstallerID: in.InstallerID,
		Site: entity.SiteMetadata{
			Latitude:  in.Latitude,
			Longitude: in.Longitude,
			Remarks:   in.Remarks,
		},
		MediaPaths: in.MediaPaths,
	})
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(resp)
}

// Detail godoc
// @Summary      Installation job detail
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  dto.JobDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Detail(c *fiber.Ctx) error {
	resp, err := h.queryUC.GetJobDetail(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "job not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// transferError maps stock transfer errors to HTTP responses.
func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid input"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "job, installer or carried account not found"})
	case errors.Is(err, domain.ErrAlreadyAccepted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ACCEPTED", Message: "job already accepted"})
	case errors.Is(err, domain.ErrAlreadyInstalled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_INSTALLED", Message: "installation already done"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrStorageConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STORAGE_CONFLICT", Message: "conflict, retry the operation"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
