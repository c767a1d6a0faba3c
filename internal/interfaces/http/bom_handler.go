package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/bom"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/dto"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
)

// BOMHandler serves the common/variant partition of a system's BOM.
type BOMHandler struct {
	classifier *bom.Classifier
}

// NewBOMHandler builds the handler.
func NewBOMHandler(classifier *bom.Classifier) *BOMHandler {
	return &BOMHandler{classifier: classifier}
}

// Classify godoc
// @Summary      Classify a system's BOM into common and variant items
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "System ID"
// @Success      200  {object}  dto.ClassificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/systems/{id}/bom [get]
func (h *BOMHandler) Classify(c *fiber.Ctx) error {
	systemID := c.Params("id")
	classification, err := h.classifier.Classify(c.Context(), systemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "system not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(classification.ToResponse())
}
