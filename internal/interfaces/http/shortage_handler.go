package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/dto"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/shortage"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
)

// ShortageHandler serves the shortage/allocation reports for dashboards.
type ShortageHandler struct {
	uc *shortage.UseCase
}

// NewShortageHandler builds the handler.
func NewShortageHandler(uc *shortage.UseCase) *ShortageHandler {
	return &ShortageHandler{uc: uc}
}

// Report godoc
// @Summary      Shortage report for a system in a warehouse
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        system_id     query  string  true  "System ID"
// @Param        warehouse_id  query  string  true  "Warehouse ID"
// @Success      200  {object}  dto.ShortageReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/shortage [get]
func (h *ShortageHandler) Report(c *fiber.Ctx) error {
	systemID := c.Query("system_id")
	warehouseID := c.Query("warehouse_id")
	if systemID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "system_id and warehouse_id are required"})
	}
	report, err := h.uc.ComputeShortage(c.Context(), systemID, warehouseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "system or warehouse not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// Warehouses godoc
// @Summary      List warehouses
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Page offset"
// @Success      200  {array}  entity.Warehouse
// @Router       /api/warehouses [get]
func (h *ShortageHandler) Warehouses(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	list, err := h.uc.Warehouses(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(list), "warehouses": list})
}

// StockRows godoc
// @Summary      Raw stock rows of a warehouse
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Warehouse ID"
// @Success      200  {array}  entity.WarehouseStock
// @Router       /api/warehouses/{id}/stock [get]
func (h *ShortageHandler) StockRows(c *fiber.Ctx) error {
	rows, err := h.uc.StockRows(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(rows), "stock": rows})
}
