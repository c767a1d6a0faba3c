package shortage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/bom"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/dto"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/repository"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/config"
)

// UseCase computes how many complete systems the current stock of a
// warehouse supports against outstanding demand, and the per-item shortage.
// Pure read path: it never mutates, so it is safe to run concurrently with
// stock transfers (read-committed snapshot is sufficient).
type UseCase struct {
	classifier    *bom.Classifier
	catalog       repository.CatalogRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	demandRepo    repository.DemandRepository
	cfg           config.BOMConfig
}

// NewUseCase builds the shortage calculator.
func NewUseCase(
	classifier *bom.Classifier,
	catalog repository.CatalogRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	demandRepo repository.DemandRepository,
	cfg config.BOMConfig,
) *UseCase {
	return &UseCase{
		classifier:    classifier,
		catalog:       catalog,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		demandRepo:    demandRepo,
		cfg:           cfg,
	}
}

// headDemand is the per-head-class demand aggregate.
type headDemand struct {
	key       string
	remaining int64
	itemID    string
}

// ComputeShortage builds the shortage report for one system in one
// warehouse. Fails with domain.ErrNotFound when either does not exist.
//
// Bound semantics: an item with zero BOM quantity never constrains the
// possible-system minimum (non-binding); a system with zero common items
// yields a common bound of 0, since nothing can be assembled from an empty
// BOM.
func (uc *UseCase) ComputeShortage(ctx context.Context, systemID, warehouseID string) (*dto.ShortageReport, error) {
	system, err := uc.catalog.GetSystem(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("get system: %w", err)
	}
	if system == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	// 1. Aggregate demand. Every row counts toward totalDesired; rows with
	// a concrete head class feed the per-variant breakdown; unknown-head
	// rows are reported separately and never fulfilled against a variant.
	orders, err := uc.demandRepo.ListBySystemAndWarehouse(ctx, systemID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list demand orders: %w", err)
	}
	var totalDesired, unknownDemand int64
	var heads []headDemand
	headIdx := make(map[string]int)
	for _, order := range orders {
		remaining := order.RemainingDemand()
		totalDesired += remaining
		switch order.HeadKey {
		case "":
			// Whole-system order: no variant attribution.
		case uc.cfg.UnknownHeadLabel:
			unknownDemand += remaining
		default:
			if i, ok := headIdx[order.HeadKey]; ok {
				heads[i].remaining += remaining
				if heads[i].itemID == "" {
					heads[i].itemID = order.ItemID
				}
			} else {
				headIdx[order.HeadKey] = len(heads)
				heads = append(heads, headDemand{key: order.HeadKey, remaining: remaining, itemID: order.ItemID})
			}
		}
	}

	// 2. BOM partition.
	classification, err := uc.classifier.Classify(ctx, systemID)
	if err != nil {
		return nil, err
	}

	// 3. Stock lookup: rows per (warehouse, item) summed, never overwritten.
	stock, err := uc.stockRepo.SumByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("sum warehouse stock: %w", err)
	}

	report := &dto.ShortageReport{
		WarehouseID:   warehouse.ID,
		WarehouseName: warehouse.Name,
		SystemID:      system.ID,
		SystemName:    system.Name,
		Items:         []dto.ItemShortageDTO{},
		Variants:      []dto.VariantShortageDTO{},
	}

	// 4. Common items against total desired.
	desired := decimal.NewFromInt(totalDesired)
	commonRows, commonBound := itemMetrics(classification.Common, desired, stock)
	report.Items = append(report.Items, commonRows...)

	// 5. Per-variant breakdown against that head's own demand.
	for _, head := range heads {
		group := classification.VariantGroup(head.key)
		rows, bound := itemMetrics(group, decimal.NewFromInt(head.remaining), stock)
		report.Items = append(report.Items, rows...)
		report.Variants = append(report.Variants, dto.VariantShortageDTO{
			HeadKey:         head.key,
			ReferenceItemID: head.itemID,
			DesiredSystem:   head.remaining,
			PossibleSystem:  bound,
			Items:           rows,
		})
	}

	report.Summary = dto.ShortageSummaryDTO{
		TotalDesired:   totalDesired,
		PossibleSystem: commonBound,
		UnknownDemand:  unknownDemand,
	}
	return report, nil
}

// itemMetrics computes the per-item shortage rows for one group of BOM
// entries plus the group's possible-system bound: the minimum of
// floor(stock/bomQty) over entries with a positive BOM quantity. Entries
// with zero BOM quantity are excluded from the bound; an empty group bounds
// at 0.
func itemMetrics(entries []bom.Entry, desired decimal.Decimal, stock map[string]decimal.Decimal) ([]dto.ItemShortageDTO, int64) {
	rows := make([]dto.ItemShortageDTO, 0, len(entries))
	var bound int64
	boundSet := false
	for _, e := range entries {
		stockQty, ok := stock[e.Item.ID]
		if !ok {
			stockQty = decimal.Zero
		}
		row := dto.ItemShortageDTO{
			ItemID:      e.Item.ID,
			ItemName:    e.Item.Name,
			Unit:        e.Item.Unit,
			BOMQuantity: e.Quantity,
			StockQty:    stockQty,
		}
		row.RequiredQty = e.Quantity.Mul(desired)
		row.ShortageQty = maxZero(row.RequiredQty.Sub(stockQty))
		if e.Quantity.IsPositive() {
			row.PossibleSystem = stockQty.Div(e.Quantity).Floor().IntPart()
			if !boundSet || row.PossibleSystem < bound {
				bound = row.PossibleSystem
				boundSet = true
			}
		}
		rows = append(rows, row)
	}
	if !boundSet {
		return rows, 0
	}
	return rows, bound
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// StockRows exposes the raw per-row stock view for a warehouse, used by the
// dashboard listing alongside the computed report.
func (uc *UseCase) StockRows(ctx context.Context, warehouseID string) ([]entity.WarehouseStock, error) {
	return uc.stockRepo.ListByWarehouse(ctx, warehouseID)
}

// Warehouses lists warehouses for the dashboard pickers.
func (uc *UseCase) Warehouses(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	return uc.warehouseRepo.List(ctx, limit, offset)
}
