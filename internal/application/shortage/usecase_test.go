package shortage_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/bom"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/shortage"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/config"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/logger"
)

type fakeCatalog struct {
	systems    map[string]*entity.System
	items      map[string]*entity.Item
	edges      map[string][]entity.SystemItemEdge
	components map[string][]entity.ComponentEdge
}

func (f *fakeCatalog) GetSystem(_ context.Context, id string) (*entity.System, error) {
	return f.systems[id], nil
}

func (f *fakeCatalog) GetItem(_ context.Context, id string) (*entity.Item, error) {
	return f.items[id], nil
}

func (f *fakeCatalog) ListSystemItems(_ context.Context, systemID string) ([]entity.SystemItemEdge, error) {
	return f.edges[systemID], nil
}

func (f *fakeCatalog) ListSubItems(_ context.Context, parentItemID string) ([]entity.ComponentEdge, error) {
	return f.components[parentItemID], nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}

func (f *fakeWarehouseRepo) List(_ context.Context, _, _ int) ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(f.warehouses))
	for _, w := range f.warehouses {
		out = append(out, w)
	}
	return out, nil
}

type fakeStockRepo struct {
	rows []entity.WarehouseStock
}

func (f *fakeStockRepo) SumByWarehouse(_ context.Context, warehouseID string) (map[string]decimal.Decimal, error) {
	sums := make(map[string]decimal.Decimal)
	for _, r := range f.rows {
		if r.WarehouseID != warehouseID {
			continue
		}
		sums[r.ItemID] = sums[r.ItemID].Add(r.Quantity)
	}
	return sums, nil
}

func (f *fakeStockRepo) ListByWarehouse(_ context.Context, warehouseID string) ([]entity.WarehouseStock, error) {
	var out []entity.WarehouseStock
	for _, r := range f.rows {
		if r.WarehouseID == warehouseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDemandRepo struct {
	orders []entity.DemandOrder
}

func (f *fakeDemandRepo) ListBySystemAndWarehouse(_ context.Context, systemID, warehouseID string) ([]entity.DemandOrder, error) {
	var out []entity.DemandOrder
	for _, o := range f.orders {
		if o.SystemID == systemID && o.WarehouseID == warehouseID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeDemandRepo) AddDispatched(_ context.Context, _, _, _ string, _ int64) error {
	return nil
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func bomCfg() config.BOMConfig {
	return config.BOMConfig{
		PumpHeadClasses:  []string{"30M", "50M", "70M", "100M"},
		UnknownHeadLabel: "UNKNOWN",
		ComponentLabel:   "component",
	}
}

// fixture: one system with a common controller (BOM qty 2), a free manual
// (BOM qty 0) and a 50M pump (BOM qty 1). Controller stock is split across
// two rows on purpose.
func newUseCase() (*shortage.UseCase, *fakeDemandRepo, *fakeStockRepo) {
	catalog := &fakeCatalog{
		systems: map[string]*entity.System{
			"sys1": {ID: "sys1", Name: "2HP AC Solar Pump System"},
		},
		items: map[string]*entity.Item{
			"controller": {ID: "controller", Name: "Pump Controller", Unit: "pcs"},
			"manual":     {ID: "manual", Name: "User Manual", Unit: "pcs"},
			"pump50":     {ID: "pump50", Name: "Submersible Pump 50M", Unit: "pcs"},
		},
		edges: map[string][]entity.SystemItemEdge{
			"sys1": {
				{SystemID: "sys1", ItemID: "controller", Quantity: qty(2)},
				{SystemID: "sys1", ItemID: "manual", Quantity: qty(0)},
				{SystemID: "sys1", ItemID: "pump50", Quantity: qty(1)},
			},
			"sysEmpty": nil,
		},
	}
	catalog.systems["sysEmpty"] = &entity.System{ID: "sysEmpty", Name: "Placeholder System"}

	warehouseRepo := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"wh1": {ID: "wh1", Name: "Bhiwani Warehouse"},
	}}
	stockRepo := &fakeStockRepo{rows: []entity.WarehouseStock{
		{WarehouseID: "wh1", ItemID: "controller", Quantity: qty(6)},
		{WarehouseID: "wh1", ItemID: "controller", Quantity: qty(4), IsUsed: true},
		{WarehouseID: "wh1", ItemID: "pump50", Quantity: qty(3)},
	}}
	demandRepo := &fakeDemandRepo{orders: []entity.DemandOrder{
		{WarehouseID: "wh1", SystemID: "sys1", HeadKey: "50M", ItemID: "pump50", TotalOrdered: 5, TotalDispatched: 1},
	}}

	classifier := bom.NewClassifier(catalog, bomCfg(), logger.Nop())
	uc := shortage.NewUseCase(classifier, catalog, warehouseRepo, stockRepo, demandRepo, bomCfg())
	return uc, demandRepo, stockRepo
}

func TestComputeShortage_Report(t *testing.T) {
	uc, _, _ := newUseCase()

	report, err := uc.ComputeShortage(context.Background(), "sys1", "wh1")
	require.NoError(t, err)

	assert.Equal(t, "wh1", report.WarehouseID)
	assert.Equal(t, "Bhiwani Warehouse", report.WarehouseName)
	assert.Equal(t, int64(4), report.Summary.TotalDesired)
	assert.Equal(t, int64(5), report.Summary.PossibleSystem, "common bound: floor(10/2)")
	assert.Zero(t, report.Summary.UnknownDemand)

	byID := make(map[string]int)
	for i, row := range report.Items {
		byID[row.ItemID] = i
	}

	// Split stock rows are summed, never overwritten.
	controller := report.Items[byID["controller"]]
	assert.True(t, controller.StockQty.Equal(qty(10)), "got %s", controller.StockQty)
	assert.True(t, controller.RequiredQty.Equal(qty(8)))
	assert.True(t, controller.ShortageQty.IsZero())
	assert.Equal(t, int64(5), controller.PossibleSystem)

	// Zero BOM quantity never constrains the bound.
	manual := report.Items[byID["manual"]]
	assert.True(t, manual.RequiredQty.IsZero())
	assert.True(t, manual.ShortageQty.IsZero())

	require.Len(t, report.Variants, 1)
	variant := report.Variants[0]
	assert.Equal(t, "50M", variant.HeadKey)
	assert.Equal(t, "pump50", variant.ReferenceItemID)
	assert.Equal(t, int64(4), variant.DesiredSystem)
	assert.Equal(t, int64(3), variant.PossibleSystem)
	require.Len(t, variant.Items, 1)
	assert.True(t, variant.Items[0].ShortageQty.Equal(qty(1)), "need 4, have 3")
}

func TestComputeShortage_ExactStockMeansNoShortage(t *testing.T) {
	uc, demandRepo, stockRepo := newUseCase()
	// Stock set to exactly BOM x remaining demand.
	demandRepo.orders = []entity.DemandOrder{
		{WarehouseID: "wh1", SystemID: "sys1", HeadKey: "50M", ItemID: "pump50", TotalOrdered: 3},
	}
	stockRepo.rows = []entity.WarehouseStock{
		{WarehouseID: "wh1", ItemID: "controller", Quantity: qty(6)},
		{WarehouseID: "wh1", ItemID: "pump50", Quantity: qty(3)},
	}

	report, err := uc.ComputeShortage(context.Background(), "sys1", "wh1")
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.Summary.PossibleSystem)
	for _, row := range report.Items {
		assert.True(t, row.ShortageQty.IsZero(), "item %s", row.ItemID)
	}
	assert.Equal(t, int64(3), report.Variants[0].PossibleSystem)
}

func TestComputeShortage_UnknownHeadDemand(t *testing.T) {
	uc, demandRepo, _ := newUseCase()
	demandRepo.orders = append(demandRepo.orders, entity.DemandOrder{
		WarehouseID: "wh1", SystemID: "sys1", HeadKey: "UNKNOWN", TotalOrdered: 2,
	})

	report, err := uc.ComputeShortage(context.Background(), "sys1", "wh1")
	require.NoError(t, err)

	// Unknown-head orders count toward total demand but never get a
	// variant breakdown.
	assert.Equal(t, int64(6), report.Summary.TotalDesired)
	assert.Equal(t, int64(2), report.Summary.UnknownDemand)
	require.Len(t, report.Variants, 1)
	assert.Equal(t, "50M", report.Variants[0].HeadKey)
}

func TestComputeShortage_EmptyCommonBoundsAtZero(t *testing.T) {
	uc, demandRepo, _ := newUseCase()
	demandRepo.orders = []entity.DemandOrder{
		{WarehouseID: "wh1", SystemID: "sysEmpty", TotalOrdered: 7},
	}

	report, err := uc.ComputeShortage(context.Background(), "sysEmpty", "wh1")
	require.NoError(t, err)

	assert.Equal(t, int64(7), report.Summary.TotalDesired)
	assert.Zero(t, report.Summary.PossibleSystem, "nothing can be assembled from an empty BOM")
	assert.Empty(t, report.Items)
}

func TestComputeShortage_NotFound(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.ComputeShortage(context.Background(), "missing", "wh1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ComputeShortage(context.Background(), "sys1", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockRows(t *testing.T) {
	uc, _, stockRepo := newUseCase()

	rows, err := uc.StockRows(context.Background(), "wh1")
	require.NoError(t, err)
	assert.Len(t, rows, len(stockRepo.rows))
}

func TestWarehouses(t *testing.T) {
	uc, _, _ := newUseCase()

	list, err := uc.Warehouses(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "wh1", list[0].ID)
}
