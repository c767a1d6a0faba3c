package bom_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbom "github.com/DiksySingh/InventorySystem2-sub002/internal/application/bom"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/config"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/logger"
)

// fakeCatalog is an in-memory CatalogRepository for classifier tests.
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

func bomCfg() config.BOMConfig {
	return config.BOMConfig{
		PumpHeadClasses:  []string{"30M", "50M", "70M", "100M"},
		UnknownHeadLabel: "UNKNOWN",
		ComponentLabel:   "component",
	}
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func buildCatalog() *fakeCatalog {
	return &fakeCatalog{
		systems: map[string]*entity.System{
			"sys1": {ID: "sys1", Name: "3HP DC Solar Pump System"},
			"sys2": {ID: "sys2", Name: "Empty System"},
		},
		items: map[string]*entity.Item{
			"controller": {ID: "controller", Name: "Pump Controller", Unit: "pcs"},
			"structure":  {ID: "structure", Name: "Mounting Structure", Unit: "set"},
			"pump50":     {ID: "pump50", Name: "Submersible Pump 50M", Unit: "pcs"},
			"pump30":     {ID: "pump30", Name: "Submersible Pump 30M", Unit: "pcs"},
			"motor50":    {ID: "motor50", Name: "Motor Assembly", Unit: "pcs"},
			"rotor":      {ID: "rotor", Name: "Rotor Shaft", Unit: "pcs"},
			"cable":      {ID: "cable", Name: "Copper Cable", Unit: "mtr"},
		},
		edges: map[string][]entity.SystemItemEdge{
			"sys1": {
				{SystemID: "sys1", ItemID: "controller", Quantity: qty(1)},
				{SystemID: "sys1", ItemID: "cable", Quantity: qty(4)},
				{SystemID: "sys1", ItemID: "pump50", Quantity: qty(1)},
				{SystemID: "sys1", ItemID: "pump30", Quantity: qty(1)},
				{SystemID: "sys1", ItemID: "structure", Quantity: qty(1)},
				{SystemID: "sys1", ItemID: "ghost", Quantity: qty(2)}, // dangling reference
			},
		},
		components: map[string][]entity.ComponentEdge{
			"pump50": {
				{ParentItemID: "pump50", SubItemID: "cable", Quantity: qty(2)},
				{ParentItemID: "pump50", SubItemID: "motor50", Quantity: qty(1)},
			},
			"motor50": {
				{ParentItemID: "motor50", SubItemID: "rotor", Quantity: qty(1)},
				// Duplicate within the 50M group; first occurrence must win.
				{ParentItemID: "motor50", SubItemID: "cable", Quantity: qty(9)},
			},
			"pump30": {
				{ParentItemID: "pump30", SubItemID: "cable", Quantity: qty(1)},
			},
		},
	}
}

func TestClassify_PartitionsCommonAndVariants(t *testing.T) {
	classifier := appbom.NewClassifier(buildCatalog(), bomCfg(), logger.Nop())

	result, err := classifier.Classify(context.Background(), "sys1")
	require.NoError(t, err)

	// cable was listed as a direct edge but is pulled in as a variant
	// component, so it must not stay common; ghost is skipped.
	commonIDs := make([]string, 0, len(result.Common))
	for _, e := range result.Common {
		commonIDs = append(commonIDs, e.Item.ID)
	}
	assert.Equal(t, []string{"controller", "structure"}, commonIDs)

	// Depth-first in edge order: pump50's own edges first, then motor50's
	// subtree.
	group50 := result.VariantGroup("50M")
	require.Len(t, group50, 4)
	assert.Equal(t, "pump50", group50[0].Item.ID)
	assert.Equal(t, "50M", group50[0].Key)
	assert.Equal(t, "cable", group50[1].Item.ID)
	assert.Equal(t, "component", group50[1].Key)
	assert.Equal(t, "motor50", group50[2].Item.ID)
	assert.Equal(t, "rotor", group50[3].Item.ID)
	// First occurrence wins: pump50 -> cable qty 2, not motor50's qty 9.
	assert.True(t, group50[1].Quantity.Equal(qty(2)), "got %s", group50[1].Quantity)

	group30 := result.VariantGroup("30M")
	require.Len(t, group30, 2)
	assert.Equal(t, "pump30", group30[0].Item.ID)
	// The same sub-item may appear in a different variant group.
	assert.Equal(t, "cable", group30[1].Item.ID)
	assert.True(t, group30[1].Quantity.Equal(qty(1)))
}

func TestClassify_EmptySystem(t *testing.T) {
	classifier := appbom.NewClassifier(buildCatalog(), bomCfg(), logger.Nop())

	result, err := classifier.Classify(context.Background(), "sys2")
	require.NoError(t, err)
	assert.Empty(t, result.Common)
	assert.Empty(t, result.Variants)
}

func TestClassify_SystemNotFound(t *testing.T) {
	classifier := appbom.NewClassifier(buildCatalog(), bomCfg(), logger.Nop())

	_, err := classifier.Classify(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClassify_CycleIsIgnored(t *testing.T) {
	catalog := buildCatalog()
	// rotor -> pump50 closes a cycle; the visited guard must stop the walk.
	catalog.components["rotor"] = []entity.ComponentEdge{
		{ParentItemID: "rotor", SubItemID: "pump50", Quantity: qty(1)},
	}
	classifier := appbom.NewClassifier(catalog, bomCfg(), logger.Nop())

	result, err := classifier.Classify(context.Background(), "sys1")
	require.NoError(t, err)
	// pump50 appears exactly once in the 50M group despite the cycle.
	count := 0
	for _, e := range result.VariantGroup("50M") {
		if e.Item.ID == "pump50" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestClassify_ToResponse(t *testing.T) {
	classifier := appbom.NewClassifier(buildCatalog(), bomCfg(), logger.Nop())

	result, err := classifier.Classify(context.Background(), "sys1")
	require.NoError(t, err)

	resp := result.ToResponse()
	assert.Equal(t, "sys1", resp.SystemID)
	assert.Len(t, resp.CommonItems, len(result.Common))
	assert.Len(t, resp.VariantItems, len(result.Variants))
	assert.Equal(t, "50M", resp.VariantItems[0].Group)
}
