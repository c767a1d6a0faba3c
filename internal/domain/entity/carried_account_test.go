package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/domain/entity"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestCarriedAccount_CreditMergesByItem(t *testing.T) {
	a := &entity.CarriedAccount{}
	a.Credit("cable", qty(40))
	a.Credit("pump50", qty(1))
	a.Credit("cable", qty(25))

	require.Len(t, a.Lines, 2)
	assert.True(t, a.Line("cable").Quantity.Equal(qty(65)))
	assert.True(t, a.Line("pump50").Quantity.Equal(qty(1)))
}

func TestCarriedAccount_Debit(t *testing.T) {
	a := &entity.CarriedAccount{}
	a.Credit("cable", qty(40))

	assert.True(t, a.Debit("cable", qty(15)))
	assert.True(t, a.Line("cable").Quantity.Equal(qty(25)))

	// Short line: refused and untouched.
	assert.False(t, a.Debit("cable", qty(26)))
	assert.True(t, a.Line("cable").Quantity.Equal(qty(25)))

	// Missing line: refused.
	assert.False(t, a.Debit("pump50", qty(1)))
	assert.Nil(t, a.Line("pump50"))
}

func TestCarriedAccount_CloneIsIndependent(t *testing.T) {
	a := &entity.CarriedAccount{}
	a.Credit("cable", qty(40))

	cp := a.Clone()
	require.True(t, cp.Debit("cable", qty(40)))

	assert.True(t, cp.Line("cable").Quantity.IsZero())
	assert.True(t, a.Line("cable").Quantity.Equal(qty(40)), "original untouched")
}

func TestDemandOrder_RemainingDemand(t *testing.T) {
	assert.Equal(t, int64(4), entity.DemandOrder{TotalOrdered: 5, TotalDispatched: 1}.RemainingDemand())
	assert.Equal(t, int64(0), entity.DemandOrder{TotalOrdered: 3, TotalDispatched: 3}.RemainingDemand())
	// Over-dispatch never goes negative.
	assert.Equal(t, int64(0), entity.DemandOrder{TotalOrdered: 2, TotalDispatched: 5}.RemainingDemand())
}
