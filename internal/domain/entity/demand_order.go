package entity

import "github.com/shopspring/decimal"

// DemandOrder is an outstanding order counter for a system in a warehouse.
// HeadKey is the pump head class the order is for ("30M", "50M", ...); empty
// means the order applies to the whole system irrespective of variant.
// ItemID optionally references the pump item of that head class.
// Invariant: TotalDispatched <= TotalOrdered.
type DemandOrder struct {
	WarehouseID     string
	SystemID        string
	HeadKey         string
	ItemID          string
	TotalOrdered    int64
	TotalDispatched int64
}

// RemainingDemand returns the undelivered part of the order, floored at zero.
func (d DemandOrder) RemainingDemand() int64 {
	r := d.TotalOrdered - d.TotalDispatched
	if r < 0 {
		return 0
	}
	return r
}

// RemainingDemandDecimal is RemainingDemand as a decimal for quantity math.
func (d DemandOrder) RemainingDemandDecimal() decimal.Decimal {
	return decimal.NewFromInt(d.RemainingDemand())
}
