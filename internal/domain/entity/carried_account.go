package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarriedLine is the quantity of one item an installer currently holds.
// Invariant: Quantity >= 0.
type CarriedLine struct {
	ItemID   string
	Quantity decimal.Decimal
}

// CarriedAccount is the per-installer stock ledger: the components credited
// on job acceptance and consumed on installation. At most one account per
// (installer id, installer kind); created lazily on first credit.
type CarriedAccount struct {
	Installer InstallerRef
	Lines     []CarriedLine
	UpdatedAt time.Time
}

// Line returns a pointer to the line for itemID, or nil if absent.
func (a *CarriedAccount) Line(itemID string) *CarriedLine {
	for i := range a.Lines {
		if a.Lines[i].ItemID == itemID {
			return &a.Lines[i]
		}
	}
	return nil
}

// Credit adds qty to the item's line, merging by item id instead of
// appending a duplicate line.
func (a *CarriedAccount) Credit(itemID string, qty decimal.Decimal) {
	if line := a.Line(itemID); line != nil {
		line.Quantity = line.Quantity.Add(qty)
		return
	}
	a.Lines = append(a.Lines, CarriedLine{ItemID: itemID, Quantity: qty})
}

// Debit subtracts qty from the item's line. Returns false when the line is
// missing or cannot cover qty; the account is left untouched in that case.
func (a *CarriedAccount) Debit(itemID string, qty decimal.Decimal) bool {
	line := a.Line(itemID)
	if line == nil || line.Quantity.LessThan(qty) {
		return false
	}
	line.Quantity = line.Quantity.Sub(qty)
	return true
}

// Clone deep-copies the account so a validation pass can decrement in memory
// without touching the original.
func (a *CarriedAccount) Clone() *CarriedAccount {
	cp := &CarriedAccount{Installer: a.Installer, UpdatedAt: a.UpdatedAt}
	cp.Lines = make([]CarriedLine, len(a.Lines))
	copy(cp.Lines, a.Lines)
	return cp
}
