package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer movement types.
const (
	TransferTypeCredit  = "CREDIT"  // warehouse -> installer, on job acceptance
	TransferTypeConsume = "CONSUME" // installer -> consumed, on installation completion
)

// TransferMovement is the audit record of one carried-account line change.
// All movements of one accept/complete operation share a TransactionID and
// commit together with the ledger rows they describe.
type TransferMovement struct {
	ID            string
	TransactionID string
	JobID         string
	Installer     InstallerRef
	ItemID        string
	Type          string
	Quantity      decimal.Decimal // positive on credit, negative on consume
	CreatedAt     time.Time
}
