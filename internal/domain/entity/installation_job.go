package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobItem is one required component line of an installation job. Extra marks
// the supplementary list appended by the dispatcher after the main list.
type JobItem struct {
	ItemID   string
	Quantity decimal.Decimal
	Extra    bool
}

// SiteMetadata is the geo/remarks payload captured when an installation is
// reported done.
type SiteMetadata struct {
	Latitude  float64
	Longitude float64
	Remarks   string
}

// InstallationJob is one farmer/site installation request. Lifecycle:
// created -> accepted (credits the installer's carried account) ->
// installation done (debits the carried account). Each transition is
// one-way and guarded by a check-and-set inside the same transaction that
// mutates the ledger.
type InstallationJob struct {
	ID               string
	FarmerID         string
	WarehouseID      string
	SystemID         string
	Installer        InstallerRef
	Items            []JobItem
	Accepted         bool
	InstallationDone bool
	AcceptedAt       *time.Time
	InstalledAt      *time.Time
	Site             *SiteMetadata
	MediaPaths       []string
	CreatedAt        time.Time
}

// MainItems returns the primary required list in job order.
func (j *InstallationJob) MainItems() []JobItem {
	return j.filterItems(false)
}

// ExtraItems returns the supplementary list in job order.
func (j *InstallationJob) ExtraItems() []JobItem {
	return j.filterItems(true)
}

func (j *InstallationJob) filterItems(extra bool) []JobItem {
	var out []JobItem
	for _, it := range j.Items {
		if it.Extra == extra {
			out = append(out, it)
		}
	}
	return out
}

// TotalQuantity sums all required quantities (main + extra) for an item.
func (j *InstallationJob) TotalQuantity(itemID string) decimal.Decimal {
	total := decimal.Zero
	for _, it := range j.Items {
		if it.ItemID == itemID {
			total = total.Add(it.Quantity)
		}
	}
	return total
}
