package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AcceptJobRequest body for POST /api/jobs/:id/accept.
type AcceptJobRequest struct {
	InstallerID string `json:"installer_id" validate:"required"`
}

// CompleteInstallationRequest body for POST /api/jobs/:id/complete.
type CompleteInstallationRequest struct {
	InstallerID string   `json:"installer_id" validate:"required"`
	FarmerID    string   `json:"farmer_id" validate:"required"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Remarks     string   `json:"remarks,omitempty"`
	MediaPaths  []string `json:"media_paths,omitempty"`
}

// TransferResponse result of an accept/complete operation.
type TransferResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"job_id"`
}

// JobItemDTO one required component line of a job.
type JobItemDTO struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Extra    bool            `json:"extra,omitempty"`
}

// FarmerDetailDTO is the best-effort enrichment block; nil when the farmer
// service times out or fails.
type FarmerDetailDTO struct {
	FarmerID string `json:"farmer_id"`
	Name     string `json:"name"`
	Village  string `json:"village,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

// JobDetailResponse job view with its required list and optional farmer
// enrichment.
type JobDetailResponse struct {
	JobID            string           `json:"job_id"`
	FarmerID         string           `json:"farmer_id"`
	WarehouseID      string           `json:"warehouse_id"`
	SystemID         string           `json:"system_id"`
	InstallerID      string           `json:"installer_id,omitempty"`
	InstallerKind    string           `json:"installer_kind,omitempty"`
	Accepted         bool             `json:"accepted"`
	InstallationDone bool             `json:"installation_done"`
	AcceptedAt       *time.Time       `json:"accepted_at,omitempty"`
	InstalledAt      *time.Time       `json:"installed_at,omitempty"`
	Items            []JobItemDTO     `json:"items"`
	Farmer           *FarmerDetailDTO `json:"farmer,omitempty"`
}
