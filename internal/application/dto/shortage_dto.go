package dto

import "github.com/shopspring/decimal"

// ItemShortageDTO is the per-item shortage row of a report.
type ItemShortageDTO struct {
	ItemID         string          `json:"item_id"`
	ItemName       string          `json:"item_name"`
	Unit           string          `json:"unit,omitempty"`
	BOMQuantity    decimal.Decimal `json:"bom_quantity"`
	RequiredQty    decimal.Decimal `json:"required_qty"`
	StockQty       decimal.Decimal `json:"stock_qty"`
	ShortageQty    decimal.Decimal `json:"shortage_qty"`
	PossibleSystem int64           `json:"possible_system"`
}

// VariantShortageDTO is the per-head-class breakdown of a report.
type VariantShortageDTO struct {
	HeadKey         string            `json:"head_key"`
	ReferenceItemID string            `json:"reference_item_id,omitempty"`
	DesiredSystem   int64             `json:"desired_system"`
	PossibleSystem  int64             `json:"possible_system"`
	Items           []ItemShortageDTO `json:"items"`
}

// ShortageSummaryDTO is the report's headline block.
type ShortageSummaryDTO struct {
	TotalDesired   int64 `json:"total_desired"`
	PossibleSystem int64 `json:"possible_system"`
	UnknownDemand  int64 `json:"unknown_demand,omitempty"`
}

// ShortageReport is the full JSON-serializable shortage view for one
// warehouse + system.
type ShortageReport struct {
	WarehouseID   string               `json:"warehouse_id"`
	WarehouseName string               `json:"warehouse_name"`
	SystemID      string               `json:"system_id"`
	SystemName    string               `json:"system_name"`
	Summary       ShortageSummaryDTO   `json:"summary"`
	Items         []ItemShortageDTO    `json:"items"`
	Variants      []VariantShortageDTO `json:"variants"`
}
