package dto

import "github.com/shopspring/decimal"

// BOMItemDTO is one resolved BOM entry with its per-unit-system quantity.
// For variant entries Key is the pump head class, or "component" for
// sub-parts pulled in under a variant; Group is the head class the entry
// counts against.
type BOMItemDTO struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Unit     string          `json:"unit,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Key      string          `json:"key,omitempty"`
	Group    string          `json:"group,omitempty"`
}

// ClassificationResponse is the common/variant partition of a system's BOM.
type ClassificationResponse struct {
	SystemID     string       `json:"system_id"`
	CommonItems  []BOMItemDTO `json:"common_items"`
	VariantItems []BOMItemDTO `json:"variant_items"`
}
