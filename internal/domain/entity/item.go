package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a leaf or intermediate node of the BOM graph (pump, motor, cable, clamp...).
type Item struct {
	ID        string
	Name      string
	Unit      string // unit of measure: pcs, mtr, set...
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SystemItemEdge links a system to one of its required items with the
// quantity needed per assembled unit. A system has one edge per required
// item, including one edge per pump head variant.
type SystemItemEdge struct {
	SystemID string
	ItemID   string
	Quantity decimal.Decimal
	Unit     string
}

// ComponentEdge expands an intermediate item (e.g. a pump of a given head)
// into one of its concrete sub-parts for stock purposes. Forms the second
// and deeper levels of the BOM tree.
type ComponentEdge struct {
	ParentItemID string
	SubItemID    string
	Quantity     decimal.Decimal
}
