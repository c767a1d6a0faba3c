package entity

import "time"

// System is the root of a BOM tree: one installable solar-pump configuration family.
type System struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
