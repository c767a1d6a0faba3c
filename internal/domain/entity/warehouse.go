package entity

import "time"

// Warehouse is a physical store holding component stock.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
