package entity

import "time"

// Outlet punto de venta de la panadería.
type Outlet struct {
	ID         string
	OutletName string
	Location   string
	ContactNo  string
	IsActive   bool
}

// OutletStock existencias de un lote en un outlet. Única por (outlet, batch).
type OutletStock struct {
	ID                string
	OutletID          string
	BatchID           string
	CurrentQuantity   int
	MinimumStockLevel int
	LastUpdated       time.Time
}
