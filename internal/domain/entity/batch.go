package entity

import "time"

// Batch lote de producción fechado de un Product.
// ExpiryDate la calcula el cliente (mfd + shelf_life_days) y se almacena tal
// cual llega; el servidor no la recalcula.
type Batch struct {
	ID               string
	BatchNo          string // único
	ProductID        string
	QuantityProduced int
	ManufacturedDate time.Time
	ExpiryDate       time.Time
	CreatedAt        time.Time
}
