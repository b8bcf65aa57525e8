package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutletStockResult fila aplanada de existencias para el frontend
// (stock + lote + producto en una sola consulta).
type OutletStockResult struct {
	StockID         string
	CurrentQuantity int
	BatchNo         string
	ProductName     string
	Price           decimal.Decimal
	ExpiryDate      time.Time
}

// OutletStockRepository puerto de lectura de existencias por outlet.
type OutletStockRepository interface {
	// ListAvailableByOutlet devuelve stock con cantidad > 0 ordenado por
	// expiry_date ascendente (lógica FIFO: lo que vence primero sale primero).
	ListAvailableByOutlet(outletID string) ([]OutletStockResult, error)
}
