package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutletStockResponse fila aplanada de existencias para la vista del outlet.
type OutletStockResponse struct {
	StockID         string          `json:"stock_id"`
	CurrentQuantity int             `json:"current_quantity"`
	BatchNo         string          `json:"batch_no"`
	ProductName     string          `json:"product_name"`
	Price           decimal.Decimal `json:"price"`
	ExpiryDate      time.Time       `json:"expiry_date"`
}
