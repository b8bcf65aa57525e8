package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	ProductName     string          `json:"product_name" validate:"required,min=1,max=100"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	BasePrice       decimal.Decimal `json:"base_price"`
	ShelfLifeDays   int             `json:"shelf_life_days"`
	MeasurementType string          `json:"measurement_type" validate:"required,oneof=PCS KG BOX LITRE"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	ProductName     string          `json:"product_name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	BasePrice       decimal.Decimal `json:"base_price"`
	ShelfLifeDays   int             `json:"shelf_life_days"`
	MeasurementType string          `json:"measurement_type"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateProductResponse mensaje + producto creado.
type CreateProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}
