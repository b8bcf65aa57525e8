package dto

import "time"

// CreateBatchRequest entrada para registrar un lote de producción.
// La referencia al producto es por id (los nombres no son únicos a largo plazo).
// ExpiryDate la calcula el cliente como mfd + shelf_life_days y se guarda tal cual.
type CreateBatchRequest struct {
	ProductID        string `json:"product_id" validate:"required"`
	BatchNo          string `json:"batch_no" validate:"required,max=50"`
	QuantityProduced int    `json:"quantity_produced"`
	ManufacturedDate string `json:"manufactured_date" validate:"required"` // 2006-01-02
	ExpiryDate       string `json:"expiry_date" validate:"required"`       // 2006-01-02
}

// BatchResponse salida de un lote.
type BatchResponse struct {
	ID               string    `json:"id"`
	BatchNo          string    `json:"batch_no"`
	ProductID        string    `json:"product_id"`
	QuantityProduced int       `json:"quantity_produced"`
	ManufacturedDate time.Time `json:"manufactured_date"`
	ExpiryDate       time.Time `json:"expiry_date"`
}

// CreateBatchResponse mensaje + lote creado.
type CreateBatchResponse struct {
	Message string        `json:"message"`
	Batch   BatchResponse `json:"batch"`
}
