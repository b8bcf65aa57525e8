package repository

import "github.com/bakeryhub/bakeryhub-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(id string) (*entity.Product, error)
	GetByName(productName string) (*entity.Product, error)
	// ListActive devuelve los productos activos ordenados por nombre.
	ListActive() ([]*entity.Product, error)
}

// BatchRepository puerto de persistencia para lotes de producción.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByBatchNo(batchNo string) (*entity.Batch, error)
}
