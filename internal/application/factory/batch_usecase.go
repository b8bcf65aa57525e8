// Package factory contiene los casos de uso del módulo de fábrica:
// registro de lotes de producción y estadísticas del dashboard.
package factory

import (
	"time"

	"github.com/google/uuid"

	"github.com/bakeryhub/bakeryhub-api/internal/application/dto"
	"github.com/bakeryhub/bakeryhub-api/internal/domain"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

// BatchUseCase registro de lotes de producción.
type BatchUseCase struct {
	batchRepo   repository.BatchRepository
	productRepo repository.ProductRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(batchRepo repository.BatchRepository, productRepo repository.ProductRepository) *BatchUseCase {
	return &BatchUseCase{batchRepo: batchRepo, productRepo: productRepo}
}

// Create registra un lote. El producto se referencia por id; si no existe
// devuelve ErrProductNotFound. batch_no duplicado -> ErrDuplicate.
// La fecha de vencimiento llega calculada por el cliente y se guarda tal cual.
func (uc *BatchUseCase) Create(in dto.CreateBatchRequest) (*dto.CreateBatchResponse, error) {
	mfd, err := time.Parse(dto.DateLayout, in.ManufacturedDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	exp, err := time.Parse(dto.DateLayout, in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	batch := &entity.Batch{
		ID:               uuid.New().String(),
		BatchNo:          in.BatchNo,
		ProductID:        product.ID,
		QuantityProduced: in.QuantityProduced,
		ManufacturedDate: mfd,
		ExpiryDate:       exp,
		CreatedAt:        time.Now(),
	}
	if err := uc.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	return &dto.CreateBatchResponse{
		Message: "Batch created successfully",
		Batch: dto.BatchResponse{
			ID:               batch.ID,
			BatchNo:          batch.BatchNo,
			ProductID:        batch.ProductID,
			QuantityProduced: batch.QuantityProduced,
			ManufacturedDate: batch.ManufacturedDate,
			ExpiryDate:       batch.ExpiryDate,
		},
	}, nil
}
