package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bakeryhub/bakeryhub-api/internal/application/dto"
	"github.com/bakeryhub/bakeryhub-api/internal/domain"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
// La validación de entrada (campos requeridos, precio > 0, enum de unidad)
// vive en el handler; aquí solo reglas que tocan persistencia.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto activo. Nombre duplicado -> ErrDuplicate.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByName(in.ProductName)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:              uuid.New().String(),
		ProductName:     in.ProductName,
		Description:     in.Description,
		Category:        in.Category,
		BasePrice:       in.BasePrice,
		ShelfLifeDays:   in.ShelfLifeDays,
		MeasurementType: in.MeasurementType,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListActive devuelve los productos activos ordenados por nombre (vista pública del catálogo).
func (uc *ProductUseCase) ListActive() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		ProductName:     p.ProductName,
		Description:     p.Description,
		Category:        p.Category,
		BasePrice:       p.BasePrice,
		ShelfLifeDays:   p.ShelfLifeDays,
		MeasurementType: p.MeasurementType,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
	}
}
