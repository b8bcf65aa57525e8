// Package inventory contiene los casos de uso de existencias por outlet.
package inventory

import (
	"github.com/bakeryhub/bakeryhub-api/internal/application/dto"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

// StockUseCase consulta de existencias disponibles en un outlet.
type StockUseCase struct {
	stockRepo repository.OutletStockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.OutletStockRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo}
}

// ListByOutlet devuelve las existencias con cantidad > 0, ordenadas por fecha
// de vencimiento ascendente (lo que vence primero sale primero).
func (uc *StockUseCase) ListByOutlet(outletID string) ([]dto.OutletStockResponse, error) {
	rows, err := uc.stockRepo.ListAvailableByOutlet(outletID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutletStockResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.OutletStockResponse{
			StockID:         row.StockID,
			CurrentQuantity: row.CurrentQuantity,
			BatchNo:         row.BatchNo,
			ProductName:     row.ProductName,
			Price:           row.Price,
			ExpiryDate:      row.ExpiryDate,
		})
	}
	return items, nil
}
