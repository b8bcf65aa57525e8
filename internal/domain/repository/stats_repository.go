package repository

import (
	"context"
	"time"
)

// BatchActivityResult fila del widget de actividad reciente del dashboard de fábrica.
type BatchActivityResult struct {
	BatchNo          string
	ProductName      string
	QuantityProduced int
	ManufacturedDate time.Time
}

// FactoryStatsRepository consultas de solo lectura para el dashboard de fábrica.
type FactoryStatsRepository interface {
	// CountOrdersByStatus cuenta pedidos de cliente en el estado indicado.
	CountOrdersByStatus(ctx context.Context, status string) (int, error)
	// CountBatchesManufacturedOn cuenta lotes con manufactured_date igual al día indicado.
	CountBatchesManufacturedOn(ctx context.Context, day time.Time) (int, error)
	// RecentBatches devuelve los últimos `limit` lotes con el nombre del producto.
	RecentBatches(ctx context.Context, limit int) ([]BatchActivityResult, error)
}
