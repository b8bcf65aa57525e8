package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

var _ repository.FactoryStatsRepository = (*FactoryStatsRepo)(nil)

// FactoryStatsRepo consultas de solo lectura para el dashboard de fábrica.
type FactoryStatsRepo struct {
	pool *pgxpool.Pool
}

// NewFactoryStatsRepository construye el adaptador de estadísticas.
func NewFactoryStatsRepository(pool *pgxpool.Pool) *FactoryStatsRepo {
	return &FactoryStatsRepo{pool: pool}
}

// CountOrdersByStatus cuenta pedidos de cliente en el estado indicado.
func (r *FactoryStatsRepo) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM customer_orders WHERE status = $1`, status,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountOrdersByStatus: %w", err)
	}
	return n, nil
}

// CountBatchesManufacturedOn cuenta lotes fabricados el día indicado (se compara solo la fecha).
func (r *FactoryStatsRepo) CountBatchesManufacturedOn(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM batches WHERE manufactured_date = $1::date`, day,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountBatchesManufacturedOn: %w", err)
	}
	return n, nil
}

// RecentBatches devuelve los últimos `limit` lotes con el nombre del producto,
// del más reciente al más antiguo.
func (r *FactoryStatsRepo) RecentBatches(ctx context.Context, limit int) ([]repository.BatchActivityResult, error) {
	const query = `
	SELECT b.batch_no, p.product_name, b.quantity_produced, b.manufactured_date
	FROM batches b
	JOIN products p ON p.id = b.product_id
	ORDER BY b.created_at DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.RecentBatches: %w", err)
	}
	defer rows.Close()

	var results []repository.BatchActivityResult
	for rows.Next() {
		var row repository.BatchActivityResult
		if err := rows.Scan(&row.BatchNo, &row.ProductName, &row.QuantityProduced, &row.ManufacturedDate); err != nil {
			return nil, fmt.Errorf("stats.RecentBatches scan: %w", err)
		}
		results = append(results, row)
	}
	if results == nil {
		results = []repository.BatchActivityResult{}
	}
	return results, rows.Err()
}
