package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

var _ repository.OutletStockRepository = (*OutletStockRepo)(nil)

// OutletStockRepo lectura de existencias por outlet (stock + lote + producto aplanados).
type OutletStockRepo struct {
	pool *pgxpool.Pool
}

// NewOutletStockRepository construye el adaptador de existencias.
func NewOutletStockRepository(pool *pgxpool.Pool) *OutletStockRepo {
	return &OutletStockRepo{pool: pool}
}

// ListAvailableByOutlet devuelve stock con cantidad > 0 ordenado por
// expiry_date ascendente (FIFO: lo que vence primero sale primero).
func (r *OutletStockRepo) ListAvailableByOutlet(outletID string) ([]repository.OutletStockResult, error) {
	const query = `
	SELECT s.id, s.current_quantity, b.batch_no, p.product_name, p.base_price, b.expiry_date
	FROM outlet_stock s
	JOIN batches  b ON b.id = s.batch_id
	JOIN products p ON p.id = b.product_id
	WHERE s.outlet_id = $1
	  AND s.current_quantity > 0
	ORDER BY b.expiry_date ASC`

	rows, err := r.pool.Query(context.Background(), query, outletID)
	if err != nil {
		return nil, fmt.Errorf("stock.ListAvailableByOutlet: %w", err)
	}
	defer rows.Close()

	var results []repository.OutletStockResult
	for rows.Next() {
		var row repository.OutletStockResult
		if err := rows.Scan(&row.StockID, &row.CurrentQuantity, &row.BatchNo, &row.ProductName, &row.Price, &row.ExpiryDate); err != nil {
			return nil, fmt.Errorf("stock.ListAvailableByOutlet scan: %w", err)
		}
		results = append(results, row)
	}
	if results == nil {
		results = []repository.OutletStockResult{}
	}
	return results, rows.Err()
}
