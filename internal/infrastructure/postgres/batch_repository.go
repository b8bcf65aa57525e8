package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bakeryhub/bakeryhub-api/internal/domain"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes.
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote. batch_no duplicado -> ErrDuplicate;
// product_id inexistente -> ErrProductNotFound (violación de FK).
func (r *BatchRepo) Create(b *entity.Batch) error {
	query := `
		INSERT INTO batches (id, batch_no, product_id, quantity_produced, manufactured_date, expiry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.BatchNo, b.ProductID, b.QuantityProduced, b.ManufacturedDate, b.ExpiryDate, b.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByBatchNo obtiene un lote por número. Devuelve nil, nil si no existe.
func (r *BatchRepo) GetByBatchNo(batchNo string) (*entity.Batch, error) {
	query := `
		SELECT id, batch_no, product_id, quantity_produced, manufactured_date, expiry_date, created_at
		FROM batches WHERE batch_no = $1`
	var b entity.Batch
	err := r.q.QueryRow(context.Background(), query, batchNo).Scan(
		&b.ID, &b.BatchNo, &b.ProductID, &b.QuantityProduced, &b.ManufacturedDate, &b.ExpiryDate, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch by no: %w", err)
	}
	return &b, nil
}
