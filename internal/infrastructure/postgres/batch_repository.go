package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un nuevo lote de entrada.
func (r *BatchRepo) Create(batch *entity.InventoryBatch) error {
	query := `
		INSERT INTO inventory_batches (id, product_id, quantity, remaining_quantity, landing_price, date_added)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.Quantity, batch.RemainingQuantity,
		batch.LandingPrice, batch.DateAdded,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// ListOpenByProduct devuelve los lotes con remanente, en orden de consumo FIFO.
func (r *BatchRepo) ListOpenByProduct(productID string) ([]*entity.InventoryBatch, error) {
	query := `
		SELECT id, product_id, quantity, remaining_quantity, landing_price, date_added
		FROM inventory_batches
		WHERE product_id = $1 AND remaining_quantity > 0
		ORDER BY date_added, id`
	return r.list(query, productID)
}

// ListByProduct devuelve todos los lotes del producto, agotados incluidos, en orden FIFO.
func (r *BatchRepo) ListByProduct(productID string) ([]*entity.InventoryBatch, error) {
	query := `
		SELECT id, product_id, quantity, remaining_quantity, landing_price, date_added
		FROM inventory_batches
		WHERE product_id = $1
		ORDER BY date_added, id`
	return r.list(query, productID)
}

// UpdateRemaining fija el remanente de un lote (consumo FIFO o reversión).
func (r *BatchRepo) UpdateRemaining(batchID string, remaining int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_batches SET remaining_quantity = $2 WHERE id = $1`,
		batchID, remaining,
	)
	if err != nil {
		return fmt.Errorf("update batch remaining: %w", err)
	}
	return nil
}

func (r *BatchRepo) list(query, productID string) ([]*entity.InventoryBatch, error) {
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

func scanBatches(rows pgx.Rows) ([]*entity.InventoryBatch, error) {
	var list []*entity.InventoryBatch
	for rows.Next() {
		var b entity.InventoryBatch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.Quantity, &b.RemainingQuantity,
			&b.LandingPrice, &b.DateAdded); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
