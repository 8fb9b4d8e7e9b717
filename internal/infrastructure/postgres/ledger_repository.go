package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: este adaptador no expone UPDATE ni DELETE.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del libro de socios. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append inserta un asiento firmado.
func (r *LedgerRepo) Append(entry *entity.OwnerLedgerEntry) error {
	query := `
		INSERT INTO owner_ledger (id, owner_id, amount, transaction_type, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.OwnerID, entry.Amount, entry.TransactionType, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByOwner devuelve los asientos del socio por fecha descendente.
func (r *LedgerRepo) ListByOwner(ownerID string) ([]*entity.OwnerLedgerEntry, error) {
	query := `
		SELECT id, owner_id, amount, transaction_type, date
		FROM owner_ledger WHERE owner_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

// SumByOwner es el saldo del socio: suma de todos sus asientos.
func (r *LedgerRepo) SumByOwner(ownerID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM owner_ledger WHERE owner_id = $1`,
		ownerID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum ledger: %w", err)
	}
	return total, nil
}

// SumPayouts suma los asientos PAYOUT del socio (valor negativo o cero).
func (r *LedgerRepo) SumPayouts(ownerID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM owner_ledger WHERE owner_id = $1 AND transaction_type = $2`,
		ownerID, entity.TxTypePayout,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payouts: %w", err)
	}
	return total, nil
}

// ListPayouts devuelve los asientos PAYOUT de todos los socios, más reciente primero.
func (r *LedgerRepo) ListPayouts(limit, offset int) ([]*entity.OwnerLedgerEntry, error) {
	query := `
		SELECT id, owner_id, amount, transaction_type, date
		FROM owner_ledger WHERE transaction_type = $1
		ORDER BY date DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entity.TxTypePayout, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

func scanLedgerEntries(rows pgx.Rows) ([]*entity.OwnerLedgerEntry, error) {
	var list []*entity.OwnerLedgerEntry
	for rows.Next() {
		var e entity.OwnerLedgerEntry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Amount, &e.TransactionType, &e.Date); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
