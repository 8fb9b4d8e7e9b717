package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit si fn devuelve nil, Rollback en caso contrario.
func (r *TxRunner) Run(ctx context.Context, fn func(tx *repository.Tx) error) error {
	pgTx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = pgTx.Rollback(ctx) }()

	bundle := &repository.Tx{
		Products: NewProductRepository(pgTx),
		Batches:  NewBatchRepository(pgTx),
		Reports:  NewReportRepository(pgTx),
		Sales:    NewSaleRepository(pgTx),
		Expenses: NewExpenseRepository(pgTx),
		Owners:   NewOwnerRepository(pgTx),
		Ledger:   NewLedgerRepository(pgTx),
	}

	if err := fn(bundle); err != nil {
		return err
	}
	if err := pgTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
