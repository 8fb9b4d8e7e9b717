package repository

import "context"

// Tx agrupa los puertos de persistencia atados a una misma transacción.
// Es la unidad de trabajo explícita del motor: toda operación mutadora
// (entrada de lotes, ventas, reconciliación, distribución de utilidades)
// recibe un Tx y escribe únicamente a través de él.
type Tx struct {
	Products ProductRepository
	Batches  BatchRepository
	Reports  ReportRepository
	Sales    SaleRepository
	Expenses ExpenseRepository
	Owners   OwnerRepository
	Ledger   LedgerRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil,
// Rollback en caso contrario. Ninguna operación queda aplicada a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx *Tx) error) error
}
