// Package memory implementa los puertos de persistencia sobre estructuras
// en memoria. Se usa en tests y para correr la API sin base de datos.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// Store es el almacén compartido por todos los repositorios en memoria.
// Los slices conservan el orden de inserción, que es el desempate FIFO.
type Store struct {
	mu       sync.Mutex
	products []*entity.Product
	batches  []*entity.InventoryBatch
	reports  []*entity.DailyReport
	sales    []*entity.Sale
	expenses []*entity.Expense
	owners   []*entity.Owner
	equities []*entity.ProductEquity
	ledger   []*entity.OwnerLedgerEntry
	users    []*entity.User
}

func NewStore() *Store {
	return &Store{}
}

// Repos devuelve el juego completo de repositorios sobre este almacén.
func (s *Store) Repos() *repository.Tx {
	return &repository.Tx{
		Products: &ProductRepository{s: s},
		Batches:  &BatchRepository{s: s},
		Reports:  &ReportRepository{s: s},
		Sales:    &SaleRepository{s: s},
		Expenses: &ExpenseRepository{s: s},
		Owners:   &OwnerRepository{s: s},
		Ledger:   &LedgerRepository{s: s},
	}
}

// TxRunner ejecuta fn contra el almacén sin semántica transaccional real:
// los casos de uso validan antes de escribir, así que los tests no dependen
// de rollback.
type TxRunner struct {
	s *Store
}

func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) Run(_ context.Context, fn func(tx *repository.Tx) error) error {
	return fn(r.s.Repos())
}

// dayOf normaliza un instante a su fecha calendario en UTC.
func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
