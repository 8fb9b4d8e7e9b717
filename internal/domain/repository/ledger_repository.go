package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// LedgerRepository define el puerto del libro de socios. Append-only:
// no existen operaciones de actualización ni borrado de asientos.
type LedgerRepository interface {
	Append(entry *entity.OwnerLedgerEntry) error
	// ListByOwner devuelve los asientos del socio por fecha descendente.
	ListByOwner(ownerID string) ([]*entity.OwnerLedgerEntry, error)
	// SumByOwner es el saldo del socio: Σ Amount de todos sus asientos.
	SumByOwner(ownerID string) (decimal.Decimal, error)
	// SumPayouts es Σ Amount de los asientos PAYOUT del socio (valor negativo o cero).
	SumPayouts(ownerID string) (decimal.Decimal, error)
	// ListPayouts devuelve los asientos PAYOUT de todos los socios, más reciente primero.
	ListPayouts(limit, offset int) ([]*entity.OwnerLedgerEntry, error)
}
