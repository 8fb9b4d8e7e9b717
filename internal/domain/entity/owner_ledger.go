package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro de socios.
const (
	TxTypeProfitShare = "PROFIT_SHARE"
	TxTypeWithdrawal  = "WITHDRAWAL"
	TxTypePayout      = "PAYOUT"
)

// OwnerLedgerEntry es un asiento firmado e inmutable del libro de un socio.
// El libro es append-only: las correcciones son asientos nuevos, nunca se muta
// ni se borra un asiento. El saldo del socio es la suma de sus asientos.
// El motor de distribución de utilidades es el único escritor de PROFIT_SHARE.
type OwnerLedgerEntry struct {
	ID              string
	OwnerID         string
	Amount          decimal.Decimal // con signo: retiros y pagos son negativos
	TransactionType string          // PROFIT_SHARE | WITHDRAWAL | PAYOUT
	Date            time.Time
}
