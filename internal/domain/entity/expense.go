package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto del negocio. ProductID no nulo lo convierte en pasivo
// específico del producto; PaidByID registra qué socio adelantó el dinero
// (informativo, no altera la asignación por equity).
type Expense struct {
	ID          string
	Date        time.Time
	Category    string // Ads, Tools, Editing, ...
	Amount      decimal.Decimal
	ProductID   *string
	PaidByID    *string
	Description string
}
