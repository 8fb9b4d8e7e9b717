package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto (SKU) del negocio.
// CostPrice es el costo promedio ponderado (AVCO): solo lo muta la entrada de lotes.
// CurrentStock solo lo mutan la entrada de lotes y el procesamiento/edición de ventas.
// Invariante: CurrentStock == Σ RemainingQuantity de los lotes no agotados del producto.
type Product struct {
	ID           string
	Name         string
	SKU          string          // código único
	Price        decimal.Decimal // precio de venta
	CostPrice    decimal.Decimal // costo promedio ponderado actual
	CurrentStock int
	ProductURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
