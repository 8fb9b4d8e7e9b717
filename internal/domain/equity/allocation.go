// Package equity implementa la política de asignación de utilidades entre socios:
// reparto explícito por producto o fallback a la participación global de cada socio.
package equity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/costing"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Share es la porción asignada a un socio por una política de reparto.
type Share struct {
	OwnerID string
	Amount  decimal.Decimal
}

// AllocationPolicy reparte un neto (positivo o negativo) entre socios.
// El redondeo ocurre por asignación, no sobre el total: el error residual de
// redondeo se absorbe en silencio y las porciones no se ajustan para sumar
// exactamente el neto.
type AllocationPolicy interface {
	Allocate(net decimal.Decimal) []Share
}

// explicitSplit reparte según filas ProductEquity (reemplazan al fallback global).
type explicitSplit []*entity.ProductEquity

func (s explicitSplit) Allocate(net decimal.Decimal) []Share {
	shares := make([]Share, 0, len(s))
	for _, eq := range s {
		amount := costing.Round2(net.Mul(eq.EquityPercentage).Div(hundred))
		shares = append(shares, Share{OwnerID: eq.OwnerID, Amount: amount})
	}
	return shares
}

// globalSplit reparte según la participación global de cada socio.
type globalSplit []*entity.Owner

func (s globalSplit) Allocate(net decimal.Decimal) []Share {
	shares := make([]Share, 0, len(s))
	for _, o := range s {
		amount := costing.Round2(net.Mul(o.EquityPercentage).Div(hundred))
		shares = append(shares, Share{OwnerID: o.ID, Amount: amount})
	}
	return shares
}

// PolicyFor devuelve la política de reparto para un producto: si existen filas
// ProductEquity, reparto explícito; si no, fallback a equity global.
func PolicyFor(equities []*entity.ProductEquity, owners []*entity.Owner) AllocationPolicy {
	if len(equities) > 0 {
		return explicitSplit(equities)
	}
	return globalSplit(owners)
}

// GlobalPolicy devuelve la política usada para costos globales (ads + gastos sin
// producto): siempre por equity global, aunque el producto tenga reparto explícito.
func GlobalPolicy(owners []*entity.Owner) AllocationPolicy {
	return globalSplit(owners)
}
