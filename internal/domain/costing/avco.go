// Package costing implementa los servicios de dominio de costeo:
// costo promedio ponderado (AVCO) y la regla de redondeo monetario.
package costing

import "github.com/shopspring/decimal"

// Round2 aplica la regla de redondeo monetario del sistema: dos decimales,
// mitad lejos de cero (round-half-up). Todo monto persistido pasa por aquí.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// AverageCost calcula el nuevo costo promedio ponderado tras una entrada de lote.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si el stock total resultante es cero devuelve el costo actual sin cambios
// (guarda contra división por cero).
func AverageCost(currentStock int, currentCost decimal.Decimal, inQty int, landingPrice decimal.Decimal) decimal.Decimal {
	total := int64(currentStock) + int64(inQty)
	if total <= 0 {
		return currentCost
	}
	stockD := decimal.NewFromInt(int64(currentStock))
	inD := decimal.NewFromInt(int64(inQty))
	num := stockD.Mul(currentCost).Add(inD.Mul(landingPrice))
	return num.Div(decimal.NewFromInt(total))
}

// UnitCOGS devuelve el COGS total de una venta de qty unidades al costo
// promedio unitario dado, ya redondeado a dos decimales.
func UnitCOGS(avgCost decimal.Decimal, qty int) decimal.Decimal {
	return Round2(avgCost.Mul(decimal.NewFromInt(int64(qty))))
}
