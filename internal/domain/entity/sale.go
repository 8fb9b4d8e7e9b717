package entity

import "github.com/shopspring/decimal"

// Sale es una línea de venta de un reporte diario.
// CalculatedCOGS queda congelado al confirmar la venta (AVCO del momento);
// solo una edición explícita del reporte lo recalcula, nunca se recalcula en silencio.
type Sale struct {
	ID             string
	ReportID       string
	ProductID      string
	Quantity       int
	SellingPrice   decimal.Decimal // precio unitario de venta
	CalculatedCOGS decimal.Decimal // costo total atribuido al confirmar
}
