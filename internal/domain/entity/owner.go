package entity

import "github.com/shopspring/decimal"

// Owner es un socio con participación en las utilidades del negocio.
// EquityPercentage (0–100) es su participación global por defecto; el sistema
// no exige que las participaciones globales sumen 100 entre todos los socios.
type Owner struct {
	ID               string
	Name             string
	EquityPercentage decimal.Decimal
}

// ProductEquity liga un socio con un producto con una participación específica.
// Si existe al menos una fila para un producto, esas filas reemplazan por completo
// el fallback global para la asignación de utilidades de ese producto (no así para
// los costos globales, que siempre se reparten por equity global).
type ProductEquity struct {
	ID               string
	OwnerID          string
	ProductID        string
	EquityPercentage decimal.Decimal
}
