package dto

import "github.com/shopspring/decimal"

// SalesHistoryPoint un día de la serie histórica de ventas.
type SalesHistoryPoint struct {
	Date      string          `json:"date"`
	Revenue   decimal.Decimal `json:"revenue"`
	NetProfit decimal.Decimal `json:"net_profit"`
}

// NameAmount par nombre/monto para rankings y resúmenes.
type NameAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}
