package dto

import "github.com/shopspring/decimal"

// CreateOwnerRequest body para POST /api/owners.
type CreateOwnerRequest struct {
	Name             string          `json:"name"`
	EquityPercentage decimal.Decimal `json:"equity_percentage"`
}

// OwnerResponse representación de un socio.
type OwnerResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	EquityPercentage decimal.Decimal `json:"equity_percentage"`
}

// SetProductEquityRequest body para PUT /api/owners/:id/equity.
type SetProductEquityRequest struct {
	ProductID        string          `json:"product_id"`
	EquityPercentage decimal.Decimal `json:"equity_percentage"`
}

// WithdrawRequest body para POST /api/owners/:id/withdraw.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// RecordPayoutRequest body para POST /api/owners/payments.
type RecordPayoutRequest struct {
	OwnerID string          `json:"owner_id"`
	Amount  decimal.Decimal `json:"amount"` // positivo; el asiento PAYOUT queda negativo
	Date    string          `json:"date"`   // YYYY-MM-DD
}

// LedgerEntryResponse asiento del libro de un socio.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"owner_id"`
	OwnerName       string          `json:"owner_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
	Date            string          `json:"date"`
}

// BreakdownLine una línea del desglose de utilidades de un socio.
type BreakdownLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// OwnerBreakdownResponse desglose de utilidades acumuladas de un socio.
type OwnerBreakdownResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Balance     decimal.Decimal `json:"balance"`
	Breakdown   []BreakdownLine `json:"breakdown"`
}
