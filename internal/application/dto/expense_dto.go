package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ProductID   *string         `json:"product_id,omitempty"`
	PaidByID    *string         `json:"paid_by_id,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ExpenseResponse representación de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ProductID   *string         `json:"product_id,omitempty"`
	PaidByID    *string         `json:"paid_by_id,omitempty"`
	Description string          `json:"description,omitempty"`
}
