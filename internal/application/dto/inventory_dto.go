package dto

import "github.com/shopspring/decimal"

// AddBatchRequest body para POST /api/inventory/batches.
type AddBatchRequest struct {
	ProductID    string          `json:"product_id"`
	Quantity     int             `json:"quantity"`
	LandingPrice decimal.Decimal `json:"landing_price"`
}

// BatchResponse representación de un lote en respuestas.
type BatchResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	Quantity          int             `json:"quantity"`
	RemainingQuantity int             `json:"remaining_quantity"`
	LandingPrice      decimal.Decimal `json:"landing_price"`
	DateAdded         string          `json:"date_added"`
}
