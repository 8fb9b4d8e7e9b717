package dto

import "github.com/shopspring/decimal"

// ProductEquityInput participación de un socio al crear o editar un producto.
type ProductEquityInput struct {
	OwnerID          string          `json:"owner_id"`
	EquityPercentage decimal.Decimal `json:"equity_percentage"`
}

// CreateProductRequest body para POST /api/products.
// SKU vacío genera uno aleatorio de 8 caracteres.
type CreateProductRequest struct {
	Name       string               `json:"name"`
	SKU        string               `json:"sku,omitempty"`
	Price      decimal.Decimal      `json:"price"`
	CostPrice  decimal.Decimal      `json:"cost_price"`
	ProductURL string               `json:"product_url,omitempty"`
	Equities   []ProductEquityInput `json:"equities,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ProductURL string          `json:"product_url,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	CurrentStock int             `json:"current_stock"`
	ProductURL   string          `json:"product_url,omitempty"`
	TotalSold    int64           `json:"total_sold"`
}
