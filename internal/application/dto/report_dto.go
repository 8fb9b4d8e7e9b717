package dto

import "github.com/shopspring/decimal"

// CreateReportRequest body para POST /api/reports.
type CreateReportRequest struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	TotalAdSpend decimal.Decimal `json:"total_ad_spend"`
	Notes        string          `json:"notes,omitempty"`
}

// SaleLineInput línea de venta entrante en una edición de reporte.
// ID presente = línea existente; ID ausente = línea nueva.
type SaleLineInput struct {
	ID           *string         `json:"id,omitempty"`
	ProductID    string          `json:"product_id"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// UpdateReportRequest body para PUT /api/reports/:id (protocolo de reconciliación).
// El conjunto entrante de líneas reemplaza al existente: las líneas existentes
// cuyo id no aparezca se eliminan.
type UpdateReportRequest struct {
	TotalAdSpend decimal.Decimal `json:"total_ad_spend"`
	Sales        []SaleLineInput `json:"sales"`
}

// RecordSaleRequest body para POST /api/sales (venta directa a un día).
type RecordSaleRequest struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	ProductID    string          `json:"product_id"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// SaleResponse representación de una línea de venta.
type SaleResponse struct {
	ID             string          `json:"id"`
	ReportID       string          `json:"report_id"`
	ProductID      string          `json:"product_id"`
	Quantity       int             `json:"quantity"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	CalculatedCOGS decimal.Decimal `json:"calculated_cogs"`
}

// ReportResponse representación de un reporte diario con su utilidad neta derivada.
// NetProfit = (ingresos − COGS) − ad spend − gastos del día.
type ReportResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	TotalAdSpend decimal.Decimal `json:"total_ad_spend"`
	Notes        string          `json:"notes,omitempty"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	Sales        []SaleResponse  `json:"sales"`
}
