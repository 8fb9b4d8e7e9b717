package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/application/profit"
	"github.com/jhoicas/tiktrack-api/internal/application/reports"
	"github.com/jhoicas/tiktrack-api/internal/application/sales"
)

// ReportHandler maneja reportes diarios: creación, lectura, reconciliación,
// distribución de utilidades y exportación a PDF (protegido).
type ReportHandler struct {
	reportUC *reports.ReportUseCase
	saleUC   *sales.SaleUseCase
	profitUC *profit.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reportUC *reports.ReportUseCase, saleUC *sales.SaleUseCase, profitUC *profit.UseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, saleUC: saleUC, profitUC: profitUC}
}

// Create godoc
// @Summary      Crear reporte diario
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReportRequest  true  "date, total_ad_spend, notes"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.reportUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar reportes (fecha descendente)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 100)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.ReportResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.reportUC.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByDate godoc
// @Summary      Obtener el reporte de una fecha
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "fecha YYYY-MM-DD"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{date} [get]
func (h *ReportHandler) GetByDate(c *fiber.Ctx) error {
	resp, err := h.reportUC.GetByDate(c.Context(), c.Params("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Reconciliar un reporte
// @Description  Reemplaza el conjunto de líneas del reporte: borra las ausentes
//
//	revirtiendo stock, crea las nuevas y ajusta cantidades y precios
//	de las existentes. Todo o nada.
//
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del reporte"
// @Param        body  body  dto.UpdateReportRequest  true  "total_ad_spend, sales"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [put]
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.saleUC.Reconcile(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "reporte reconciliado"})
}

// Distribute godoc
// @Summary      Distribuir las utilidades del día entre los socios
// @Description  Asienta PROFIT_SHARE por socio según equity por producto o
//
//	global. No es idempotente: cada llamada asienta de nuevo.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del reporte"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/profit-distribute [put]
func (h *ReportHandler) Distribute(c *fiber.Ctx) error {
	entries, err := h.profitUC.DistributeDailyProfit(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "utilidades distribuidas", "entries": len(entries)})
}

// ExportPDF godoc
// @Summary      Exportar reportes de un rango a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  true  "fecha inicial YYYY-MM-DD"
// @Param        end_date    query  string  true  "fecha final YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.ExportPDF(c.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reportes.pdf"`)
	return c.Send(pdfBytes)
}
