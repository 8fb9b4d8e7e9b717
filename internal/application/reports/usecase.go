// Package reports implementa la creación y lectura de reportes diarios y su
// exportación a PDF. La utilidad neta de un reporte es derivada, nunca
// almacenada: (ingresos − COGS) − ad spend − gastos del día.
package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/costing"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// PDFRow es una fila del PDF de rango de reportes.
type PDFRow struct {
	Date      string
	Revenue   decimal.Decimal
	COGS      decimal.Decimal
	AdSpend   decimal.Decimal
	Expenses  decimal.Decimal
	NetProfit decimal.Decimal
}

// PDFGenerator renderiza el documento de un rango de reportes (puerto de salida).
type PDFGenerator interface {
	GenerateReportRange(start, end time.Time, rows []PDFRow) ([]byte, error)
}

// ReportUseCase lecturas y creación explícita de reportes diarios.
type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	pdf         PDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, saleRepo repository.SaleRepository, expenseRepo repository.ExpenseRepository, pdf PDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, saleRepo: saleRepo, expenseRepo: expenseRepo, pdf: pdf}
}

// Create crea el reporte de una fecha de forma explícita.
// Devuelve domain.ErrConflict si la fecha ya tiene reporte.
func (uc *ReportUseCase) Create(ctx context.Context, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.TotalAdSpend.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	report := &entity.DailyReport{
		ID:           uuid.New().String(),
		Date:         date,
		TotalAdSpend: in.TotalAdSpend,
		Notes:        in.Notes,
	}
	if err := uc.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return uc.toResponse(report)
}

// GetByDate devuelve el reporte de una fecha con sus líneas y utilidad neta.
func (uc *ReportUseCase) GetByDate(ctx context.Context, rawDate string) (*dto.ReportResponse, error) {
	date, err := dto.ParseDate(rawDate)
	if err != nil {
		return nil, err
	}
	report, err := uc.reportRepo.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(report)
}

// List devuelve reportes por fecha descendente con su utilidad neta derivada.
func (uc *ReportUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ReportResponse, error) {
	list, err := uc.reportRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReportResponse, 0, len(list))
	for _, r := range list {
		resp, err := uc.toResponse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// ExportPDF genera el PDF con los reportes de un rango de fechas (inclusive).
func (uc *ReportUseCase) ExportPDF(ctx context.Context, rawStart, rawEnd string) ([]byte, error) {
	start, err := dto.ParseDate(rawStart)
	if err != nil {
		return nil, err
	}
	end, err := dto.ParseDate(rawEnd)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.reportRepo.ListRange(start, end)
	if err != nil {
		return nil, err
	}
	rows := make([]PDFRow, 0, len(list))
	for _, r := range list {
		revenue, cogs, dayExpenses, err := uc.dayTotals(r)
		if err != nil {
			return nil, err
		}
		net := revenue.Sub(cogs).Sub(r.TotalAdSpend).Sub(dayExpenses)
		rows = append(rows, PDFRow{
			Date:      dto.FormatDate(r.Date),
			Revenue:   costing.Round2(revenue),
			COGS:      costing.Round2(cogs),
			AdSpend:   costing.Round2(r.TotalAdSpend),
			Expenses:  costing.Round2(dayExpenses),
			NetProfit: costing.Round2(net),
		})
	}
	return uc.pdf.GenerateReportRange(start, end, rows)
}

// dayTotals acumula ingresos, COGS y gastos del día de un reporte.
func (uc *ReportUseCase) dayTotals(report *entity.DailyReport) (revenue, cogs, expenses decimal.Decimal, err error) {
	revenue, cogs, expenses = decimal.Zero, decimal.Zero, decimal.Zero
	salesList, err := uc.saleRepo.ListByReport(report.ID)
	if err != nil {
		return
	}
	for _, s := range salesList {
		revenue = revenue.Add(s.SellingPrice.Mul(decimal.NewFromInt(int64(s.Quantity))))
		cogs = cogs.Add(s.CalculatedCOGS)
	}
	date := report.Date
	dayExpenses, err := uc.expenseRepo.ListByWindow(&date)
	if err != nil {
		return
	}
	for _, e := range dayExpenses {
		expenses = expenses.Add(e.Amount)
	}
	return
}

func (uc *ReportUseCase) toResponse(report *entity.DailyReport) (*dto.ReportResponse, error) {
	salesList, err := uc.saleRepo.ListByReport(report.ID)
	if err != nil {
		return nil, err
	}
	revenue, cogs := decimal.Zero, decimal.Zero
	lines := make([]dto.SaleResponse, 0, len(salesList))
	for _, s := range salesList {
		revenue = revenue.Add(s.SellingPrice.Mul(decimal.NewFromInt(int64(s.Quantity))))
		cogs = cogs.Add(s.CalculatedCOGS)
		lines = append(lines, dto.SaleResponse{
			ID:             s.ID,
			ReportID:       s.ReportID,
			ProductID:      s.ProductID,
			Quantity:       s.Quantity,
			SellingPrice:   s.SellingPrice,
			CalculatedCOGS: s.CalculatedCOGS,
		})
	}
	date := report.Date
	dayExpenses, err := uc.expenseRepo.ListByWindow(&date)
	if err != nil {
		return nil, err
	}
	expenseTotal := decimal.Zero
	for _, e := range dayExpenses {
		expenseTotal = expenseTotal.Add(e.Amount)
	}
	net := revenue.Sub(cogs).Sub(report.TotalAdSpend).Sub(expenseTotal)
	return &dto.ReportResponse{
		ID:           report.ID,
		Date:         dto.FormatDate(report.Date),
		TotalAdSpend: report.TotalAdSpend,
		Notes:        report.Notes,
		NetProfit:    costing.Round2(net),
		Sales:        lines,
	}, nil
}
