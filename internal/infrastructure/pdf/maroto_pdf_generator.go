// Package pdf implementa la exportación de reportes diarios a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Ingresos | COGS | Ads | Gastos | Utilidad    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES del rango                                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReportRange genera el PDF del rango y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportRange(start, end time.Time, rows []reports.PDFRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(start, end))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y rango de fechas (der).
func headerRow(start, end time.Time) core.Row {
	rango := fmt.Sprintf("%s — %s", start.Format("02/01/2006"), end.Format("02/01/2006"))
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Reporte de ventas diarias", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(rango, props.Text{
				Size: 10, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(8).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(2).Add(text.New("Ingresos", headerRight)),
		col.New(2).Add(text.New("COGS", headerRight)),
		col.New(2).Add(text.New("Ads", headerRight)),
		col.New(2).Add(text.New("Gastos", headerRight)),
		col.New(2).Add(text.New("Utilidad", headerRight)),
	)
}

func tableDetailRow(r reports.PDFRow) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	return row.New(6).Add(
		col.New(2).Add(text.New(r.Date, cell)),
		col.New(2).Add(text.New(r.Revenue.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(r.COGS.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(r.AdSpend.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(r.Expenses.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(r.NetProfit.StringFixed(2), cellRight)),
	)
}

// totalsRow acumula las columnas numéricas de todo el rango.
func totalsRow(rows []reports.PDFRow) core.Row {
	revenue, cogs, ads, expenses, net := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range rows {
		revenue = revenue.Add(r.Revenue)
		cogs = cogs.Add(r.COGS)
		ads = ads.Add(r.AdSpend)
		expenses = expenses.Add(r.Expenses)
		net = net.Add(r.NetProfit)
	}
	total := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right}
	return row.New(8).Add(
		col.New(2).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(2).Add(text.New(revenue.StringFixed(2), total)),
		col.New(2).Add(text.New(cogs.StringFixed(2), total)),
		col.New(2).Add(text.New(ads.StringFixed(2), total)),
		col.New(2).Add(text.New(expenses.StringFixed(2), total)),
		col.New(2).Add(text.New(net.StringFixed(2), total)),
	)
}
