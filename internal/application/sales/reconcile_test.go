package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// recordSale registra una venta directa y devuelve la línea asentada.
func (f *fixture) recordSale(t *testing.T, productID string, qty int, price string) *entity.Sale {
	t.Helper()
	sale, err := f.saleUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date:         testDate,
		ProductID:    productID,
		Quantity:     qty,
		SellingPrice: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return sale
}

func (f *fixture) reportLines(t *testing.T, reportID string) []*entity.Sale {
	t.Helper()
	lines, err := f.store.Repos().Sales.ListByReport(reportID)
	require.NoError(t, err)
	return lines
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconcile — el conjunto entrante de líneas reemplaza al existente
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_ActualizaAdSpend(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 10, "10")
	sale := f.recordSale(t, "p1", 1, "20")

	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.RequireFromString("35.50"),
		Sales: []dto.SaleLineInput{
			{ID: &sale.ID, ProductID: "p1", Quantity: 1, SellingPrice: sale.SellingPrice},
		},
	})
	require.NoError(t, err)

	report, err := f.store.Repos().Reports.GetByID(sale.ReportID)
	require.NoError(t, err)
	assert.Equal(t, "35.50", report.TotalAdSpend.StringFixed(2))
}

func TestReconcile_LineaAusenteSeEliminaYDevuelveStock(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 10, "10")
	sale := f.recordSale(t, "p1", 4, "20")
	require.Equal(t, 6, f.product(t, "p1").CurrentStock)

	// Conjunto entrante vacío: la línea existente desaparece.
	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
		Sales:        []dto.SaleLineInput{},
	})
	require.NoError(t, err)

	assert.Empty(t, f.reportLines(t, sale.ReportID), "la línea borrada no debe quedar en el reporte")
	assert.Equal(t, 10, f.product(t, "p1").CurrentStock, "la cantidad vuelve al stock")
	f.assertStockInvariant(t, "p1")
}

func TestReconcile_CambioDeProductoEsBajaMasAlta(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.createProduct(t, "p2", "Pulsera")
	f.addBatch(t, "p1", 10, "10")
	f.addBatch(t, "p2", 10, "8")
	sale := f.recordSale(t, "p1", 3, "20")

	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
		Sales: []dto.SaleLineInput{
			{ID: &sale.ID, ProductID: "p2", Quantity: 2, SellingPrice: decimal.NewFromInt(18)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, f.product(t, "p1").CurrentStock, "el producto anterior recupera su stock")
	assert.Equal(t, 8, f.product(t, "p2").CurrentStock, "el nuevo producto descuenta stock")
	f.assertStockInvariant(t, "p1")
	f.assertStockInvariant(t, "p2")

	lines := f.reportLines(t, sale.ReportID)
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)
	assert.Equal(t, "16.00", lines[0].CalculatedCOGS.StringFixed(2),
		"la línea nueva se costea como venta completa: 2 al promedio 8.00")
}

func TestReconcile_AumentoDeCantidadSumaCostoFIFO(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 5, "10")
	f.addBatch(t, "p1", 5, "20") // promedio 15.00
	sale := f.recordSale(t, "p1", 2, "40")
	require.Equal(t, "30.00", sale.CalculatedCOGS.StringFixed(2))

	// Subir de 2 a 5: las 3 unidades extra consumen FIFO (quedan 3 del lote
	// a $10), así que el costo incremental es 3*10 = 30.
	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
		Sales: []dto.SaleLineInput{
			{ID: &sale.ID, ProductID: "p1", Quantity: 5, SellingPrice: sale.SellingPrice},
		},
	})
	require.NoError(t, err)

	lines := f.reportLines(t, sale.ReportID)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "60.00", lines[0].CalculatedCOGS.StringFixed(2),
		"COGS = 30.00 previos + 30.00 del incremento al landing price FIFO")
	assert.Equal(t, 5, f.product(t, "p1").CurrentStock)
	f.assertStockInvariant(t, "p1")
}

func TestReconcile_AumentoCruzandoLotes(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 5, "10")
	f.addBatch(t, "p1", 5, "20")
	sale := f.recordSale(t, "p1", 4, "40") // quedan 1 en lote $10 y 5 en lote $20

	// +3 unidades: 1 a $10 + 2 a $20 = 50 de costo incremental.
	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
		Sales: []dto.SaleLineInput{
			{ID: &sale.ID, ProductID: "p1", Quantity: 7, SellingPrice: sale.SellingPrice},
		},
	})
	require.NoError(t, err)

	lines := f.reportLines(t, sale.ReportID)
	require.Len(t, lines, 1)
	// COGS original: 4 al promedio 15.00 = 60.00; incremento 50.00.
	assert.Equal(t, "110.00", lines[0].CalculatedCOGS.StringFixed(2))
	f.assertStockInvariant(t, "p1")
}

func TestReconcile_ReduccionEscalaCOGSProporcional(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 10, "15")
	sale := f.recordSale(t, "p1", 4, "40")
	require.Equal(t, "60.00", sale.CalculatedCOGS.StringFixed(2))

	// Bajar de 4 a 1: COGS unitario constante → 60 * 1/4 = 15.00.
	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
		Sales: []dto.SaleLineInput{
			{ID: &sale.ID, ProductID: "p1", Quantity: 1, SellingPrice: sale.SellingPrice},
		},
	})
	require.NoError(t, err)

	lines := f.reportLines(t, sale.ReportID)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "15.00", lines[0].CalculatedCOGS.StringFixed(2))
	assert.Equal(t, 9, f.product(t, "p1").CurrentStock, "las 3 unidades vuelven al stock")
	f.assertStockInvariant(t, "p1")
}

func TestReconcile_PrecioSeActualizaSiempre(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 10, "10")
	sale := f.recordSale(t, "p1", 2, "20")

	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
		Sales: []dto.SaleLineInput{
			{ID: &sale.ID, ProductID: "p1", Quantity: 2, SellingPrice: decimal.RequireFromString("22.50")},
		},
	})
	require.NoError(t, err)

	lines := f.reportLines(t, sale.ReportID)
	require.Len(t, lines, 1)
	assert.Equal(t, "22.50", lines[0].SellingPrice.StringFixed(2))
	assert.Equal(t, "20.00", lines[0].CalculatedCOGS.StringFixed(2),
		"cambiar solo el precio no toca el COGS")
}

func TestReconcile_LineaSinIDEsVentaNueva(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 10, "10")
	sale := f.recordSale(t, "p1", 1, "20")

	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
		Sales: []dto.SaleLineInput{
			{ID: &sale.ID, ProductID: "p1", Quantity: 1, SellingPrice: sale.SellingPrice},
			{ProductID: "p1", Quantity: 2, SellingPrice: decimal.NewFromInt(21)},
		},
	})
	require.NoError(t, err)

	assert.Len(t, f.reportLines(t, sale.ReportID), 2)
	assert.Equal(t, 7, f.product(t, "p1").CurrentStock)
	f.assertStockInvariant(t, "p1")
}

func TestReconcile_ReporteInexistente(t *testing.T) {
	f := newFixture(t)
	err := f.saleUC.Reconcile(context.Background(), "nope", dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReconcile_AdSpendNegativoRechazado(t *testing.T) {
	f := newFixture(t)
	err := f.saleUC.Reconcile(context.Background(), "r1", dto.UpdateReportRequest{
		TotalAdSpend: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReconcile_AumentoSinStockFalla(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 3, "10")
	sale := f.recordSale(t, "p1", 3, "20") // stock queda en 0

	err := f.saleUC.Reconcile(context.Background(), sale.ReportID, dto.UpdateReportRequest{
		TotalAdSpend: decimal.Zero,
		Sales: []dto.SaleLineInput{
			{ID: &sale.ID, ProductID: "p1", Quantity: 5, SellingPrice: sale.SellingPrice},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
