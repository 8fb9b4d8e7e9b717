package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/application/inventory"
	"github.com/jhoicas/tiktrack-api/internal/application/sales"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/infrastructure/memory"
)

const testDate = "2026-01-15"

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: almacén en memoria con los casos de uso reales encima.
// Los lotes se cargan por el caso de uso de inventario para que stock y costo
// promedio queden como en producción.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store   *memory.Store
	saleUC  *sales.SaleUseCase
	batchUC *inventory.AddBatchUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	return &fixture{
		store:   store,
		saleUC:  sales.NewSaleUseCase(runner),
		batchUC: inventory.NewAddBatchUseCase(runner, store.Repos().Batches),
	}
}

func (f *fixture) createProduct(t *testing.T, id, name string) {
	t.Helper()
	err := f.store.Repos().Products.Create(&entity.Product{
		ID:        id,
		Name:      name,
		SKU:       "SKU-" + id,
		Price:     decimal.NewFromInt(30),
		CostPrice: decimal.Zero,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func (f *fixture) addBatch(t *testing.T, productID string, qty int, landing string) {
	t.Helper()
	_, err := f.batchUC.AddBatch(context.Background(), dto.AddBatchRequest{
		ProductID:    productID,
		Quantity:     qty,
		LandingPrice: decimal.RequireFromString(landing),
	})
	require.NoError(t, err)
}

func (f *fixture) product(t *testing.T, id string) *entity.Product {
	t.Helper()
	p, err := f.store.Repos().Products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func (f *fixture) batches(t *testing.T, productID string) []*entity.InventoryBatch {
	t.Helper()
	bs, err := f.store.Repos().Batches.ListByProduct(productID)
	require.NoError(t, err)
	return bs
}

// assertStockInvariant verifica current_stock == Σ remaining_quantity.
func (f *fixture) assertStockInvariant(t *testing.T, productID string) {
	t.Helper()
	sum := 0
	for _, b := range f.batches(t, productID) {
		sum += b.RemainingQuantity
	}
	assert.Equal(t, f.product(t, productID).CurrentStock, sum,
		"current_stock debe igualar la suma de remaining_quantity de los lotes")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_COGSAlPromedioVigente(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 10, "10")
	f.addBatch(t, "p1", 10, "20") // promedio queda en 15.00

	require.Equal(t, "15.00", f.product(t, "p1").CostPrice.StringFixed(2))

	sale, err := f.saleUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date:         testDate,
		ProductID:    "p1",
		Quantity:     3,
		SellingPrice: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	assert.Equal(t, "45.00", sale.CalculatedCOGS.StringFixed(2),
		"COGS = 3 unidades al promedio 15.00")
	assert.Equal(t, 17, f.product(t, "p1").CurrentStock)
	f.assertStockInvariant(t, "p1")
}

func TestRecordSale_COGSNoCambiaConLotesPosteriores(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 10, "10")

	sale, err := f.saleUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date: testDate, ProductID: "p1", Quantity: 2, SellingPrice: decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	require.Equal(t, "20.00", sale.CalculatedCOGS.StringFixed(2))

	// Un lote caro posterior sube el promedio pero no toca ventas ya asentadas.
	f.addBatch(t, "p1", 10, "50")

	report, err := f.store.Repos().Reports.GetByID(sale.ReportID)
	require.NoError(t, err)
	lines, err := f.store.Repos().Sales.ListByReport(report.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "20.00", lines[0].CalculatedCOGS.StringFixed(2),
		"el COGS queda congelado al confirmar la venta")
}

func TestRecordSale_AgotaLotesFIFO(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 5, "10") // lote más antiguo
	f.addBatch(t, "p1", 5, "20")

	_, err := f.saleUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date: testDate, ProductID: "p1", Quantity: 7, SellingPrice: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	bs := f.batches(t, "p1")
	require.Len(t, bs, 2)
	assert.Equal(t, 0, bs[0].RemainingQuantity, "el lote más antiguo se agota primero")
	assert.Equal(t, 3, bs[1].RemainingQuantity, "el segundo lote absorbe el resto")
	f.assertStockInvariant(t, "p1")
}

func TestRecordSale_CreaReporteDelDiaSiNoExiste(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 10, "10")

	sale, err := f.saleUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date: testDate, ProductID: "p1", Quantity: 1, SellingPrice: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	date, err := dto.ParseDate(testDate)
	require.NoError(t, err)
	report, err := f.store.Repos().Reports.GetByDate(date)
	require.NoError(t, err)
	require.NotNil(t, report, "la venta directa crea el reporte del día")
	assert.Equal(t, report.ID, sale.ReportID)

	// Segunda venta del mismo día reutiliza el reporte.
	sale2, err := f.saleUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date: testDate, ProductID: "p1", Quantity: 1, SellingPrice: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.Equal(t, sale.ReportID, sale2.ReportID)
}

func TestRecordSale_StockInsuficiente(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 3, "10")

	_, err := f.saleUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date: testDate, ProductID: "p1", Quantity: 4, SellingPrice: decimal.NewFromInt(40),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada quedó a medias: stock y lotes intactos.
	assert.Equal(t, 3, f.product(t, "p1").CurrentStock)
	f.assertStockInvariant(t, "p1")
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.saleUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date: testDate, ProductID: "nope", Quantity: 1, SellingPrice: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	f.createProduct(t, "p1", "Collar")
	f.addBatch(t, "p1", 5, "10")

	casos := []dto.RecordSaleRequest{
		{Date: testDate, ProductID: "p1", Quantity: 0, SellingPrice: decimal.NewFromInt(10)},
		{Date: testDate, ProductID: "p1", Quantity: -1, SellingPrice: decimal.NewFromInt(10)},
		{Date: testDate, ProductID: "p1", Quantity: 1, SellingPrice: decimal.NewFromInt(-5)},
		{Date: "15/01/2026", ProductID: "p1", Quantity: 1, SellingPrice: decimal.NewFromInt(10)},
	}
	for _, c := range casos {
		_, err := f.saleUC.RecordSale(context.Background(), c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %+v", c)
	}
}
