package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiktrack-api/internal/application/stats"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/infrastructure/memory"
)

type fixture struct {
	store *memory.Store
	uc    *stats.UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	uc := stats.NewUseCase(memory.NewAnalyticsRepository(store), repos.Expenses, repos.Owners)
	return &fixture{store: store, uc: uc}
}

func (f *fixture) addOwner(t *testing.T, id, name, pct string) {
	t.Helper()
	require.NoError(t, f.store.Repos().Owners.Create(&entity.Owner{
		ID: id, Name: name, EquityPercentage: decimal.RequireFromString(pct),
	}))
}

func (f *fixture) addExpense(t *testing.T, id string, productID, paidBy *string, amount string) {
	t.Helper()
	require.NoError(t, f.store.Repos().Expenses.Create(&entity.Expense{
		ID: id, Date: time.Now().UTC(), Category: "general",
		ProductID: productID, PaidByID: paidBy,
		Amount: decimal.RequireFromString(amount),
	}))
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// ExpenseLiabilitySummary — cuánto asume cada socio de los gastos acumulados
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseLiability_GastoGeneralPorEquityGlobal(t *testing.T) {
	f := newFixture(t)
	f.addOwner(t, "a", "Ana", "60")
	f.addOwner(t, "b", "Beto", "40")
	f.addExpense(t, "e1", nil, nil, "100")

	out, err := f.uc.ExpenseLiabilitySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Ana", out[0].Name, "orden descendente por monto")
	assert.Equal(t, "60.00", out[0].Amount.StringFixed(2))
	assert.Equal(t, "40.00", out[1].Amount.StringFixed(2))
}

func TestExpenseLiability_GastoDeProductoConEquityExplicita(t *testing.T) {
	f := newFixture(t)
	f.addOwner(t, "a", "Ana", "50")
	f.addOwner(t, "b", "Beto", "50")
	require.NoError(t, f.store.Repos().Owners.SetProductEquity(&entity.ProductEquity{
		ID: "eq1", OwnerID: "a", ProductID: "p1",
		EquityPercentage: decimal.NewFromInt(100),
	}))
	f.addExpense(t, "e1", strPtr("p1"), nil, "80")

	out, err := f.uc.ExpenseLiabilitySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Ana", out[0].Name)
	assert.Equal(t, "80.00", out[0].Amount.StringFixed(2),
		"el gasto del producto cae completo en la equity explícita")
	assert.Equal(t, "0.00", out[1].Amount.StringFixed(2))
}

func TestExpenseLiability_ProductoSinEquityCaeEnGlobal(t *testing.T) {
	f := newFixture(t)
	f.addOwner(t, "a", "Ana", "50")
	f.addOwner(t, "b", "Beto", "50")
	f.addExpense(t, "e1", strPtr("p-sin-equity"), nil, "50")

	out, err := f.uc.ExpenseLiabilitySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "25.00", out[0].Amount.StringFixed(2))
	assert.Equal(t, "25.00", out[1].Amount.StringFixed(2))
}

func TestExpenseLiability_SinGastos(t *testing.T) {
	f := newFixture(t)
	f.addOwner(t, "a", "Ana", "100")

	out, err := f.uc.ExpenseLiabilitySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Amount.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// TopExpensePayers / ProductSalesStats
// ──────────────────────────────────────────────────────────────────────────────

func TestTopExpensePayers_AgrupaPorSocio(t *testing.T) {
	f := newFixture(t)
	f.addOwner(t, "a", "Ana", "50")
	f.addOwner(t, "b", "Beto", "50")
	f.addExpense(t, "e1", nil, strPtr("a"), "30")
	f.addExpense(t, "e2", nil, strPtr("a"), "20")
	f.addExpense(t, "e3", nil, strPtr("b"), "10")
	f.addExpense(t, "e4", nil, nil, "99") // sin pagador, no cuenta

	out, err := f.uc.TopExpensePayers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Ana", out[0].Name)
	assert.Equal(t, "50.00", out[0].Amount.StringFixed(2))
	assert.Equal(t, "Beto", out[1].Name)
	assert.Equal(t, "10.00", out[1].Amount.StringFixed(2))
}

func TestProductSalesStats_RankingPorIngresos(t *testing.T) {
	f := newFixture(t)
	repos := f.store.Repos()
	require.NoError(t, repos.Products.Create(&entity.Product{
		ID: "p1", Name: "Collar", SKU: "SKU-p1", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, repos.Products.Create(&entity.Product{
		ID: "p2", Name: "Pulsera", SKU: "SKU-p2", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, repos.Reports.Create(&entity.DailyReport{
		ID: "r1", Date: time.Now().UTC(), TotalAdSpend: decimal.Zero,
	}))
	require.NoError(t, repos.Sales.Create(&entity.Sale{
		ID: "s1", ReportID: "r1", ProductID: "p1", Quantity: 2,
		SellingPrice: decimal.NewFromInt(30), CalculatedCOGS: decimal.NewFromInt(20),
	}))
	require.NoError(t, repos.Sales.Create(&entity.Sale{
		ID: "s2", ReportID: "r1", ProductID: "p2", Quantity: 1,
		SellingPrice: decimal.NewFromInt(100), CalculatedCOGS: decimal.NewFromInt(40),
	}))

	out, err := f.uc.ProductSalesStats(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Pulsera", out[0].Name, "mayor ingreso acumulado primero")
	assert.Equal(t, "100.00", out[0].Amount.StringFixed(2))
	assert.Equal(t, "Collar", out[1].Name)
	assert.Equal(t, "60.00", out[1].Amount.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesHistory
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesHistory_CalculaUtilidadNetaDelDia(t *testing.T) {
	f := newFixture(t)
	repos := f.store.Repos()
	today := time.Now().UTC()
	require.NoError(t, repos.Reports.Create(&entity.DailyReport{
		ID: "r1", Date: today, TotalAdSpend: decimal.NewFromInt(10),
	}))
	require.NoError(t, repos.Sales.Create(&entity.Sale{
		ID: "s1", ReportID: "r1", ProductID: "p1", Quantity: 2,
		SellingPrice: decimal.NewFromInt(50), CalculatedCOGS: decimal.NewFromInt(30),
	}))
	require.NoError(t, repos.Expenses.Create(&entity.Expense{
		ID: "e1", Date: today, Category: "envíos", Amount: decimal.NewFromInt(5),
	}))

	out, err := f.uc.SalesHistory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "100.00", out[0].Revenue.StringFixed(2))
	// 100 − 30 − 10 − 5 = 55.
	assert.Equal(t, "55.00", out[0].NetProfit.StringFixed(2))
}

func TestSalesHistory_ExcluyeDiasFueraDeVentana(t *testing.T) {
	f := newFixture(t)
	repos := f.store.Repos()
	old := time.Now().UTC().AddDate(0, 0, -40)
	require.NoError(t, repos.Reports.Create(&entity.DailyReport{
		ID: "r1", Date: old, TotalAdSpend: decimal.Zero,
	}))

	out, err := f.uc.SalesHistory(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, out, "un reporte de hace 40 días no entra en la ventana de 7")
}
