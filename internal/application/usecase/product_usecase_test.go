package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/application/usecase"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/infrastructure/memory"
)

func newProductUseCase(t *testing.T) (*usecase.ProductUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	uc := usecase.NewProductUseCase(repos.Products, repos.Owners, memory.NewAnalyticsRepository(store))
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_ConSKUExplicito(t *testing.T) {
	uc, _ := newProductUseCase(t)

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Collar", SKU: "COL-001",
		Price:     decimal.NewFromInt(30),
		CostPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "COL-001", p.SKU)
	assert.Equal(t, 0, p.CurrentStock, "el stock entra por lotes, no por el alta")
}

func TestProductCreate_SKUVacioGeneraUno(t *testing.T) {
	uc, _ := newProductUseCase(t)

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Collar", Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	assert.Len(t, p.SKU, 8, "SKU autogenerado de 8 caracteres")
}

func TestProductCreate_SKURepetido(t *testing.T) {
	uc, _ := newProductUseCase(t)
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Collar", SKU: "COL-001", Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Otro", SKU: "COL-001", Price: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_RegistraEquities(t *testing.T) {
	uc, store := newProductUseCase(t)
	require.NoError(t, store.Repos().Owners.Create(&entity.Owner{
		ID: "a", Name: "Ana", EquityPercentage: decimal.NewFromInt(50),
	}))

	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Collar", Price: decimal.NewFromInt(30),
		Equities: []dto.ProductEquityInput{
			{OwnerID: "a", EquityPercentage: decimal.NewFromInt(80)},
		},
	})
	require.NoError(t, err)

	eqs, err := store.Repos().Owners.ListEquitiesByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, eqs, 1)
	assert.Equal(t, "a", eqs[0].OwnerID)
	assert.Equal(t, "80.00", eqs[0].EquityPercentage.StringFixed(2))
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	uc, _ := newProductUseCase(t)
	casos := []dto.CreateProductRequest{
		{Name: "", Price: decimal.NewFromInt(10)},
		{Name: "Collar", Price: decimal.NewFromInt(-1)},
		{Name: "Collar", Price: decimal.NewFromInt(10), CostPrice: decimal.NewFromInt(-1)},
	}
	for _, c := range casos {
		_, err := uc.Create(context.Background(), c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %+v", c)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_IncluyeUnidadesVendidas(t *testing.T) {
	uc, store := newProductUseCase(t)
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Collar", Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	require.NoError(t, store.Repos().Reports.Create(&entity.DailyReport{
		ID: "r1", Date: time.Now().UTC(), TotalAdSpend: decimal.Zero,
	}))
	require.NoError(t, store.Repos().Sales.Create(&entity.Sale{
		ID: "s1", ReportID: "r1", ProductID: p.ID, Quantity: 3,
		SellingPrice: decimal.NewFromInt(30), CalculatedCOGS: decimal.NewFromInt(30),
	}))

	out, err := uc.List(context.Background(), 100, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].TotalSold)
}

func TestProductUpdate_NoTocaCostoNiStock(t *testing.T) {
	uc, store := newProductUseCase(t)
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Collar", Price: decimal.NewFromInt(30), CostPrice: decimal.NewFromInt(12),
	})
	require.NoError(t, err)
	require.NoError(t, store.Repos().Products.UpdateStock(p.ID, 7))

	updated, err := uc.Update(context.Background(), p.ID, dto.UpdateProductRequest{
		Name: "Collar dorado", Price: decimal.NewFromInt(35),
	})
	require.NoError(t, err)

	assert.Equal(t, "Collar dorado", updated.Name)
	assert.Equal(t, "35.00", updated.Price.StringFixed(2))
	assert.Equal(t, "12.00", updated.CostPrice.StringFixed(2), "el costo promedio no se edita a mano")
	assert.Equal(t, 7, updated.CurrentStock)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc, _ := newProductUseCase(t)
	_, err := uc.Update(context.Background(), "nope", dto.UpdateProductRequest{
		Name: "X", Price: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc, _ := newProductUseCase(t)
	_, err := uc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
