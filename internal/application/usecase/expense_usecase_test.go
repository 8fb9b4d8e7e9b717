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

func newExpenseUseCase(t *testing.T) (*usecase.ExpenseUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	return usecase.NewExpenseUseCase(repos.Expenses, repos.Products, repos.Owners), store
}

func strPtr(s string) *string { return &s }

func TestExpenseCreate_GastoGeneral(t *testing.T) {
	uc, _ := newExpenseUseCase(t)

	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Date: "2026-01-15", Category: "  envíos ", Amount: decimal.RequireFromString("12.30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-15", resp.Date)
	assert.Equal(t, "envíos", resp.Category, "la categoría se guarda sin espacios")
	assert.Nil(t, resp.ProductID)
}

func TestExpenseCreate_ValidaReferencias(t *testing.T) {
	uc, store := newExpenseUseCase(t)
	require.NoError(t, store.Repos().Products.Create(&entity.Product{
		ID: "p1", Name: "Collar", SKU: "SKU-p1", CreatedAt: time.Now().UTC(),
	}))

	// product_id válido pasa.
	_, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Date: "2026-01-15", Category: "empaque", Amount: decimal.NewFromInt(5),
		ProductID: strPtr("p1"),
	})
	require.NoError(t, err)

	// product_id inexistente falla.
	_, err = uc.Create(context.Background(), dto.CreateExpenseRequest{
		Date: "2026-01-15", Category: "empaque", Amount: decimal.NewFromInt(5),
		ProductID: strPtr("nope"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// paid_by_id inexistente falla.
	_, err = uc.Create(context.Background(), dto.CreateExpenseRequest{
		Date: "2026-01-15", Category: "empaque", Amount: decimal.NewFromInt(5),
		PaidByID: strPtr("nope"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseCreate_EntradaInvalida(t *testing.T) {
	uc, _ := newExpenseUseCase(t)
	casos := []dto.CreateExpenseRequest{
		{Date: "15/01/2026", Category: "envíos", Amount: decimal.NewFromInt(5)},
		{Date: "2026-01-15", Category: "  ", Amount: decimal.NewFromInt(5)},
		{Date: "2026-01-15", Category: "envíos", Amount: decimal.Zero},
		{Date: "2026-01-15", Category: "envíos", Amount: decimal.NewFromInt(-5)},
	}
	for _, c := range casos {
		_, err := uc.Create(context.Background(), c)
		assert.Error(t, err, "caso %+v", c)
	}
}

func TestExpenseList_Paginado(t *testing.T) {
	uc, _ := newExpenseUseCase(t)
	for i, d := range []string{"2026-01-10", "2026-01-12", "2026-01-11"} {
		_, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
			Date: d, Category: "general", Amount: decimal.NewFromInt(int64(i + 1)),
		})
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	rest, err := uc.List(context.Background(), dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
