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

func newOwnerUseCase(t *testing.T) (*usecase.OwnerUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	return usecase.NewOwnerUseCase(repos.Owners, repos.Products), store
}

func TestOwnerCreate_ParticipacionValida(t *testing.T) {
	uc, _ := newOwnerUseCase(t)

	owner, err := uc.Create(context.Background(), dto.CreateOwnerRequest{
		Name: "Ana", EquityPercentage: decimal.RequireFromString("33.33"),
	})
	require.NoError(t, err)
	assert.Equal(t, "33.33", owner.EquityPercentage.StringFixed(2))
	assert.NotEmpty(t, owner.ID)
}

func TestOwnerCreate_EntradaInvalida(t *testing.T) {
	uc, _ := newOwnerUseCase(t)
	casos := []dto.CreateOwnerRequest{
		{Name: "", EquityPercentage: decimal.NewFromInt(50)},
		{Name: "Ana", EquityPercentage: decimal.NewFromInt(-1)},
		{Name: "Ana", EquityPercentage: decimal.NewFromInt(101)},
	}
	for _, c := range casos {
		_, err := uc.Create(context.Background(), c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %+v", c)
	}
}

func TestSetProductEquity_InsertaYReemplaza(t *testing.T) {
	uc, store := newOwnerUseCase(t)
	owner, err := uc.Create(context.Background(), dto.CreateOwnerRequest{
		Name: "Ana", EquityPercentage: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	require.NoError(t, store.Repos().Products.Create(&entity.Product{
		ID: "p1", Name: "Collar", SKU: "SKU-p1", CreatedAt: time.Now().UTC(),
	}))

	_, err = uc.SetProductEquity(context.Background(), owner.ID, dto.SetProductEquityRequest{
		ProductID: "p1", EquityPercentage: decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	// Fijar de nuevo reemplaza, no duplica.
	_, err = uc.SetProductEquity(context.Background(), owner.ID, dto.SetProductEquityRequest{
		ProductID: "p1", EquityPercentage: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	eqs, err := store.Repos().Owners.ListEquitiesByProduct("p1")
	require.NoError(t, err)
	require.Len(t, eqs, 1, "un socio tiene a lo sumo una fila por producto")
	assert.Equal(t, "80.00", eqs[0].EquityPercentage.StringFixed(2))
}

func TestSetProductEquity_SocioOProductoInexistente(t *testing.T) {
	uc, store := newOwnerUseCase(t)
	owner, err := uc.Create(context.Background(), dto.CreateOwnerRequest{
		Name: "Ana", EquityPercentage: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	require.NoError(t, store.Repos().Products.Create(&entity.Product{
		ID: "p1", Name: "Collar", SKU: "SKU-p1", CreatedAt: time.Now().UTC(),
	}))

	_, err = uc.SetProductEquity(context.Background(), "nope", dto.SetProductEquityRequest{
		ProductID: "p1", EquityPercentage: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SetProductEquity(context.Background(), owner.ID, dto.SetProductEquityRequest{
		ProductID: "nope", EquityPercentage: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
