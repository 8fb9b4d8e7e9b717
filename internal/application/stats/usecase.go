package stats

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain/costing"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

const (
	defaultHistoryDays = 30
	topProductsLimit   = 10
	topPayersLimit     = 5
)

var hundred = decimal.NewFromInt(100)

// UseCase expone las estadísticas agregadas del tablero.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	expenseRepo   repository.ExpenseRepository
	ownerRepo     repository.OwnerRepository
}

func NewUseCase(analytics repository.AnalyticsRepository, expenses repository.ExpenseRepository, owners repository.OwnerRepository) *UseCase {
	return &UseCase{analyticsRepo: analytics, expenseRepo: expenses, ownerRepo: owners}
}

// SalesHistory devuelve ingresos y utilidad neta por día de los últimos N días.
func (uc *UseCase) SalesHistory(ctx context.Context, days int) ([]dto.SalesHistoryPoint, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}
	points, err := uc.analyticsRepo.SalesHistory(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesHistoryPoint, 0, len(points))
	for _, p := range points {
		out = append(out, dto.SalesHistoryPoint{
			Date:      dto.FormatDate(p.Date),
			Revenue:   p.Revenue,
			NetProfit: p.NetProfit,
		})
	}
	return out, nil
}

// ProductSalesStats devuelve los productos con mayores ventas acumuladas.
func (uc *UseCase) ProductSalesStats(ctx context.Context) ([]dto.NameAmount, error) {
	rows, err := uc.analyticsRepo.ProductSalesStats(ctx, topProductsLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NameAmount, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NameAmount{Name: r.Name, Amount: r.TotalSales})
	}
	return out, nil
}

// TopExpensePayers agrupa los gastos por el socio que los adelantó.
func (uc *UseCase) TopExpensePayers(ctx context.Context) ([]dto.NameAmount, error) {
	rows, err := uc.analyticsRepo.TopExpensePayers(ctx, topPayersLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NameAmount, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NameAmount{Name: r.Name, Amount: r.TotalPaid})
	}
	return out, nil
}

// ExpenseLiabilitySummary estima cuánto de los gastos acumulados le
// corresponde asumir a cada socio. Los gastos de un producto con equity
// explícita se reparten por esa equity; el resto por la equity global.
func (uc *UseCase) ExpenseLiabilitySummary(ctx context.Context) ([]dto.NameAmount, error) {
	expenses, err := uc.expenseRepo.ListByWindow(nil)
	if err != nil {
		return nil, err
	}
	owners, err := uc.ownerRepo.List()
	if err != nil {
		return nil, err
	}
	equities, err := uc.ownerRepo.ListAllEquities()
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string][]*entity.ProductEquity)
	for _, eq := range equities {
		byProduct[eq.ProductID] = append(byProduct[eq.ProductID], eq)
	}

	liability := make(map[string]decimal.Decimal, len(owners))
	for _, o := range owners {
		liability[o.ID] = decimal.Zero
	}

	addGlobal := func(amount decimal.Decimal) {
		for _, o := range owners {
			liability[o.ID] = liability[o.ID].Add(amount.Mul(o.EquityPercentage).Div(hundred))
		}
	}

	for _, exp := range expenses {
		if exp.ProductID != nil {
			if eqs := byProduct[*exp.ProductID]; len(eqs) > 0 {
				for _, eq := range eqs {
					liability[eq.OwnerID] = liability[eq.OwnerID].Add(exp.Amount.Mul(eq.EquityPercentage).Div(hundred))
				}
				continue
			}
		}
		addGlobal(exp.Amount)
	}

	out := make([]dto.NameAmount, 0, len(owners))
	for _, o := range owners {
		out = append(out, dto.NameAmount{Name: o.Name, Amount: costing.Round2(liability[o.ID])})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
