package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// AnalyticsRepository implementa repository.AnalyticsRepository en memoria.
type AnalyticsRepository struct {
	s *Store
}

func NewAnalyticsRepository(s *Store) *AnalyticsRepository {
	return &AnalyticsRepository{s: s}
}

func (r *AnalyticsRepository) SalesHistory(_ context.Context, days int) ([]repository.DailySalesPoint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cutoff := dayOf(time.Now().UTC().AddDate(0, 0, -days))
	var out []repository.DailySalesPoint
	for _, rep := range r.s.reports {
		if dayOf(rep.Date).Before(cutoff) {
			continue
		}
		revenue, cogs := decimal.Zero, decimal.Zero
		for _, s := range r.s.sales {
			if s.ReportID != rep.ID {
				continue
			}
			revenue = revenue.Add(s.SellingPrice.Mul(decimal.NewFromInt(int64(s.Quantity))))
			cogs = cogs.Add(s.CalculatedCOGS)
		}
		dayExpenses := decimal.Zero
		for _, e := range r.s.expenses {
			if sameDay(e.Date, rep.Date) {
				dayExpenses = dayExpenses.Add(e.Amount)
			}
		}
		out = append(out, repository.DailySalesPoint{
			Date:      dayOf(rep.Date),
			Revenue:   revenue,
			NetProfit: revenue.Sub(cogs).Sub(rep.TotalAdSpend).Sub(dayExpenses),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *AnalyticsRepository) ProductSalesStats(_ context.Context, limit int) ([]repository.ProductSalesStat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	names := make(map[string]string, len(r.s.products))
	for _, p := range r.s.products {
		names[p.ID] = p.Name
	}
	totals := make(map[string]decimal.Decimal)
	for _, s := range r.s.sales {
		name, ok := names[s.ProductID]
		if !ok {
			continue
		}
		totals[name] = totals[name].Add(s.SellingPrice.Mul(decimal.NewFromInt(int64(s.Quantity))))
	}
	out := make([]repository.ProductSalesStat, 0, len(totals))
	for name, total := range totals {
		out = append(out, repository.ProductSalesStat{Name: name, TotalSales: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalSales.Equal(out[j].TotalSales) {
			return out[i].TotalSales.GreaterThan(out[j].TotalSales)
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *AnalyticsRepository) TopExpensePayers(_ context.Context, limit int) ([]repository.ExpensePayerTotal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	names := make(map[string]string, len(r.s.owners))
	for _, o := range r.s.owners {
		names[o.ID] = o.Name
	}
	totals := make(map[string]decimal.Decimal)
	for _, e := range r.s.expenses {
		if e.PaidByID == nil {
			continue
		}
		name, ok := names[*e.PaidByID]
		if !ok {
			continue
		}
		totals[name] = totals[name].Add(e.Amount)
	}
	out := make([]repository.ExpensePayerTotal, 0, len(totals))
	for name, total := range totals {
		out = append(out, repository.ExpensePayerTotal{Name: name, TotalPaid: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalPaid.Equal(out[j].TotalPaid) {
			return out[i].TotalPaid.GreaterThan(out[j].TotalPaid)
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *AnalyticsRepository) TotalSoldByProduct(_ context.Context) ([]repository.SoldCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	totals := make(map[string]int64)
	var order []string
	for _, s := range r.s.sales {
		if _, ok := totals[s.ProductID]; !ok {
			order = append(order, s.ProductID)
		}
		totals[s.ProductID] += int64(s.Quantity)
	}
	out := make([]repository.SoldCount, 0, len(order))
	for _, id := range order {
		out = append(out, repository.SoldCount{ProductID: id, Units: totals[id]})
	}
	return out, nil
}
