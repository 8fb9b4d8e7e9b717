package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// SaleRepository implementa repository.SaleRepository en memoria.
type SaleRepository struct {
	s *Store
}

func (r *SaleRepository) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sale
	r.s.sales = append(r.s.sales, &cp)
	return nil
}

func (r *SaleRepository) Update(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, s := range r.s.sales {
		if s.ID == sale.ID {
			cp := *sale
			r.s.sales[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *SaleRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, s := range r.s.sales {
		if s.ID == id {
			r.s.sales = append(r.s.sales[:i], r.s.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *SaleRepository) ListByReport(reportID string) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Sale
	for _, s := range r.s.sales {
		if s.ReportID == reportID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *SaleRepository) AggregateByProduct(date *time.Time) ([]repository.ProductSalesAggregate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reportDates := make(map[string]time.Time, len(r.s.reports))
	for _, rep := range r.s.reports {
		reportDates[rep.ID] = rep.Date
	}
	acc := make(map[string]*repository.ProductSalesAggregate)
	var order []string
	for _, s := range r.s.sales {
		if date != nil {
			d, ok := reportDates[s.ReportID]
			if !ok || !sameDay(d, *date) {
				continue
			}
		}
		agg, ok := acc[s.ProductID]
		if !ok {
			agg = &repository.ProductSalesAggregate{
				ProductID: s.ProductID,
				Revenue:   decimal.Zero,
				COGS:      decimal.Zero,
			}
			acc[s.ProductID] = agg
			order = append(order, s.ProductID)
		}
		agg.Revenue = agg.Revenue.Add(s.SellingPrice.Mul(decimal.NewFromInt(int64(s.Quantity))))
		agg.COGS = agg.COGS.Add(s.CalculatedCOGS)
	}
	out := make([]repository.ProductSalesAggregate, 0, len(order))
	for _, id := range order {
		out = append(out, *acc[id])
	}
	return out, nil
}
