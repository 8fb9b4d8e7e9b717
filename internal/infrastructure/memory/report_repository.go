package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// ReportRepository implementa repository.ReportRepository en memoria.
type ReportRepository struct {
	s *Store
}

func (r *ReportRepository) Create(report *entity.DailyReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.reports {
		if sameDay(rep.Date, report.Date) {
			return domain.ErrConflict
		}
	}
	cp := *report
	cp.Date = dayOf(report.Date)
	r.s.reports = append(r.s.reports, &cp)
	return nil
}

func (r *ReportRepository) GetOrCreate(date time.Time) (*entity.DailyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.reports {
		if sameDay(rep.Date, date) {
			cp := *rep
			return &cp, nil
		}
	}
	rep := &entity.DailyReport{
		ID:           uuid.New().String(),
		Date:         dayOf(date),
		TotalAdSpend: decimal.Zero,
	}
	r.s.reports = append(r.s.reports, rep)
	cp := *rep
	return &cp, nil
}

func (r *ReportRepository) GetByID(id string) (*entity.DailyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.reports {
		if rep.ID == id {
			cp := *rep
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ReportRepository) GetByIDForUpdate(id string) (*entity.DailyReport, error) {
	return r.GetByID(id)
}

func (r *ReportRepository) GetByDate(date time.Time) (*entity.DailyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.reports {
		if sameDay(rep.Date, date) {
			cp := *rep
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ReportRepository) List(limit, offset int) ([]*entity.DailyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := r.sortedDesc(r.s.reports)
	return paginate(out, limit, offset), nil
}

func (r *ReportRepository) ListRange(start, end time.Time) ([]*entity.DailyReport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var in []*entity.DailyReport
	s, e := dayOf(start), dayOf(end)
	for _, rep := range r.s.reports {
		d := dayOf(rep.Date)
		if !d.Before(s) && !d.After(e) {
			in = append(in, rep)
		}
	}
	return r.sortedDesc(in), nil
}

func (r *ReportRepository) UpdateAdSpend(reportID string, adSpend decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.reports {
		if rep.ID == reportID {
			rep.TotalAdSpend = adSpend
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ReportRepository) SumAdSpend(date *time.Time) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, rep := range r.s.reports {
		if date != nil && !sameDay(rep.Date, *date) {
			continue
		}
		total = total.Add(rep.TotalAdSpend)
	}
	return total, nil
}

func (r *ReportRepository) sortedDesc(reports []*entity.DailyReport) []*entity.DailyReport {
	out := make([]*entity.DailyReport, 0, len(reports))
	for _, rep := range reports {
		cp := *rep
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
