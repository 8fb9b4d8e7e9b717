package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// ExpenseRepository implementa repository.ExpenseRepository en memoria.
type ExpenseRepository struct {
	s *Store
}

func (r *ExpenseRepository) Create(expense *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *expense
	r.s.expenses = append(r.s.expenses, &cp)
	return nil
}

func (r *ExpenseRepository) List(limit, offset int) ([]*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Expense, 0, len(r.s.expenses))
	for _, e := range r.s.expenses {
		cp := *e
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return paginate(out, limit, offset), nil
}

func (r *ExpenseRepository) ListByWindow(date *time.Time) ([]*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Expense
	for _, e := range r.s.expenses {
		if date != nil && !sameDay(e.Date, *date) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}
