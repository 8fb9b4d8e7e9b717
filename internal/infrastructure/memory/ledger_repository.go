package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// LedgerRepository implementa repository.LedgerRepository en memoria.
// Append-only: nunca muta ni borra asientos existentes.
type LedgerRepository struct {
	s *Store
}

func (r *LedgerRepository) Append(entry *entity.OwnerLedgerEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *entry
	r.s.ledger = append(r.s.ledger, &cp)
	return nil
}

func (r *LedgerRepository) ListByOwner(ownerID string) ([]*entity.OwnerLedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.OwnerLedgerEntry
	for _, e := range r.s.ledger {
		if e.OwnerID == ownerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *LedgerRepository) SumByOwner(ownerID string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, e := range r.s.ledger {
		if e.OwnerID == ownerID {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (r *LedgerRepository) SumPayouts(ownerID string) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, e := range r.s.ledger {
		if e.OwnerID == ownerID && e.TransactionType == entity.TxTypePayout {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (r *LedgerRepository) ListPayouts(limit, offset int) ([]*entity.OwnerLedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.OwnerLedgerEntry
	for _, e := range r.s.ledger {
		if e.TransactionType == entity.TxTypePayout {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return paginate(out, limit, offset), nil
}
