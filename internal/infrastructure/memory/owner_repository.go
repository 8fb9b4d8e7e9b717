package memory

import (
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// OwnerRepository implementa repository.OwnerRepository en memoria.
type OwnerRepository struct {
	s *Store
}

func (r *OwnerRepository) Create(owner *entity.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.owners {
		if o.ID == owner.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *owner
	r.s.owners = append(r.s.owners, &cp)
	return nil
}

func (r *OwnerRepository) GetByID(id string) (*entity.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.owners {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *OwnerRepository) List() ([]*entity.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Owner, 0, len(r.s.owners))
	for _, o := range r.s.owners {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *OwnerRepository) SetProductEquity(eq *entity.ProductEquity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.equities {
		if e.OwnerID == eq.OwnerID && e.ProductID == eq.ProductID {
			e.EquityPercentage = eq.EquityPercentage
			return nil
		}
	}
	cp := *eq
	r.s.equities = append(r.s.equities, &cp)
	return nil
}

func (r *OwnerRepository) ListEquitiesByProduct(productID string) ([]*entity.ProductEquity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ProductEquity
	for _, e := range r.s.equities {
		if e.ProductID == productID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *OwnerRepository) ListAllEquities() ([]*entity.ProductEquity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.ProductEquity, 0, len(r.s.equities))
	for _, e := range r.s.equities {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}
