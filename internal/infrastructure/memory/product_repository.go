package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// ProductRepository implementa repository.ProductRepository en memoria.
type ProductRepository struct {
	s *Store
}

func (r *ProductRepository) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == product.ID || p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.s.products = append(r.s.products, &cp)
	return nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.findCopy(func(p *entity.Product) bool { return p.ID == id }), nil
}

func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.findCopy(func(p *entity.Product) bool { return p.SKU == sku }), nil
}

// GetForUpdate no bloquea filas en memoria; el mutex del Store serializa.
func (r *ProductRepository) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *ProductRepository) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == product.ID {
			cp := *product
			r.s.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepository) UpdateCostAndStock(productID string, cost decimal.Decimal, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == productID {
			p.CostPrice = cost
			p.CurrentStock = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepository) UpdateStock(productID string, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == productID {
			p.CurrentStock = stock
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	return paginate(all, limit, offset), nil
}

func (r *ProductRepository) ListAll() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ProductRepository) findCopy(match func(*entity.Product) bool) *entity.Product {
	for _, p := range r.s.products {
		if match(p) {
			cp := *p
			return &cp
		}
	}
	return nil
}
