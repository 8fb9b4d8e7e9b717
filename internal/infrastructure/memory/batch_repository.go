package memory

import (
	"sort"

	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// BatchRepository implementa repository.BatchRepository en memoria.
type BatchRepository struct {
	s *Store
}

func (r *BatchRepository) Create(batch *entity.InventoryBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *batch
	r.s.batches = append(r.s.batches, &cp)
	return nil
}

func (r *BatchRepository) ListOpenByProduct(productID string) ([]*entity.InventoryBatch, error) {
	return r.list(productID, true)
}

func (r *BatchRepository) ListByProduct(productID string) ([]*entity.InventoryBatch, error) {
	return r.list(productID, false)
}

func (r *BatchRepository) UpdateRemaining(batchID string, remaining int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.batches {
		if b.ID == batchID {
			b.RemainingQuantity = remaining
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *BatchRepository) list(productID string, onlyOpen bool) ([]*entity.InventoryBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.InventoryBatch
	for _, b := range r.s.batches {
		if b.ProductID != productID {
			continue
		}
		if onlyOpen && b.RemainingQuantity <= 0 {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	// orden FIFO: fecha de entrada ascendente, desempate por inserción
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateAdded.Before(out[j].DateAdded) })
	return out, nil
}
