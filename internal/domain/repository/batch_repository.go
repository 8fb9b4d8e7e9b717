package repository

import "github.com/jhoicas/tiktrack-api/internal/domain/entity"

// BatchRepository define el puerto de persistencia para lotes de inventario.
// Los listados vienen ordenados por DateAdded ascendente con desempate por id,
// que es el orden de consumo FIFO.
type BatchRepository interface {
	Create(batch *entity.InventoryBatch) error
	// ListOpenByProduct devuelve los lotes con RemainingQuantity > 0.
	ListOpenByProduct(productID string) ([]*entity.InventoryBatch, error)
	// ListByProduct devuelve todos los lotes del producto, agotados incluidos
	// (la reversión de ediciones rellena lotes agotados).
	ListByProduct(productID string) ([]*entity.InventoryBatch, error)
	UpdateRemaining(batchID string, remaining int) error
}
