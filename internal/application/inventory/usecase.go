// Package inventory implementa la entrada de lotes de inventario: creación del
// lote, recálculo del costo promedio ponderado y actualización del stock del
// producto, todo en una transacción.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/costing"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// AddBatchUseCase registra lotes de entrada de forma transaccional con bloqueo
// de fila sobre el producto (SELECT FOR UPDATE) y Commit/Rollback.
type AddBatchUseCase struct {
	txRunner  repository.TxRunner
	batchRepo repository.BatchRepository
}

// NewAddBatchUseCase construye el caso de uso.
func NewAddBatchUseCase(txRunner repository.TxRunner, batchRepo repository.BatchRepository) *AddBatchUseCase {
	return &AddBatchUseCase{txRunner: txRunner, batchRepo: batchRepo}
}

// AddBatch crea un lote y actualiza el producto:
//
//	nuevo_costo = (stock*costo_actual + cantidad*costo_lote) / (stock+cantidad)
//	cost_price  = round2(nuevo_costo);  current_stock += cantidad
//
// El cambio de costo aplica a todas las ventas futuras, nunca retroactivamente.
// Devuelve domain.ErrNotFound si el producto no existe y domain.ErrInvalidInput
// si la cantidad no es positiva o el costo de aterrizaje es negativo.
func (uc *AddBatchUseCase) AddBatch(ctx context.Context, in dto.AddBatchRequest) (*entity.InventoryBatch, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.LandingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var batch *entity.InventoryBatch
	err := uc.txRunner.Run(ctx, func(tx *repository.Tx) error {
		product, err := tx.Products.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newCost := costing.AverageCost(product.CurrentStock, product.CostPrice, in.Quantity, in.LandingPrice)

		batch = &entity.InventoryBatch{
			ID:                uuid.New().String(),
			ProductID:         product.ID,
			Quantity:          in.Quantity,
			RemainingQuantity: in.Quantity,
			LandingPrice:      in.LandingPrice,
			DateAdded:         time.Now().UTC(),
		}
		if err := tx.Batches.Create(batch); err != nil {
			return err
		}
		return tx.Products.UpdateCostAndStock(product.ID, costing.Round2(newCost), product.CurrentStock+in.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// ProductBatches devuelve todos los lotes de un producto en orden FIFO (lectura).
func (uc *AddBatchUseCase) ProductBatches(ctx context.Context, productID string) ([]*entity.InventoryBatch, error) {
	return uc.batchRepo.ListByProduct(productID)
}
