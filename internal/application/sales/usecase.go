// Package sales implementa el procesador de ventas y la reconciliación de
// reportes diarios editados. El COGS de cada venta se fija con el costo
// promedio (AVCO) vigente al confirmar; el agotamiento FIFO de lotes es solo
// trazabilidad y no altera el COGS.
package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/costing"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// SaleUseCase procesa ventas y ediciones de reporte de forma transaccional.
type SaleUseCase struct {
	txRunner repository.TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner repository.TxRunner) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner}
}

// RecordSale registra una venta directa contra el reporte del día indicado,
// creándolo si no existe (idempotente bajo carrera). Atómico: agotamiento de
// lotes, decremento de stock e inserción de la venta ocurren todos o ninguno.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*entity.Sale, error) {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	var sale *entity.Sale
	err = uc.txRunner.Run(ctx, func(tx *repository.Tx) error {
		report, err := tx.Reports.GetOrCreate(date)
		if err != nil {
			return err
		}
		sale, err = uc.processSale(tx, report.ID, in.ProductID, in.Quantity, in.SellingPrice)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// processSale ejecuta el algoritmo completo de venta dentro de la transacción:
// bloqueo del producto, validación de stock, COGS al AVCO vigente, agotamiento
// FIFO de lotes e inserción de la línea.
func (uc *SaleUseCase) processSale(tx *repository.Tx, reportID, productID string, qty int, price decimal.Decimal) (*entity.Sale, error) {
	if productID == "" || qty <= 0 || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := tx.Products.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CurrentStock < qty {
		return nil, domain.ErrInsufficientStock
	}

	totalCOGS := costing.UnitCOGS(product.CostPrice, qty)

	if _, err := depleteFIFO(tx, productID, qty); err != nil {
		return nil, err
	}
	if err := tx.Products.UpdateStock(productID, product.CurrentStock-qty); err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		ID:             uuid.New().String(),
		ReportID:       reportID,
		ProductID:      productID,
		Quantity:       qty,
		SellingPrice:   price,
		CalculatedCOGS: totalCOGS,
	}
	if err := tx.Sales.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// depleteFIFO resta qty unidades de los lotes abiertos del producto, del más
// antiguo al más nuevo. Devuelve el costo acumulado de las unidades tomadas al
// landing price de cada lote (lo usa la edición incremental de cantidad; la
// venta normal lo ignora porque su COGS es AVCO).
func depleteFIFO(tx *repository.Tx, productID string, qty int) (decimal.Decimal, error) {
	batches, err := tx.Batches.ListOpenByProduct(productID)
	if err != nil {
		return decimal.Zero, err
	}
	toFulfill := qty
	cost := decimal.Zero
	for _, b := range batches {
		if toFulfill <= 0 {
			break
		}
		take := b.RemainingQuantity
		if take > toFulfill {
			take = toFulfill
		}
		cost = cost.Add(b.LandingPrice.Mul(decimal.NewFromInt(int64(take))))
		if err := tx.Batches.UpdateRemaining(b.ID, b.RemainingQuantity-take); err != nil {
			return decimal.Zero, err
		}
		toFulfill -= take
	}
	return cost, nil
}

// restock devuelve qty unidades a los lotes del producto, rellenando primero
// los agotados más recientemente (el inverso del consumo FIFO). Mantiene el
// invariante current_stock == Σ remaining_quantity tras revertir líneas.
func restock(tx *repository.Tx, productID string, qty int) error {
	batches, err := tx.Batches.ListByProduct(productID)
	if err != nil {
		return err
	}
	toReturn := qty
	for i := len(batches) - 1; i >= 0 && toReturn > 0; i-- {
		b := batches[i]
		gap := b.Quantity - b.RemainingQuantity
		if gap <= 0 {
			continue
		}
		back := gap
		if back > toReturn {
			back = toReturn
		}
		if err := tx.Batches.UpdateRemaining(b.ID, b.RemainingQuantity+back); err != nil {
			return err
		}
		toReturn -= back
	}
	return nil
}

// returnStock revierte el efecto de stock de una línea: bloquea el producto,
// devuelve la cantidad a los lotes y sube current_stock. El costo base (AVCO)
// no se revierte.
func returnStock(tx *repository.Tx, productID string, qty int) error {
	product, err := tx.Products.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}
	if err := restock(tx, productID, qty); err != nil {
		return err
	}
	return tx.Products.UpdateStock(productID, product.CurrentStock+qty)
}
