package sales

import (
	"context"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/costing"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Reconcile sincroniza el reporte con el conjunto entrante de líneas
// (altas, ediciones y bajas) manteniendo stock y costos consistentes con lo
// que el reporte diga después de la edición, sin reprocesar el histórico.
// Todo el pase es una sola transacción: o aplica completo o no aplica.
//
// Protocolo:
//  1. total_ad_spend toma el valor entrante.
//  2. Las líneas existentes cuyo id no aparece se eliminan; su cantidad vuelve
//     al stock (el COGS ya asentado se descarta con la línea).
//  3. Cambio de producto en línea existente = baja + alta: se revierte el stock
//     del producto anterior y se procesa una venta completa contra el nuevo.
//  4. Cambio de cantidad con el mismo producto: los aumentos consumen lotes
//     FIFO al landing price de cada lote (base de costo heredada del sistema
//     de referencia) y validan stock; las reducciones devuelven stock y
//     escalan el COGS proporcionalmente (COGS unitario constante).
//  5. El precio se actualiza incondicionalmente al valor entrante.
//  6. Las líneas sin id se procesan como ventas nuevas.
func (uc *SaleUseCase) Reconcile(ctx context.Context, reportID string, in dto.UpdateReportRequest) error {
	if in.TotalAdSpend.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(tx *repository.Tx) error {
		report, err := tx.Reports.GetByIDForUpdate(reportID)
		if err != nil {
			return err
		}
		if report == nil {
			return domain.ErrNotFound
		}
		if err := tx.Reports.UpdateAdSpend(reportID, in.TotalAdSpend); err != nil {
			return err
		}

		existingList, err := tx.Sales.ListByReport(reportID)
		if err != nil {
			return err
		}
		existingByID := make(map[string]int, len(existingList))
		for i, s := range existingList {
			existingByID[s.ID] = i
		}
		incomingIDs := make(map[string]bool, len(in.Sales))
		for _, line := range in.Sales {
			if line.ID != nil {
				incomingIDs[*line.ID] = true
			}
		}

		// Bajas: líneas existentes ausentes del conjunto entrante.
		for _, s := range existingList {
			if incomingIDs[s.ID] {
				continue
			}
			if err := returnStock(tx, s.ProductID, s.Quantity); err != nil {
				return err
			}
			if err := tx.Sales.Delete(s.ID); err != nil {
				return err
			}
		}

		// Altas y ediciones.
		for _, line := range in.Sales {
			if line.ID == nil {
				if _, err := uc.processSale(tx, reportID, line.ProductID, line.Quantity, line.SellingPrice); err != nil {
					return err
				}
				continue
			}
			idx, ok := existingByID[*line.ID]
			if !ok {
				// id desconocido: se trata como línea nueva.
				if _, err := uc.processSale(tx, reportID, line.ProductID, line.Quantity, line.SellingPrice); err != nil {
					return err
				}
				continue
			}
			cur := existingList[idx]

			if cur.ProductID != line.ProductID {
				// Cambio de producto: baja de la línea vieja + venta completa nueva.
				if err := returnStock(tx, cur.ProductID, cur.Quantity); err != nil {
					return err
				}
				if err := tx.Sales.Delete(cur.ID); err != nil {
					return err
				}
				if _, err := uc.processSale(tx, reportID, line.ProductID, line.Quantity, line.SellingPrice); err != nil {
					return err
				}
				continue
			}

			if line.Quantity <= 0 || line.SellingPrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			product, err := tx.Products.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}

			qtyDiff := line.Quantity - cur.Quantity
			switch {
			case qtyDiff > 0:
				if product.CurrentStock < qtyDiff {
					return domain.ErrInsufficientStock
				}
				addedCost, err := depleteFIFO(tx, product.ID, qtyDiff)
				if err != nil {
					return err
				}
				if err := tx.Products.UpdateStock(product.ID, product.CurrentStock-qtyDiff); err != nil {
					return err
				}
				cur.CalculatedCOGS = costing.Round2(cur.CalculatedCOGS.Add(addedCost))
			case qtyDiff < 0:
				returned := -qtyDiff
				if err := restock(tx, product.ID, returned); err != nil {
					return err
				}
				if err := tx.Products.UpdateStock(product.ID, product.CurrentStock+returned); err != nil {
					return err
				}
				// COGS proporcional: COGS unitario constante escalado a la nueva cantidad.
				newQty := decimal.NewFromInt(int64(line.Quantity))
				oldQty := decimal.NewFromInt(int64(cur.Quantity))
				cur.CalculatedCOGS = costing.Round2(cur.CalculatedCOGS.Mul(newQty).Div(oldQty))
			}

			cur.Quantity = line.Quantity
			cur.SellingPrice = line.SellingPrice
			if err := tx.Sales.Update(cur); err != nil {
				return err
			}
		}
		return nil
	})
}
