package profit

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/equity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// GlobalCostsLabel etiqueta de la línea de costos globales en el desglose.
const GlobalCostsLabel = "Costos globales (ads y gastos)"

// productFinancials acumula la actividad financiera de un producto en la ventana.
type productFinancials struct {
	revenue  decimal.Decimal
	cogs     decimal.Decimal
	expenses decimal.Decimal
}

// allocationResult es el resultado del reparto: total por socio y desglose por concepto.
type allocationResult struct {
	totals    map[string]decimal.Decimal            // ownerID -> utilidad neta asignada
	breakdown map[string]map[string]decimal.Decimal // ownerID -> concepto -> monto
}

// computeAllocations es el núcleo puro del motor de distribución:
//
//  1. Neto por producto = ingresos − COGS − gastos específicos del producto.
//  2. El neto se reparte por ProductEquity del producto, o por equity global de
//     cada socio si el producto no tiene reparto explícito. Redondeo por
//     asignación; el residuo de redondeo se absorbe, no se reconcilia.
//  3. Costos globales (gastos sin producto + ad spend) se reparten SIEMPRE por
//     equity global y se restan del total de cada socio, tenga o no
//     asignaciones por producto.
func computeAllocations(
	owners []*entity.Owner,
	productNames map[string]string,
	equitiesByProduct map[string][]*entity.ProductEquity,
	salesAgg []repository.ProductSalesAggregate,
	expenses []*entity.Expense,
	adSpend decimal.Decimal,
) *allocationResult {
	fins := make(map[string]*productFinancials)
	finFor := func(pid string) *productFinancials {
		f, ok := fins[pid]
		if !ok {
			f = &productFinancials{revenue: decimal.Zero, cogs: decimal.Zero, expenses: decimal.Zero}
			fins[pid] = f
		}
		return f
	}

	for _, agg := range salesAgg {
		f := finFor(agg.ProductID)
		f.revenue = f.revenue.Add(agg.Revenue)
		f.cogs = f.cogs.Add(agg.COGS)
	}

	globalExpenses := decimal.Zero
	for _, exp := range expenses {
		if exp.ProductID != nil {
			f := finFor(*exp.ProductID)
			f.expenses = f.expenses.Add(exp.Amount)
		} else {
			globalExpenses = globalExpenses.Add(exp.Amount)
		}
	}

	res := &allocationResult{
		totals:    make(map[string]decimal.Decimal, len(owners)),
		breakdown: make(map[string]map[string]decimal.Decimal, len(owners)),
	}
	for _, o := range owners {
		res.totals[o.ID] = decimal.Zero
		res.breakdown[o.ID] = make(map[string]decimal.Decimal)
	}

	// Reparto del neto de cada producto con actividad financiera.
	for pid, fin := range fins {
		net := fin.revenue.Sub(fin.cogs).Sub(fin.expenses)
		policy := equity.PolicyFor(equitiesByProduct[pid], owners)
		label := productNames[pid]
		if label == "" {
			label = pid
		}
		for _, share := range policy.Allocate(net) {
			if _, ok := res.totals[share.OwnerID]; !ok {
				continue // fila de equity de un socio que ya no existe
			}
			res.totals[share.OwnerID] = res.totals[share.OwnerID].Add(share.Amount)
			res.breakdown[share.OwnerID][label] = res.breakdown[share.OwnerID][label].Add(share.Amount)
		}
	}

	// Costos globales: siempre por equity global, restados a todos los socios.
	globalCosts := globalExpenses.Add(adSpend)
	for _, share := range equity.GlobalPolicy(owners).Allocate(globalCosts) {
		res.totals[share.OwnerID] = res.totals[share.OwnerID].Sub(share.Amount)
		res.breakdown[share.OwnerID][GlobalCostsLabel] = share.Amount.Neg()
	}
	return res
}

// groupEquities agrupa filas de ProductEquity por producto.
func groupEquities(all []*entity.ProductEquity) map[string][]*entity.ProductEquity {
	grouped := make(map[string][]*entity.ProductEquity)
	for _, eq := range all {
		grouped[eq.ProductID] = append(grouped[eq.ProductID], eq)
	}
	return grouped
}
