// Package profit implementa el motor de distribución de utilidades: calcula el
// neto por producto en una ventana (un día o todo el histórico), lo reparte
// entre socios por equity por producto con fallback a equity global, resta la
// porción de costos globales y asienta el resultado en el libro de socios.
package profit

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/costing"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// UseCase motor de distribución de utilidades.
type UseCase struct {
	txRunner    repository.TxRunner
	ownerRepo   repository.OwnerRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	reportRepo  repository.ReportRepository
	ledgerRepo  repository.LedgerRepository
}

// NewUseCase construye el motor. Los repos sueltos se usan para lecturas;
// txRunner para la distribución con efectos.
func NewUseCase(
	txRunner repository.TxRunner,
	ownerRepo repository.OwnerRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	reportRepo repository.ReportRepository,
	ledgerRepo repository.LedgerRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		ownerRepo:   ownerRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		reportRepo:  reportRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// ComputeProfitBreakdown calcula el desglose de utilidades por socio para una
// ventana: una fecha concreta o todo el histórico cuando date es nil.
// Solo lectura: no escribe asientos. Para cada socio:
//
//	total_profit = Σ asignaciones por producto − porción de costos globales
//	balance      = total_profit − total pagado (asientos PAYOUT)
func (uc *UseCase) ComputeProfitBreakdown(ctx context.Context, date *time.Time) ([]*dto.OwnerBreakdownResponse, error) {
	owners, err := uc.ownerRepo.List()
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return []*dto.OwnerBreakdownResponse{}, nil
	}
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	allEquities, err := uc.ownerRepo.ListAllEquities()
	if err != nil {
		return nil, err
	}
	salesAgg, err := uc.saleRepo.AggregateByProduct(date)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.ListByWindow(date)
	if err != nil {
		return nil, err
	}
	adSpend, err := uc.reportRepo.SumAdSpend(date)
	if err != nil {
		return nil, err
	}

	res := computeAllocations(owners, names, groupEquities(allEquities), salesAgg, expenses, adSpend)

	out := make([]*dto.OwnerBreakdownResponse, 0, len(owners))
	for _, o := range owners {
		paid, err := uc.ledgerRepo.SumPayouts(o.ID)
		if err != nil {
			return nil, err
		}
		totalPaid := costing.Round2(paid.Neg()) // asientos PAYOUT son negativos
		total := costing.Round2(res.totals[o.ID])

		lines := make([]dto.BreakdownLine, 0, len(res.breakdown[o.ID]))
		for name, amount := range res.breakdown[o.ID] {
			lines = append(lines, dto.BreakdownLine{Name: name, Amount: amount})
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].Amount.GreaterThan(lines[j].Amount) })

		out = append(out, &dto.OwnerBreakdownResponse{
			ID:          o.ID,
			Name:        o.Name,
			TotalProfit: total,
			TotalPaid:   totalPaid,
			Balance:     costing.Round2(total.Sub(totalPaid)),
			Breakdown:   lines,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalProfit.GreaterThan(out[j].TotalProfit) })
	return out, nil
}

// DistributeDailyProfit ejecuta el reparto del día de un reporte y asienta un
// PROFIT_SHARE por cada socio con resultado distinto de cero. No borra ni
// ajusta asientos previos: llamarlo dos veces para la misma fecha asienta dos
// veces (comportamiento documentado, no idempotente).
func (uc *UseCase) DistributeDailyProfit(ctx context.Context, reportID string) ([]*entity.OwnerLedgerEntry, error) {
	var entries []*entity.OwnerLedgerEntry
	err := uc.txRunner.Run(ctx, func(tx *repository.Tx) error {
		report, err := tx.Reports.GetByIDForUpdate(reportID)
		if err != nil {
			return err
		}
		if report == nil {
			return domain.ErrNotFound
		}
		owners, err := tx.Owners.List()
		if err != nil {
			return err
		}
		if len(owners) == 0 {
			return nil
		}
		date := report.Date
		salesAgg, err := aggregateReportSales(tx, reportID)
		if err != nil {
			return err
		}
		expenses, err := tx.Expenses.ListByWindow(&date)
		if err != nil {
			return err
		}
		allEquities, err := tx.Owners.ListAllEquities()
		if err != nil {
			return err
		}

		res := computeAllocations(owners, nil, groupEquities(allEquities), salesAgg, expenses, report.TotalAdSpend)

		now := time.Now().UTC()
		for _, o := range owners {
			amount := res.totals[o.ID]
			if amount.IsZero() {
				continue
			}
			entry := &entity.OwnerLedgerEntry{
				ID:              uuid.New().String(),
				OwnerID:         o.ID,
				Amount:          costing.Round2(amount),
				TransactionType: entity.TxTypeProfitShare,
				Date:            now,
			}
			if err := tx.Ledger.Append(entry); err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// aggregateReportSales agrupa ingresos y COGS por producto de las líneas de un reporte.
func aggregateReportSales(tx *repository.Tx, reportID string) ([]repository.ProductSalesAggregate, error) {
	salesList, err := tx.Sales.ListByReport(reportID)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string]*repository.ProductSalesAggregate)
	order := make([]string, 0)
	for _, s := range salesList {
		agg, ok := byProduct[s.ProductID]
		if !ok {
			agg = &repository.ProductSalesAggregate{ProductID: s.ProductID, Revenue: decimal.Zero, COGS: decimal.Zero}
			byProduct[s.ProductID] = agg
			order = append(order, s.ProductID)
		}
		agg.Revenue = agg.Revenue.Add(s.SellingPrice.Mul(decimal.NewFromInt(int64(s.Quantity))))
		agg.COGS = agg.COGS.Add(s.CalculatedCOGS)
	}
	out := make([]repository.ProductSalesAggregate, 0, len(order))
	for _, pid := range order {
		out = append(out, *byProduct[pid])
	}
	return out, nil
}
