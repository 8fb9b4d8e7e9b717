package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el tablero.
// Trabaja siempre contra el pool, fuera de transacción.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesHistory devuelve ingresos y utilidad neta por día de los últimos N días.
func (r *AnalyticsRepo) SalesHistory(ctx context.Context, days int) ([]repository.DailySalesPoint, error) {
	query := `
		SELECT dr.date,
		       COALESCE(SUM(s.selling_price * s.quantity), 0) AS revenue,
		       COALESCE(SUM(s.selling_price * s.quantity), 0)
		           - COALESCE(SUM(s.calculated_cogs), 0)
		           - dr.total_ad_spend
		           - COALESCE(e.total, 0) AS net_profit
		FROM daily_reports dr
		LEFT JOIN sales s ON s.report_id = dr.id
		LEFT JOIN (
			SELECT date, SUM(amount) AS total FROM expenses GROUP BY date
		) e ON e.date = dr.date
		WHERE dr.date >= CURRENT_DATE - $1::int
		GROUP BY dr.id, dr.date, dr.total_ad_spend, e.total
		ORDER BY dr.date`
	rows, err := r.q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("sales history: %w", err)
	}
	defer rows.Close()
	var list []repository.DailySalesPoint
	for rows.Next() {
		var p repository.DailySalesPoint
		if err := rows.Scan(&p.Date, &p.Revenue, &p.NetProfit); err != nil {
			return nil, fmt.Errorf("scan sales history: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ProductSalesStats devuelve los productos con mayores ventas acumuladas.
func (r *AnalyticsRepo) ProductSalesStats(ctx context.Context, limit int) ([]repository.ProductSalesStat, error) {
	query := `
		SELECT p.name, SUM(s.selling_price * s.quantity) AS total_sales
		FROM products p
		JOIN sales s ON s.product_id = p.id
		GROUP BY p.name
		ORDER BY total_sales DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("product sales stats: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductSalesStat
	for rows.Next() {
		var st repository.ProductSalesStat
		if err := rows.Scan(&st.Name, &st.TotalSales); err != nil {
			return nil, fmt.Errorf("scan product sales stat: %w", err)
		}
		list = append(list, st)
	}
	return list, rows.Err()
}

// TopExpensePayers agrupa los gastos por el socio que los adelantó.
func (r *AnalyticsRepo) TopExpensePayers(ctx context.Context, limit int) ([]repository.ExpensePayerTotal, error) {
	query := `
		SELECT o.name, SUM(e.amount) AS total_paid
		FROM owners o
		JOIN expenses e ON e.paid_by_id = o.id
		GROUP BY o.name
		ORDER BY total_paid DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top expense payers: %w", err)
	}
	defer rows.Close()
	var list []repository.ExpensePayerTotal
	for rows.Next() {
		var pt repository.ExpensePayerTotal
		if err := rows.Scan(&pt.Name, &pt.TotalPaid); err != nil {
			return nil, fmt.Errorf("scan expense payer: %w", err)
		}
		list = append(list, pt)
	}
	return list, rows.Err()
}

// TotalSoldByProduct devuelve unidades vendidas acumuladas por producto.
func (r *AnalyticsRepo) TotalSoldByProduct(ctx context.Context) ([]repository.SoldCount, error) {
	query := `SELECT product_id, SUM(quantity) FROM sales GROUP BY product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("total sold by product: %w", err)
	}
	defer rows.Close()
	var list []repository.SoldCount
	for rows.Next() {
		var sc repository.SoldCount
		if err := rows.Scan(&sc.ProductID, &sc.Units); err != nil {
			return nil, fmt.Errorf("scan sold count: %w", err)
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}
