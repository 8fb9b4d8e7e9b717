package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una línea de venta con su COGS congelado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, report_id, product_id, quantity, selling_price, calculated_cogs)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ReportID, sale.ProductID, sale.Quantity,
		sale.SellingPrice, sale.CalculatedCOGS,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Update reescribe cantidad, precio y COGS de una línea (reconciliación de reportes).
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET quantity = $2, selling_price = $3, calculated_cogs = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Quantity, sale.SellingPrice, sale.CalculatedCOGS,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una línea de venta (solo la reconciliación borra ventas).
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// ListByReport devuelve las líneas de un reporte en orden de inserción.
func (r *SaleRepo) ListByReport(reportID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, report_id, product_id, quantity, selling_price, calculated_cogs
		FROM sales WHERE report_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, reportID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ReportID, &s.ProductID, &s.Quantity,
			&s.SellingPrice, &s.CalculatedCOGS); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// AggregateByProduct agrupa ingresos y COGS por producto para una fecha,
// o todo el histórico si date es nil.
func (r *SaleRepo) AggregateByProduct(date *time.Time) ([]repository.ProductSalesAggregate, error) {
	query := `
		SELECT s.product_id,
		       COALESCE(SUM(s.selling_price * s.quantity), 0) AS revenue,
		       COALESCE(SUM(s.calculated_cogs), 0) AS cogs
		FROM sales s
		JOIN daily_reports dr ON dr.id = s.report_id`
	args := []any{}
	if date != nil {
		query += ` WHERE dr.date = $1`
		args = append(args, *date)
	}
	query += ` GROUP BY s.product_id ORDER BY s.product_id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate sales: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductSalesAggregate
	for rows.Next() {
		var agg repository.ProductSalesAggregate
		if err := rows.Scan(&agg.ProductID, &agg.Revenue, &agg.COGS); err != nil {
			return nil, fmt.Errorf("scan sales aggregate: %w", err)
		}
		list = append(list, agg)
	}
	return list, rows.Err()
}
