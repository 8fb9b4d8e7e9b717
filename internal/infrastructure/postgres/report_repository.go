package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

const reportColumns = `id, date, total_ad_spend, notes`

// ReportRepo implementación de ReportRepository sobre PostgreSQL (usable con pool o tx).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes diarios. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Create inserta un reporte. La fecha tiene constraint único: si ya existe
// un reporte para ese día devuelve domain.ErrConflict.
func (r *ReportRepo) Create(report *entity.DailyReport) error {
	query := `
		INSERT INTO daily_reports (id, date, total_ad_spend, notes)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.Date, report.TotalAdSpend, report.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetOrCreate devuelve el reporte del día, creándolo si no existe.
// ON CONFLICT DO NOTHING + re-select lo hace idempotente bajo carrera:
// dos llamadas concurrentes dejan exactamente una fila y ambas la reciben.
func (r *ReportRepo) GetOrCreate(date time.Time) (*entity.DailyReport, error) {
	insert := `
		INSERT INTO daily_reports (id, date, total_ad_spend, notes)
		VALUES ($1, $2, 0, '')
		ON CONFLICT (date) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, uuid.New().String(), date); err != nil {
		return nil, fmt.Errorf("get or create report: %w", err)
	}
	rep, err := r.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, fmt.Errorf("get or create report: fila ausente tras insert")
	}
	return rep, nil
}

// GetByID obtiene un reporte por ID.
func (r *ReportRepo) GetByID(id string) (*entity.DailyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_reports WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtiene el reporte y bloquea la fila (SELECT FOR UPDATE).
func (r *ReportRepo) GetByIDForUpdate(id string) (*entity.DailyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_reports WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// GetByDate obtiene el reporte de una fecha calendario.
func (r *ReportRepo) GetByDate(date time.Time) (*entity.DailyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_reports WHERE date = $1`
	return r.scanOne(query, date)
}

// List devuelve reportes paginados por fecha descendente.
func (r *ReportRepo) List(limit, offset int) ([]*entity.DailyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_reports ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

// ListRange devuelve reportes con start <= date <= end, fecha descendente.
func (r *ReportRepo) ListRange(start, end time.Time) ([]*entity.DailyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM daily_reports WHERE date BETWEEN $1 AND $2 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list reports range: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

// UpdateAdSpend fija el gasto publicitario del reporte.
func (r *ReportRepo) UpdateAdSpend(reportID string, adSpend decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE daily_reports SET total_ad_spend = $2 WHERE id = $1`,
		reportID, adSpend,
	)
	if err != nil {
		return fmt.Errorf("update report ad spend: %w", err)
	}
	return nil
}

// SumAdSpend suma el gasto publicitario de una fecha, o de todo el histórico si date es nil.
func (r *ReportRepo) SumAdSpend(date *time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_ad_spend), 0) FROM daily_reports`
	args := []any{}
	if date != nil {
		query += ` WHERE date = $1`
		args = append(args, *date)
	}
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum ad spend: %w", err)
	}
	return total, nil
}

func (r *ReportRepo) scanOne(query string, arg any) (*entity.DailyReport, error) {
	var rep entity.DailyReport
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&rep.ID, &rep.Date, &rep.TotalAdSpend, &rep.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rep, nil
}

func scanReports(rows pgx.Rows) ([]*entity.DailyReport, error) {
	var list []*entity.DailyReport
	for rows.Next() {
		var rep entity.DailyReport
		if err := rows.Scan(&rep.ID, &rep.Date, &rep.TotalAdSpend, &rep.Notes); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
