package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// ReportRepository define el puerto de persistencia para reportes diarios.
// La fecha es clave natural única (un reporte por día calendario).
type ReportRepository interface {
	// Create inserta un reporte; devuelve domain.ErrConflict si ya existe uno para la fecha.
	Create(report *entity.DailyReport) error
	// GetOrCreate es idempotente bajo carrera: si dos llamadas concurrentes crean
	// la misma fecha, exactamente una fila queda y ambas reciben el reporte.
	GetOrCreate(date time.Time) (*entity.DailyReport, error)
	GetByID(id string) (*entity.DailyReport, error)
	// GetByIDForUpdate bloquea la fila del reporte para serializar ediciones concurrentes.
	GetByIDForUpdate(id string) (*entity.DailyReport, error)
	GetByDate(date time.Time) (*entity.DailyReport, error)
	// List devuelve reportes por fecha descendente.
	List(limit, offset int) ([]*entity.DailyReport, error)
	// ListRange devuelve reportes con start <= date <= end, fecha descendente.
	ListRange(start, end time.Time) ([]*entity.DailyReport, error)
	UpdateAdSpend(reportID string, adSpend decimal.Decimal) error
	// SumAdSpend suma el gasto publicitario de la ventana: una fecha concreta
	// o todo el histórico cuando date es nil.
	SumAdSpend(date *time.Time) (decimal.Decimal, error)
}
