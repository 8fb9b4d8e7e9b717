package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport agrupa las ventas de un día calendario más el gasto publicitario del día.
// La fecha (sin componente de hora) es clave natural única: existe a lo sumo un reporte por día.
// Se crea perezosamente con la primera venta o de forma explícita; nunca se borra automáticamente.
type DailyReport struct {
	ID           string
	Date         time.Time // fecha calendario normalizada a medianoche UTC
	TotalAdSpend decimal.Decimal
	Notes        string
}
