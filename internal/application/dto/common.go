package dto

import (
	"time"

	"github.com/jhoicas/tiktrack-api/internal/domain"
)

// DateLayout es el formato de fecha calendario de toda la API (sin hora).
const DateLayout = "2006-01-02"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseDate parsea una fecha calendario YYYY-MM-DD a medianoche UTC.
// Devuelve domain.ErrInvalidInput si está malformada.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t.UTC(), nil
}

// FormatDate serializa una fecha calendario como YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
