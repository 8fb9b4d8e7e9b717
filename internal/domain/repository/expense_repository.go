package repository

import (
	"time"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	// List devuelve gastos por fecha descendente.
	List(limit, offset int) ([]*entity.Expense, error)
	// ListByWindow devuelve los gastos de una fecha concreta, o todos cuando date es nil.
	ListByWindow(date *time.Time) ([]*entity.Expense, error)
}
