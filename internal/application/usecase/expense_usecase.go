package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// ExpenseUseCase registra y consulta gastos operativos.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	productRepo repository.ProductRepository
	ownerRepo   repository.OwnerRepository
}

func NewExpenseUseCase(expenses repository.ExpenseRepository, products repository.ProductRepository, owners repository.OwnerRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenses, productRepo: products, ownerRepo: owners}
}

// Create registra un gasto. Si trae product_id el gasto se imputa a ese
// producto en el reparto de utilidades; sin product_id entra al costo global.
func (uc *ExpenseUseCase) Create(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if req.ProductID != nil {
		p, err := uc.productRepo.GetByID(*req.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
	}
	if req.PaidByID != nil {
		o, err := uc.ownerRepo.GetByID(*req.PaidByID)
		if err != nil {
			return nil, err
		}
		if o == nil {
			return nil, domain.ErrNotFound
		}
	}

	exp := &entity.Expense{
		ID:          uuid.New().String(),
		Date:        date,
		Category:    strings.TrimSpace(req.Category),
		Amount:      req.Amount,
		ProductID:   req.ProductID,
		PaidByID:    req.PaidByID,
		Description: req.Description,
	}
	if err := uc.expenseRepo.Create(exp); err != nil {
		return nil, err
	}
	return expenseToResponse(exp), nil
}

// List devuelve los gastos paginados, más recientes primero.
func (uc *ExpenseUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ExpenseResponse, error) {
	page.DefaultPage()
	items, err := uc.expenseRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(items))
	for _, e := range items {
		out = append(out, *expenseToResponse(e))
	}
	return out, nil
}

func expenseToResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Date:        dto.FormatDate(e.Date),
		Category:    e.Category,
		Amount:      e.Amount,
		ProductID:   e.ProductID,
		PaidByID:    e.PaidByID,
		Description: e.Description,
	}
}
