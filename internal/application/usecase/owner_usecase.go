package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

var hundredPct = decimal.NewFromInt(100)

// OwnerUseCase gestión de socios y sus participaciones por producto.
type OwnerUseCase struct {
	ownerRepo   repository.OwnerRepository
	productRepo repository.ProductRepository
}

// NewOwnerUseCase construye el caso de uso.
func NewOwnerUseCase(ownerRepo repository.OwnerRepository, productRepo repository.ProductRepository) *OwnerUseCase {
	return &OwnerUseCase{ownerRepo: ownerRepo, productRepo: productRepo}
}

// Create crea un socio con su participación global (0–100). El sistema no
// exige que las participaciones globales sumen 100 entre socios.
func (uc *OwnerUseCase) Create(ctx context.Context, in dto.CreateOwnerRequest) (*entity.Owner, error) {
	if in.Name == "" || in.EquityPercentage.IsNegative() || in.EquityPercentage.GreaterThan(hundredPct) {
		return nil, domain.ErrInvalidInput
	}
	owner := &entity.Owner{
		ID:               uuid.New().String(),
		Name:             in.Name,
		EquityPercentage: in.EquityPercentage,
	}
	if err := uc.ownerRepo.Create(owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// List devuelve todos los socios.
func (uc *OwnerUseCase) List(ctx context.Context) ([]*entity.Owner, error) {
	return uc.ownerRepo.List()
}

// SetProductEquity fija (inserta o reemplaza) la participación de un socio en
// un producto. Devuelve domain.ErrNotFound si socio o producto no existen.
func (uc *OwnerUseCase) SetProductEquity(ctx context.Context, ownerID string, in dto.SetProductEquityRequest) (*entity.ProductEquity, error) {
	if in.EquityPercentage.IsNegative() || in.EquityPercentage.GreaterThan(hundredPct) {
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.ownerRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	eq := &entity.ProductEquity{
		ID:               uuid.New().String(),
		OwnerID:          ownerID,
		ProductID:        in.ProductID,
		EquityPercentage: in.EquityPercentage,
	}
	if err := uc.ownerRepo.SetProductEquity(eq); err != nil {
		return nil, err
	}
	return eq, nil
}
