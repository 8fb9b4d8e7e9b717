package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/domain"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
	"github.com/jhoicas/tiktrack-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	ownerRepo     repository.OwnerRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, ownerRepo repository.OwnerRepository, analyticsRepo repository.AnalyticsRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, ownerRepo: ownerRepo, analyticsRepo: analyticsRepo}
}

// Create crea un producto. SKU vacío genera uno aleatorio de 8 caracteres;
// SKU repetido devuelve domain.ErrDuplicate. Las participaciones por producto
// recibidas se registran tras crear el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Price.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	sku := in.SKU
	if sku == "" {
		sku = strings.ToUpper(uuid.New().String()[:8])
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		SKU:        sku,
		Price:      in.Price,
		CostPrice:  in.CostPrice,
		ProductURL: in.ProductURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	for _, eq := range in.Equities {
		pe := &entity.ProductEquity{
			ID:               uuid.New().String(),
			OwnerID:          eq.OwnerID,
			ProductID:        product.ID,
			EquityPercentage: eq.EquityPercentage,
		}
		if err := uc.ownerRepo.SetProductEquity(pe); err != nil {
			return nil, err
		}
	}
	return product, nil
}

// GetByID devuelve un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve productos con su total de unidades vendidas.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	soldList, err := uc.analyticsRepo.TotalSoldByProduct(ctx)
	if err != nil {
		return nil, err
	}
	sold := make(map[string]int64, len(soldList))
	for _, s := range soldList {
		sold[s.ProductID] = s.Units
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, &dto.ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			Price:        p.Price,
			CostPrice:    p.CostPrice,
			CurrentStock: p.CurrentStock,
			ProductURL:   p.ProductURL,
			TotalSold:    sold[p.ID],
		})
	}
	return out, nil
}

// Update actualiza nombre, precio de venta y URL. No permite tocar CostPrice
// ni CurrentStock: esos solo los mutan la entrada de lotes y las ventas.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Price = in.Price
	product.ProductURL = in.ProductURL
	product.UpdatedAt = time.Now().UTC()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}
