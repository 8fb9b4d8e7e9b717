package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get* devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar operaciones concurrentes sobre el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCostAndStock actualiza costo promedio y stock en una sola escritura
	// (usado por la entrada de lotes).
	UpdateCostAndStock(productID string, cost decimal.Decimal, stock int) error
	// UpdateStock actualiza solo el stock (usado por ventas y reconciliación).
	UpdateStock(productID string, stock int) error
	List(limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
}
