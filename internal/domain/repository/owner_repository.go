package repository

import "github.com/jhoicas/tiktrack-api/internal/domain/entity"

// OwnerRepository define el puerto de persistencia para socios y sus
// participaciones por producto.
type OwnerRepository interface {
	Create(owner *entity.Owner) error
	GetByID(id string) (*entity.Owner, error)
	List() ([]*entity.Owner, error)
	// SetProductEquity inserta o actualiza la participación de un socio en un producto.
	SetProductEquity(eq *entity.ProductEquity) error
	ListEquitiesByProduct(productID string) ([]*entity.ProductEquity, error)
	ListAllEquities() ([]*entity.ProductEquity, error)
}
