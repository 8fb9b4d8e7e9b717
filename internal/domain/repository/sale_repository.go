package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// ProductSalesAggregate acumula ingresos y COGS de un producto en una ventana.
type ProductSalesAggregate struct {
	ProductID string
	Revenue   decimal.Decimal
	COGS      decimal.Decimal
}

// SaleRepository define el puerto de persistencia para líneas de venta.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	Update(sale *entity.Sale) error
	Delete(id string) error
	ListByReport(reportID string) ([]*entity.Sale, error)
	// AggregateByProduct agrupa ingresos (precio × cantidad) y COGS por producto
	// para una fecha concreta, o todo el histórico cuando date es nil.
	AggregateByProduct(date *time.Time) ([]ProductSalesAggregate, error)
}
