package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryBatch representa un lote de entrada de inventario.
// Quantity y LandingPrice son inmutables tras la creación; RemainingQuantity
// baja con cada venta (FIFO) y solo vuelve a subir al revertir líneas de un
// reporte diario editado. Los lotes nunca se borran.
type InventoryBatch struct {
	ID                string
	ProductID         string
	Quantity          int // cantidad original
	RemainingQuantity int // 0 <= remaining <= quantity
	LandingPrice      decimal.Decimal // costo unitario de aterrizaje
	DateAdded         time.Time       // clave de orden FIFO (desempate por inserción)
}
