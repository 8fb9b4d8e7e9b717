package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesPoint es un punto de la serie histórica de ventas.
type DailySalesPoint struct {
	Date      time.Time
	Revenue   decimal.Decimal
	NetProfit decimal.Decimal
}

// ProductSalesStat es el volumen de ventas acumulado de un producto.
type ProductSalesStat struct {
	Name       string
	TotalSales decimal.Decimal
}

// ExpensePayerTotal acumula lo adelantado en gastos por un socio.
type ExpensePayerTotal struct {
	Name      string
	TotalPaid decimal.Decimal
}

// SoldCount es el total de unidades vendidas de un producto.
type SoldCount struct {
	ProductID string
	Units     int64
}

// AnalyticsRepository define consultas de solo lectura para estadísticas
// agregadas (se ejecutan contra el pool, fuera de transacción).
type AnalyticsRepository interface {
	// SalesHistory devuelve ingresos y utilidad neta por día de los últimos N días.
	// NetProfit = (ingresos − COGS) − ad spend del día − gastos del día.
	SalesHistory(ctx context.Context, days int) ([]DailySalesPoint, error)
	// ProductSalesStats devuelve los productos con mayores ventas acumuladas.
	ProductSalesStats(ctx context.Context, limit int) ([]ProductSalesStat, error)
	// TopExpensePayers agrupa gastos por el socio que los adelantó.
	TopExpensePayers(ctx context.Context, limit int) ([]ExpensePayerTotal, error)
	// TotalSoldByProduct devuelve unidades vendidas por producto.
	TotalSoldByProduct(ctx context.Context) ([]SoldCount, error)
}
