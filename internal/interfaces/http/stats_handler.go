package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/application/profit"
	"github.com/jhoicas/tiktrack-api/internal/application/stats"
)

// StatsHandler expone las estadísticas del tablero (protegido).
type StatsHandler struct {
	statsUC  *stats.UseCase
	profitUC *profit.UseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(statsUC *stats.UseCase, profitUC *profit.UseCase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC, profitUC: profitUC}
}

// History godoc
// @Summary      Serie histórica de ingresos y utilidad neta por día
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "ventana en días (default 30)"
// @Success      200  {array}  dto.SalesHistoryPoint
// @Router       /api/stats/history [get]
func (h *StatsHandler) History(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	points, err := h.statsUC.SalesHistory(c.Context(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(points)
}

// ProductPerformance godoc
// @Summary      Productos con mayores ventas acumuladas
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NameAmount
// @Router       /api/stats/product-performance [get]
func (h *StatsHandler) ProductPerformance(c *fiber.Ctx) error {
	list, err := h.statsUC.ProductSalesStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// TopPayers godoc
// @Summary      Socios que más gastos han adelantado
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NameAmount
// @Router       /api/stats/top-payers [get]
func (h *StatsHandler) TopPayers(c *fiber.Ctx) error {
	list, err := h.statsUC.TopExpensePayers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ExpensesLiability godoc
// @Summary      Pasivo estimado de gastos por socio
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NameAmount
// @Router       /api/stats/expenses-liability [get]
func (h *StatsHandler) ExpensesLiability(c *fiber.Ctx) error {
	list, err := h.statsUC.ExpenseLiabilitySummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// OwnerProfits godoc
// @Summary      Desglose de utilidades por socio
// @Description  Cálculo de solo lectura: no escribe en el libro. Con date se
//
//	limita a ese día; sin date cubre todo el histórico.
//
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "fecha YYYY-MM-DD"
// @Success      200  {array}  dto.OwnerBreakdownResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stats/owner-profits [get]
func (h *StatsHandler) OwnerProfits(c *fiber.Ctx) error {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := dto.ParseDate(raw)
		if err != nil {
			return respondError(c, err)
		}
		date = &d
	}
	list, err := h.profitUC.ComputeProfitBreakdown(c.Context(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
