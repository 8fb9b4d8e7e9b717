package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/application/inventory"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// InventoryHandler maneja la entrada de lotes de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.AddBatchUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AddBatchUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AddBatch godoc
// @Summary      Registrar entrada de lote
// @Description  Suma stock y recalcula el costo promedio ponderado del producto.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddBatchRequest  true  "product_id, quantity, landing_price"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/batch [post]
func (h *InventoryHandler) AddBatch(c *fiber.Ctx) error {
	var in dto.AddBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.AddBatch(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(batchToResponse(batch))
}

// ListBatches godoc
// @Summary      Listar lotes de un producto (orden FIFO)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.BatchResponse
// @Router       /api/inventory/batches/{product_id} [get]
func (h *InventoryHandler) ListBatches(c *fiber.Ctx) error {
	batches, err := h.uc.ProductBatches(c.Context(), c.Params("product_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, batchToResponse(b))
	}
	return c.JSON(out)
}

func batchToResponse(b *entity.InventoryBatch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:                b.ID,
		ProductID:         b.ProductID,
		Quantity:          b.Quantity,
		RemainingQuantity: b.RemainingQuantity,
		LandingPrice:      b.LandingPrice,
		DateAdded:         dto.FormatDate(b.DateAdded),
	}
}
