package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiktrack-api/internal/application/dto"
	"github.com/jhoicas/tiktrack-api/internal/application/ledger"
	"github.com/jhoicas/tiktrack-api/internal/application/usecase"
	"github.com/jhoicas/tiktrack-api/internal/domain/entity"
)

// OwnerHandler maneja socios, participaciones y su libro contable (protegido).
type OwnerHandler struct {
	ownerUC  *usecase.OwnerUseCase
	ledgerUC *ledger.UseCase
}

// NewOwnerHandler construye el handler.
func NewOwnerHandler(ownerUC *usecase.OwnerUseCase, ledgerUC *ledger.UseCase) *OwnerHandler {
	return &OwnerHandler{ownerUC: ownerUC, ledgerUC: ledgerUC}
}

// Create godoc
// @Summary      Crear socio
// @Tags         owners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOwnerRequest  true  "name, equity_percentage (0-100)"
// @Success      201   {object}  dto.OwnerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/owners [post]
func (h *OwnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOwnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	owner, err := h.ownerUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ownerToResponse(owner))
}

// List godoc
// @Summary      Listar socios
// @Tags         owners
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OwnerResponse
// @Router       /api/owners [get]
func (h *OwnerHandler) List(c *fiber.Ctx) error {
	owners, err := h.ownerUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.OwnerResponse, 0, len(owners))
	for _, o := range owners {
		out = append(out, ownerToResponse(o))
	}
	return c.JSON(out)
}

// SetEquity godoc
// @Summary      Fijar participación de un socio en un producto
// @Description  Si un producto tiene al menos una participación explícita, esas
//
//	filas reemplazan al fallback de equity global para ese producto.
//
// @Tags         owners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        owner_id  path  string                       true  "ID del socio"
// @Param        body      body  dto.SetProductEquityRequest  true  "product_id, equity_percentage"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/owners/{owner_id}/equity [post]
func (h *OwnerHandler) SetEquity(c *fiber.Ctx) error {
	var in dto.SetProductEquityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	eq, err := h.ownerUC.SetProductEquity(c.Context(), c.Params("owner_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"id":                eq.ID,
		"owner_id":          eq.OwnerID,
		"product_id":        eq.ProductID,
		"equity_percentage": eq.EquityPercentage,
	})
}

// Withdraw godoc
// @Summary      Asentar un retiro de capital del socio
// @Tags         owners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        owner_id  path  string               true  "ID del socio"
// @Param        body      body  dto.WithdrawRequest  true  "amount positivo"
// @Success      201  {object}  dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/owners/{owner_id}/withdraw [post]
func (h *OwnerHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.ledgerUC.Withdraw(c.Context(), c.Params("owner_id"), in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ledgerEntryToResponse(entry))
}

// RecordPayment godoc
// @Summary      Asentar un pago hecho a un socio
// @Tags         owners
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPayoutRequest  true  "owner_id, amount positivo, date"
// @Success      201  {object}  dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/owners/payment [post]
func (h *OwnerHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return respondError(c, err)
	}
	entry, err := h.ledgerUC.RecordPayout(c.Context(), in.OwnerID, in.Amount, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ledgerEntryToResponse(entry))
}

// Payments godoc
// @Summary      Historial de pagos a socios (más reciente primero)
// @Tags         owners
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 100)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Router       /api/owners/payments [get]
func (h *OwnerHandler) Payments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.ledgerUC.Payments(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Balance godoc
// @Summary      Saldo del socio (suma de su libro)
// @Tags         owners
// @Security     Bearer
// @Produce      json
// @Param        owner_id  path  string  true  "ID del socio"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/owners/{owner_id}/balance [get]
func (h *OwnerHandler) Balance(c *fiber.Ctx) error {
	ownerID := c.Params("owner_id")
	balance, err := h.ledgerUC.Balance(c.Context(), ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"owner_id": ownerID, "balance": balance})
}

func ownerToResponse(o *entity.Owner) *dto.OwnerResponse {
	return &dto.OwnerResponse{
		ID:               o.ID,
		Name:             o.Name,
		EquityPercentage: o.EquityPercentage,
	}
}

func ledgerEntryToResponse(e *entity.OwnerLedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Amount:          e.Amount,
		TransactionType: e.TransactionType,
		Date:            dto.FormatDate(e.Date),
	}
}
