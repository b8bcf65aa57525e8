package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bakeryhub/bakeryhub-api/internal/application/dto"
	"github.com/bakeryhub/bakeryhub-api/internal/application/inventory"
)

// StockHandler consulta de existencias por outlet (cualquier usuario autenticado).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler de existencias.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetOutletStock godoc
// @Summary      Existencias de un outlet
// @Description  Stock disponible (cantidad > 0) ordenado por fecha de vencimiento.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        outlet_id  path  string  true  "ID del outlet"
// @Success      200  {array}   dto.OutletStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/{outlet_id} [get]
func (h *StockHandler) GetOutletStock(c *fiber.Ctx) error {
	outletID := c.Params("outlet_id")
	if outletID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "outlet_id es requerido"})
	}
	out, err := h.uc.ListByOutlet(outletID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
