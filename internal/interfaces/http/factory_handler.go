package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bakeryhub/bakeryhub-api/internal/application/dto"
	"github.com/bakeryhub/bakeryhub-api/internal/application/factory"
	"github.com/bakeryhub/bakeryhub-api/internal/domain"
)

// FactoryHandler maneja el dashboard de fábrica y el registro de lotes.
// Ambas rutas requieren rol FACTORY_DISTRIBUTOR o ADMIN.
type FactoryHandler struct {
	batchUC *factory.BatchUseCase
	statsUC *factory.StatsUseCase
}

// NewFactoryHandler construye el handler de fábrica.
func NewFactoryHandler(batchUC *factory.BatchUseCase, statsUC *factory.StatsUseCase) *FactoryHandler {
	return &FactoryHandler{batchUC: batchUC, statsUC: statsUC}
}

// GetStats godoc
// @Summary      Dashboard de fábrica
// @Description  Pedidos pendientes/despachados, lotes producidos hoy y actividad reciente.
// @Tags         factory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FactoryStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/factory/stats [get]
func (h *FactoryHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateBatch godoc
// @Summary      Registrar lote de producción
// @Tags         factory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "Datos del lote"
// @Success      201   {object}  dto.CreateBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/factory/create-batch [post]
func (h *FactoryHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.BatchNo == "" || in.ManufacturedDate == "" || in.ExpiryDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, batch_no, manufactured_date y expiry_date son requeridos"})
	}
	if in.QuantityProduced <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity_produced debe ser mayor que cero"})
	}
	out, err := h.batchUC.Create(in)
	if err != nil {
		if err == domain.ErrProductNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el producto no existe"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un lote con ese batch_no"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las fechas deben tener formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
