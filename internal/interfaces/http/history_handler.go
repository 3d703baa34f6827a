package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
)

// HistoryHandler expone el log de actividades y el historial de movimientos
// (protegido). Ambas listas llegan con lo más reciente primero.
type HistoryHandler struct {
	uc *inventory.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *inventory.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Activities devuelve el log de actividades.
// GET /api/activities
func (h *HistoryHandler) Activities(c *fiber.Ctx) error {
	out, err := h.uc.FetchActivities(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Movements devuelve el historial de movimientos de inventario.
// GET /api/movements
func (h *HistoryHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.FetchMovements(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
