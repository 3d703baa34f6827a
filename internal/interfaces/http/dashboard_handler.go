package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve los KPIs del dashboard calculados sobre el estado
// actual del inventario.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (total_products, low_stock_items,
// pending_receipts, pending_deliveries, scheduled_transfers).
// No requiere parámetros; es un snapshot consistente del momento de la
// consulta.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(stats)
}

// GetWarehouseDeliveries devuelve las unidades entregadas por bodega,
// contando solo entregas con estado delivered.
// GET /api/dashboard/warehouse-deliveries
func (h *DashboardHandler) GetWarehouseDeliveries(c *fiber.Ctx) error {
	out, err := h.uc.WarehouseDeliveries(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}
