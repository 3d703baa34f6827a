package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
)

// RestockHandler expone el reporte predictivo de reposición (protegido).
type RestockHandler struct {
	uc *appanalytics.RestockUseCase
}

// NewRestockHandler construye el handler.
func NewRestockHandler(uc *appanalytics.RestockUseCase) *RestockHandler {
	return &RestockHandler{uc: uc}
}

// Predictions devuelve una fila por producto ordenada por urgencia.
// GET /api/restock/predictions
func (h *RestockHandler) Predictions(c *fiber.Ctx) error {
	out, err := h.uc.Predict(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report genera el reporte en PDF para la reunión de compras.
// GET /api/restock/report
func (h *RestockHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Report(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-reposicion.pdf"`)
	return c.Send(pdfBytes)
}
