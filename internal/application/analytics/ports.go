package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
)

// RestockPDFGenerator genera la representación PDF del reporte de
// reposición. Implementado en infrastructure/pdf.
type RestockPDFGenerator interface {
	GenerateRestockReport(ctx context.Context, predictions []dto.RestockPredictionDTO, generatedAt time.Time) ([]byte, error)
}
