package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/simulate"
)

// Parámetros de la heurística de reposición.
const (
	usageWindowDays    = 30  // ventana móvil de consumo
	coverageTargetDays = 14  // cobertura objetivo del pedido sugerido
	daysStockSentinel  = 999 // "efectivamente infinito" cuando no hay consumo
)

// RestockUseCase genera el reporte predictivo de reposición: una heurística
// lineal determinista sobre el historial de movimientos, no un modelo
// estadístico. Con el mismo historial produce siempre el mismo reporte.
//
//	avgDailyUsage       = unidades entregadas en 30 días / 30
//	daysUntilOutOfStock = floor(stock actual / avgDailyUsage), 999 sin consumo
//	suggestedReorderQty = max(0, ceil(avgDailyUsage·14 − stock actual))
type RestockUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	pdfGen       RestockPDFGenerator
	lat          simulate.Latency
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository, pdfGen RestockPDFGenerator, lat simulate.Latency) *RestockUseCase {
	return &RestockUseCase{productRepo: productRepo, movementRepo: movementRepo, pdfGen: pdfGen, lat: lat}
}

// Predict calcula una fila por producto y las ordena por urgencia: menos
// días de stock primero (orden estable).
func (uc *RestockUseCase) Predict(_ context.Context) ([]dto.RestockPredictionDTO, error) {
	uc.lat.Wait()

	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	windowStart := time.Now().AddDate(0, 0, -usageWindowDays)

	// Unidades entregadas por producto dentro de la ventana
	deliveredByProduct := make(map[string]int)
	for _, m := range movements {
		if m.Type == entity.MovementTypeDelivery && m.Date.After(windowStart) {
			deliveredByProduct[m.Product] += m.Quantity
		}
	}

	window := decimal.NewFromInt(usageWindowDays)
	coverage := decimal.NewFromInt(coverageTargetDays)

	predictions := make([]dto.RestockPredictionDTO, 0, len(products))
	for _, p := range products {
		currentStock := p.TotalStock()
		avg := decimal.NewFromInt(int64(deliveredByProduct[p.Name])).Div(window)
		stock := decimal.NewFromInt(int64(currentStock))

		days := daysStockSentinel
		if avg.GreaterThan(decimal.Zero) {
			days = int(stock.Div(avg).IntPart())
		}

		reorder := avg.Mul(coverage).Sub(stock).Ceil().IntPart()
		if reorder < 0 {
			reorder = 0
		}

		predictions = append(predictions, dto.RestockPredictionDTO{
			ProductID:           p.ID,
			ProductName:         p.Name,
			CurrentStock:        currentStock,
			AvgDailyUsage:       avg.Round(2),
			DaysUntilOutOfStock: days,
			SuggestedReorderQty: int(reorder),
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].DaysUntilOutOfStock < predictions[j].DaysUntilOutOfStock
	})

	return predictions, nil
}

// Report genera el PDF del reporte predictivo con las predicciones actuales.
func (uc *RestockUseCase) Report(ctx context.Context) ([]byte, error) {
	predictions, err := uc.Predict(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateRestockReport(ctx, predictions, time.Now())
}
