package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/simulate"
)

// AdjustmentUseCase ajustes de inventario a partir de conteos físicos.
// El ajuste es solo auditoría: registra el rastro completo pero no toca el
// mapa de stock del producto, porque la cantidad contada es un agregado sin
// reparto definido por bodega. Conciliar el stock queda del lado de la UI.
type AdjustmentUseCase struct {
	productRepo repository.ProductRepository
	tx          TxRunner
	lat         simulate.Latency
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(productRepo repository.ProductRepository, tx TxRunner, lat simulate.Latency) *AdjustmentUseCase {
	return &AdjustmentUseCase{productRepo: productRepo, tx: tx, lat: lat}
}

// Apply registra el ajuste para el producto indicado. Un productID
// inexistente falla con ErrNotFound sin escribir nada. El movimiento lleva
// |difference| y la etiqueta "System Adjustment" del lado que corresponde al
// signo de la diferencia.
func (uc *AdjustmentUseCase) Apply(ctx context.Context, in dto.ApplyAdjustmentRequest, user string) error {
	uc.lat.Wait()
	if in.ProductID == "" || in.CountedQuantity < 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	sign := ""
	if in.Difference > 0 {
		sign = "+"
	}
	description := fmt.Sprintf("Stock ajustado para %s: %s%d unidades", product.Name, sign, in.Difference)

	quantity := in.Difference
	if quantity < 0 {
		quantity = -quantity
	}
	fromWarehouse, toWarehouse := "", ""
	if in.Difference < 0 {
		fromWarehouse = entity.SystemAdjustmentLabel
	}
	if in.Difference > 0 {
		toWarehouse = entity.SystemAdjustmentLabel
	}

	now := time.Now()
	return uc.tx.Run(ctx, func(
		activityRepo repository.ActivityRepository,
		notificationRepo repository.NotificationRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := activityRepo.Create(newActivity("Adjustment", description, "Settings", user, now)); err != nil {
			return err
		}
		if err := notificationRepo.Create(newNotification(
			entity.NotificationAdjustmentMade, "Ajuste de stock", description, now,
		)); err != nil {
			return err
		}
		return movementRepo.Create(newMovement(
			entity.MovementTypeAdjustment, product.Name, quantity,
			fromWarehouse, toWarehouse, user, now,
		))
	})
}
