package inventory

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRunner ejecuta una función contra los repositorios de auditoría de forma
// atómica respecto al resto del store. Garantiza que el fan-out de un flujo
// (Activity + Notification + Movement) se observe completo o no se observe.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		activityRepo repository.ActivityRepository,
		notificationRepo repository.NotificationRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
