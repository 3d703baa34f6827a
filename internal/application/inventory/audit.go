package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// Constructores del rastro de auditoría. Los tres registros de un mismo
// fan-out comparten el timestamp lógico de la operación (now) y referencian
// el mismo producto y cantidad.

func newActivity(actType, description, icon, user string, now time.Time) *entity.Activity {
	return &entity.Activity{
		ID:          uuid.New().String(),
		Type:        actType,
		Description: description,
		Date:        now,
		User:        user,
		Icon:        icon,
	}
}

func newNotification(notifType, title, message string, now time.Time) *entity.Notification {
	return &entity.Notification{
		ID:      uuid.New().String(),
		Type:    notifType,
		Title:   title,
		Message: message,
		Date:    now,
		Read:    false,
	}
}

func newMovement(movType, product string, quantity int, fromWarehouse, toWarehouse, user string, now time.Time) *entity.Movement {
	return &entity.Movement{
		ID:            uuid.New().String(),
		Type:          movType,
		Product:       product,
		Quantity:      quantity,
		FromWarehouse: fromWarehouse,
		ToWarehouse:   toWarehouse,
		Date:          now,
		User:          user,
	}
}
