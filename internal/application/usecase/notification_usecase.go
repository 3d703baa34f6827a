package usecase

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/simulate"
)

// NotificationUseCase lectura y marcado de notificaciones. Read es el único
// campo mutable; no se crean notificaciones desde aquí (las crea el fan-out
// de los flujos de inventario).
type NotificationUseCase struct {
	repo repository.NotificationRepository
	lat  simulate.Latency
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, lat simulate.Latency) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, lat: lat}
}

// Fetch devuelve las notificaciones, más reciente primero.
func (uc *NotificationUseCase) Fetch(_ context.Context) ([]dto.NotificationResponse, error) {
	uc.lat.Wait()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return items, nil
}

// MarkAsRead marca una notificación como leída. ErrNotFound si el id no
// existe.
func (uc *NotificationUseCase) MarkAsRead(_ context.Context, id string) (*dto.NotificationResponse, error) {
	uc.lat.Wait()
	n, err := uc.repo.MarkRead(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return toNotificationResponse(n), nil
}

// MarkAllAsRead marca todas como leídas. Con la lista vacía es un no-op sin
// error.
func (uc *NotificationUseCase) MarkAllAsRead(_ context.Context) error {
	uc.lat.Wait()
	return uc.repo.MarkAllRead()
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:      n.ID,
		Type:    n.Type,
		Title:   n.Title,
		Message: n.Message,
		Date:    n.Date,
		Read:    n.Read,
	}
}
