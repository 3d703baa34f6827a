package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/simulate"
)

// DeliveryUseCase flujo de entregas: alta en pending y avance por la
// progresión lineal pending → picked → packed → delivered. Cada transición
// aceptada deja actividad; llegar a delivered dispara además notificación y
// movimiento.
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
	tx   TxRunner
	lat  simulate.Latency
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository, tx TxRunner, lat simulate.Latency) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, tx: tx, lat: lat}
}

// Fetch devuelve el snapshot actual de entregas.
func (uc *DeliveryUseCase) Fetch(_ context.Context) ([]dto.DeliveryResponse, error) {
	uc.lat.Wait()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d))
	}
	return items, nil
}

// Create agrega una entrega en estado pending. Sin fan-out de auditoría.
func (uc *DeliveryUseCase) Create(_ context.Context, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	uc.lat.Wait()
	if in.Product == "" || in.Warehouse == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	delivery := &entity.Delivery{
		ID:        uuid.New().String(),
		Product:   in.Product,
		Quantity:  in.Quantity,
		Warehouse: in.Warehouse,
		Date:      time.Now(),
		Status:    entity.DeliveryStatusPending,
	}
	if err := uc.repo.Create(delivery); err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery), nil
}

// mensajes de actividad por estado alcanzado.
var deliveryStatusMessages = map[string]string{
	entity.DeliveryStatusPicked:    "preparada",
	entity.DeliveryStatusPacked:    "empacada",
	entity.DeliveryStatusDelivered: "entregada",
}

// UpdateStatus avanza la entrega al estado indicado. Solo se acepta el único
// paso legal hacia adelante: retroceder, saltar pasos o salir de delivered
// falla con ErrConflict sin escribir nada. Un id inexistente falla con
// ErrNotFound. Si el nuevo estado es delivered se registra el fan-out
// completo (actividad + notificación + movimiento con la bodega como
// origen); en los demás pasos, solo actividad.
func (uc *DeliveryUseCase) UpdateStatus(ctx context.Context, id, newStatus, user string) (*dto.DeliveryResponse, error) {
	uc.lat.Wait()
	if !entity.ValidDeliveryStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	delivery, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransitionDelivery(delivery.Status, newStatus) {
		return nil, domain.ErrConflict
	}
	delivery.Status = newStatus
	if err := uc.repo.Update(delivery); err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.tx.Run(ctx, func(
		activityRepo repository.ActivityRepository,
		notificationRepo repository.NotificationRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := activityRepo.Create(newActivity(
			"Delivery",
			fmt.Sprintf("Entrega %s: %d unidades de %s", deliveryStatusMessages[newStatus], delivery.Quantity, delivery.Product),
			"Truck", user, now,
		)); err != nil {
			return err
		}
		if newStatus != entity.DeliveryStatusDelivered {
			return nil
		}
		if err := notificationRepo.Create(newNotification(
			entity.NotificationDeliveryValidated,
			"Entrega completada",
			fmt.Sprintf("%d unidades de %s entregadas con éxito", delivery.Quantity, delivery.Product),
			now,
		)); err != nil {
			return err
		}
		return movementRepo.Create(newMovement(
			entity.MovementTypeDelivery, delivery.Product, delivery.Quantity,
			delivery.Warehouse, "", user, now,
		))
	})
	if err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery), nil
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	if d == nil {
		return nil
	}
	return &dto.DeliveryResponse{
		ID:        d.ID,
		Product:   d.Product,
		Quantity:  d.Quantity,
		Warehouse: d.Warehouse,
		Date:      d.Date,
		Status:    d.Status,
	}
}
