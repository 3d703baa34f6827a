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

// ReceiptUseCase flujo de recepciones: alta en pending y validación con
// fan-out de auditoría. La creación no deja rastro; el fan-out ocurre solo
// al validar.
type ReceiptUseCase struct {
	repo repository.ReceiptRepository
	tx   TxRunner
	lat  simulate.Latency
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(repo repository.ReceiptRepository, tx TxRunner, lat simulate.Latency) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, tx: tx, lat: lat}
}

// Fetch devuelve el snapshot actual de recepciones.
func (uc *ReceiptUseCase) Fetch(_ context.Context) ([]dto.ReceiptResponse, error) {
	uc.lat.Wait()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReceiptResponse(r))
	}
	return items, nil
}

// Create agrega una recepción en estado pending. Sin fan-out de auditoría.
func (uc *ReceiptUseCase) Create(_ context.Context, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	uc.lat.Wait()
	if in.Supplier == "" || in.Product == "" || in.Warehouse == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	receipt := &entity.Receipt{
		ID:        uuid.New().String(),
		Supplier:  in.Supplier,
		Product:   in.Product,
		Quantity:  in.Quantity,
		Warehouse: in.Warehouse,
		Date:      time.Now(),
		Status:    entity.ReceiptStatusPending,
	}
	if err := uc.repo.Create(receipt); err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

// Validate transiciona la recepción pending → completed y registra el
// fan-out completo: actividad, notificación receipt_validated y movimiento
// de tipo receipt con la bodega como destino. Un id inexistente o una
// recepción ya procesada fallan con ErrNotFound sin escribir nada.
func (uc *ReceiptUseCase) Validate(ctx context.Context, id, user string) (*dto.ReceiptResponse, error) {
	uc.lat.Wait()
	receipt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.Status != entity.ReceiptStatusPending {
		return nil, domain.ErrNotFound
	}
	receipt.Status = entity.ReceiptStatusCompleted
	if err := uc.repo.Update(receipt); err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.tx.Run(ctx, func(
		activityRepo repository.ActivityRepository,
		notificationRepo repository.NotificationRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := activityRepo.Create(newActivity(
			"Receipt",
			fmt.Sprintf("Recepción validada: %d unidades de %s", receipt.Quantity, receipt.Product),
			"FileText", user, now,
		)); err != nil {
			return err
		}
		if err := notificationRepo.Create(newNotification(
			entity.NotificationReceiptValidated,
			"Recepción validada",
			fmt.Sprintf("%d unidades de %s recibidas de %s", receipt.Quantity, receipt.Product, receipt.Supplier),
			now,
		)); err != nil {
			return err
		}
		return movementRepo.Create(newMovement(
			entity.MovementTypeReceipt, receipt.Product, receipt.Quantity,
			"", receipt.Warehouse, user, now,
		))
	})
	if err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	if r == nil {
		return nil
	}
	return &dto.ReceiptResponse{
		ID:        r.ID,
		Supplier:  r.Supplier,
		Product:   r.Product,
		Quantity:  r.Quantity,
		Warehouse: r.Warehouse,
		Date:      r.Date,
		Status:    r.Status,
	}
}
