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

// TransferUseCase flujo de traslados entre bodegas: alta en pending y
// validación con fan-out de auditoría.
type TransferUseCase struct {
	repo repository.TransferRepository
	tx   TxRunner
	lat  simulate.Latency
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(repo repository.TransferRepository, tx TxRunner, lat simulate.Latency) *TransferUseCase {
	return &TransferUseCase{repo: repo, tx: tx, lat: lat}
}

// Fetch devuelve el snapshot actual de traslados.
func (uc *TransferUseCase) Fetch(_ context.Context) ([]dto.TransferResponse, error) {
	uc.lat.Wait()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t))
	}
	return items, nil
}

// Create agrega un traslado en estado pending. La regla from ≠ to pertenece
// a la frontera de UI; aquí solo se exigen campos presentes y cantidad
// positiva.
func (uc *TransferUseCase) Create(_ context.Context, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	uc.lat.Wait()
	if in.Product == "" || in.FromWarehouse == "" || in.ToWarehouse == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	transfer := &entity.Transfer{
		ID:            uuid.New().String(),
		Product:       in.Product,
		FromWarehouse: in.FromWarehouse,
		ToWarehouse:   in.ToWarehouse,
		Quantity:      in.Quantity,
		Date:          time.Now(),
		Status:        entity.TransferStatusPending,
	}
	if err := uc.repo.Create(transfer); err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

// Validate transiciona el traslado pending → completed y registra el
// fan-out completo con origen y destino. Un id inexistente o un traslado ya
// completado fallan con ErrNotFound sin escribir nada.
func (uc *TransferUseCase) Validate(ctx context.Context, id, user string) (*dto.TransferResponse, error) {
	uc.lat.Wait()
	transfer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil || transfer.Status != entity.TransferStatusPending {
		return nil, domain.ErrNotFound
	}
	transfer.Status = entity.TransferStatusCompleted
	if err := uc.repo.Update(transfer); err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.tx.Run(ctx, func(
		activityRepo repository.ActivityRepository,
		notificationRepo repository.NotificationRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := activityRepo.Create(newActivity(
			"Transfer",
			fmt.Sprintf("Traslado completado: %d unidades de %s de %s a %s",
				transfer.Quantity, transfer.Product, transfer.FromWarehouse, transfer.ToWarehouse),
			"ArrowLeftRight", user, now,
		)); err != nil {
			return err
		}
		if err := notificationRepo.Create(newNotification(
			entity.NotificationTransferCompleted,
			"Traslado completado",
			fmt.Sprintf("%d unidades de %s trasladadas de %s a %s",
				transfer.Quantity, transfer.Product, transfer.FromWarehouse, transfer.ToWarehouse),
			now,
		)); err != nil {
			return err
		}
		return movementRepo.Create(newMovement(
			entity.MovementTypeTransfer, transfer.Product, transfer.Quantity,
			transfer.FromWarehouse, transfer.ToWarehouse, user, now,
		))
	})
	if err != nil {
		return nil, err
	}
	return toTransferResponse(transfer), nil
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	return &dto.TransferResponse{
		ID:            t.ID,
		Product:       t.Product,
		FromWarehouse: t.FromWarehouse,
		ToWarehouse:   t.ToWarehouse,
		Quantity:      t.Quantity,
		Date:          t.Date,
		Status:        t.Status,
	}
}
