package inventory

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/simulate"
)

// HistoryUseCase lecturas del rastro de auditoría: log de actividades y
// historial de movimientos, ambos más reciente primero.
type HistoryUseCase struct {
	activityRepo repository.ActivityRepository
	movementRepo repository.MovementRepository
	lat          simulate.Latency
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(activityRepo repository.ActivityRepository, movementRepo repository.MovementRepository, lat simulate.Latency) *HistoryUseCase {
	return &HistoryUseCase{activityRepo: activityRepo, movementRepo: movementRepo, lat: lat}
}

// FetchActivities devuelve el log de actividades.
func (uc *HistoryUseCase) FetchActivities(_ context.Context) ([]dto.ActivityResponse, error) {
	uc.lat.Wait()
	list, err := uc.activityRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.ActivityResponse{
			ID:          a.ID,
			Type:        a.Type,
			Description: a.Description,
			Date:        a.Date,
			User:        a.User,
			Icon:        a.Icon,
		})
	}
	return items, nil
}

// FetchMovements devuelve el historial de movimientos.
func (uc *HistoryUseCase) FetchMovements(_ context.Context) ([]dto.MovementResponse, error) {
	uc.lat.Wait()
	list, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			Type:          m.Type,
			Product:       m.Product,
			Quantity:      m.Quantity,
			FromWarehouse: m.FromWarehouse,
			ToWarehouse:   m.ToWarehouse,
			Date:          m.Date,
			User:          m.User,
		})
	}
	return items, nil
}
