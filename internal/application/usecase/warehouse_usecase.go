package usecase

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

// WarehouseUseCase casos de uso CRUD para bodegas. Sin efectos sobre stock.
type WarehouseUseCase struct {
	repo         repository.WarehouseRepository
	activityRepo repository.ActivityRepository
	lat          simulate.Latency
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, activityRepo repository.ActivityRepository, lat simulate.Latency) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, activityRepo: activityRepo, lat: lat}
}

// Fetch devuelve el snapshot actual de bodegas.
func (uc *WarehouseUseCase) Fetch(_ context.Context) ([]dto.WarehouseResponse, error) {
	uc.lat.Wait()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Create crea una bodega nueva y registra la actividad.
func (uc *WarehouseUseCase) Create(_ context.Context, in dto.CreateWarehouseRequest, user string) (*dto.WarehouseResponse, error) {
	uc.lat.Wait()
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := &entity.Warehouse{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Code:    in.Code,
		Address: in.Address,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	_ = uc.activityRepo.Create(&entity.Activity{
		ID:          uuid.New().String(),
		Type:        "Warehouse",
		Description: fmt.Sprintf("Bodega agregada: %s", warehouse.Name),
		Date:        time.Now(),
		User:        user,
		Icon:        "Warehouse",
	})
	return toWarehouseResponse(warehouse), nil
}

// Update aplica una actualización parcial. ErrNotFound si el id no existe.
func (uc *WarehouseUseCase) Update(_ context.Context, id string, in dto.UpdateWarehouseRequest, user string) (*dto.WarehouseResponse, error) {
	uc.lat.Wait()
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Code != nil {
		warehouse.Code = *in.Code
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	_ = uc.activityRepo.Create(&entity.Activity{
		ID:          uuid.New().String(),
		Type:        "Warehouse",
		Description: fmt.Sprintf("Bodega actualizada: %s", warehouse.Name),
		Date:        time.Now(),
		User:        user,
		Icon:        "Warehouse",
	})
	return toWarehouseResponse(warehouse), nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:      w.ID,
		Name:    w.Name,
		Code:    w.Code,
		Address: w.Address,
	}
}
