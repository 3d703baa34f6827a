package memory

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación en memoria del puerto WarehouseRepository.
type WarehouseRepo struct {
	store *Store
	held  bool
}

// NewWarehouseRepository construye el adaptador de bodegas.
func NewWarehouseRepository(store *Store) *WarehouseRepo {
	return &WarehouseRepo{store: store}
}

// Create agrega una bodega nueva al final de la colección.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	defer r.store.acquire(r.held)()
	r.store.warehouses = append(r.store.warehouses, cloneWarehouse(warehouse))
	return nil
}

// GetByID devuelve una copia de la bodega o (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	defer r.store.acquire(r.held)()
	for _, w := range r.store.warehouses {
		if w.ID == id {
			return cloneWarehouse(w), nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot copiado de todas las bodegas.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	defer r.store.acquire(r.held)()
	out := make([]*entity.Warehouse, 0, len(r.store.warehouses))
	for _, w := range r.store.warehouses {
		out = append(out, cloneWarehouse(w))
	}
	return out, nil
}

// Update reemplaza la bodega con el mismo ID.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	defer r.store.acquire(r.held)()
	for i, w := range r.store.warehouses {
		if w.ID == warehouse.ID {
			r.store.warehouses[i] = cloneWarehouse(warehouse)
			return nil
		}
	}
	return domain.ErrNotFound
}
