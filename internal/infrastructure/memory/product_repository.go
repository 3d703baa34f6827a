package memory

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
type ProductRepo struct {
	store *Store
	held  bool // true dentro de un TxRunner: el mutex ya está tomado
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// Create agrega un producto nuevo al final de la colección.
func (r *ProductRepo) Create(product *entity.Product) error {
	defer r.store.acquire(r.held)()
	r.store.products = append(r.store.products, cloneProduct(product))
	return nil
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.store.acquire(r.held)()
	for _, p := range r.store.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot copiado de todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	defer r.store.acquire(r.held)()
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

// Update reemplaza el producto con el mismo ID. Última escritura gana.
func (r *ProductRepo) Update(product *entity.Product) error {
	defer r.store.acquire(r.held)()
	for i, p := range r.store.products {
		if p.ID == product.ID {
			r.store.products[i] = cloneProduct(product)
			return nil
		}
	}
	return domain.ErrNotFound
}
