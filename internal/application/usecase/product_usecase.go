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

// ProductUseCase casos de uso CRUD para productos. Crear y actualizar dejan
// una actividad en el log; el stock por bodega solo cambia vía los campos de
// la propia operación (no hay operación de borrado).
type ProductUseCase struct {
	repo         repository.ProductRepository
	activityRepo repository.ActivityRepository
	lat          simulate.Latency
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, activityRepo repository.ActivityRepository, lat simulate.Latency) *ProductUseCase {
	return &ProductUseCase{repo: repo, activityRepo: activityRepo, lat: lat}
}

// Fetch devuelve el snapshot actual de productos tras la latencia simulada.
func (uc *ProductUseCase) Fetch(_ context.Context) ([]dto.ProductResponse, error) {
	uc.lat.Wait()
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Create crea un producto nuevo y registra la actividad correspondiente.
func (uc *ProductUseCase) Create(_ context.Context, in dto.CreateProductRequest, user string) (*dto.ProductResponse, error) {
	uc.lat.Wait()
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	stock := in.Stock
	if stock == nil {
		stock = map[string]int{}
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		Category:     in.Category,
		InitialStock: in.InitialStock,
		Stock:        stock,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	_ = uc.activityRepo.Create(&entity.Activity{
		ID:          uuid.New().String(),
		Type:        "Product",
		Description: fmt.Sprintf("Producto agregado: %s", product.Name),
		Date:        time.Now(),
		User:        user,
		Icon:        "Package",
	})
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial. Falla con ErrNotFound si el id no
// existe.
func (uc *ProductUseCase) Update(_ context.Context, id string, in dto.UpdateProductRequest, user string) (*dto.ProductResponse, error) {
	uc.lat.Wait()
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.InitialStock != nil {
		product.InitialStock = *in.InitialStock
	}
	if in.Stock != nil {
		product.Stock = in.Stock
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	_ = uc.activityRepo.Create(&entity.Activity{
		ID:          uuid.New().String(),
		Type:        "Product",
		Description: fmt.Sprintf("Producto actualizado: %s", product.Name),
		Date:        time.Now(),
		User:        user,
		Icon:        "Package",
	})
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     p.Category,
		InitialStock: p.InitialStock,
		Stock:        p.CloneStock(),
		TotalStock:   p.TotalStock(),
	}
}
