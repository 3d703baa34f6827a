// Package analytics contiene las vistas derivadas read-only del dashboard:
// KPIs, entregas por bodega y el reporte predictivo de reposición.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/pkg/simulate"
)

// LowStockThreshold cantidad fija por bodega bajo la cual un producto se
// marca en los KPIs del dashboard.
const LowStockThreshold = 50

// DashboardUseCase calcula los KPIs y el gráfico de entregas por bodega
// sobre el snapshot actual del store. Solo lecturas; nunca muta estado.
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	receiptRepo   repository.ReceiptRepository
	deliveryRepo  repository.DeliveryRepository
	transferRepo  repository.TransferRepository
	lat           simulate.Latency
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	receiptRepo repository.ReceiptRepository,
	deliveryRepo repository.DeliveryRepository,
	transferRepo repository.TransferRepository,
	lat simulate.Latency,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		receiptRepo:   receiptRepo,
		deliveryRepo:  deliveryRepo,
		transferRepo:  transferRepo,
		lat:           lat,
	}
}

// Stats calcula los KPIs del dashboard. Los cuatro snapshots se leen en
// paralelo con goroutines y se combinan al final.
func (uc *DashboardUseCase) Stats(_ context.Context) (*dto.DashboardStatsDTO, error) {
	uc.lat.Wait()

	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type receiptsResult struct {
		items []*entity.Receipt
		err   error
	}
	type deliveriesResult struct {
		items []*entity.Delivery
		err   error
	}
	type transfersResult struct {
		items []*entity.Transfer
		err   error
	}

	productsCh := make(chan productsResult, 1)
	receiptsCh := make(chan receiptsResult, 1)
	deliveriesCh := make(chan deliveriesResult, 1)
	transfersCh := make(chan transfersResult, 1)

	go func() {
		items, err := uc.productRepo.List()
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.receiptRepo.List()
		receiptsCh <- receiptsResult{items, err}
	}()
	go func() {
		items, err := uc.deliveryRepo.List()
		deliveriesCh <- deliveriesResult{items, err}
	}()
	go func() {
		items, err := uc.transferRepo.List()
		transfersCh <- transfersResult{items, err}
	}()

	products := <-productsCh
	receipts := <-receiptsCh
	deliveries := <-deliveriesCh
	transfers := <-transfersCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if receipts.err != nil {
		return nil, fmt.Errorf("dashboard: recepciones: %w", receipts.err)
	}
	if deliveries.err != nil {
		return nil, fmt.Errorf("dashboard: entregas: %w", deliveries.err)
	}
	if transfers.err != nil {
		return nil, fmt.Errorf("dashboard: traslados: %w", transfers.err)
	}

	stats := &dto.DashboardStatsDTO{TotalProducts: len(products.items)}

	// Bajo stock: alguna bodega por debajo del umbral
	for _, p := range products.items {
		for _, qty := range p.Stock {
			if qty < LowStockThreshold {
				stats.LowStockItems++
				break
			}
		}
	}
	for _, r := range receipts.items {
		if r.Status == entity.ReceiptStatusPending {
			stats.PendingReceipts++
		}
	}
	for _, d := range deliveries.items {
		if d.Status == entity.DeliveryStatusPending {
			stats.PendingDeliveries++
		}
	}
	for _, t := range transfers.items {
		if t.Status == entity.TransferStatusPending {
			stats.ScheduledTransfers++
		}
	}

	return stats, nil
}

// WarehouseDeliveries suma, por bodega, las unidades de las entregas con
// estado delivered cuyo nombre de bodega coincide. Toda bodega aparece en el
// resultado, con 0 si no tiene entregas completadas.
func (uc *DashboardUseCase) WarehouseDeliveries(_ context.Context) (dto.WarehouseDeliveriesDTO, error) {
	uc.lat.Wait()

	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, fmt.Errorf("entregas por bodega: bodegas: %w", err)
	}
	deliveries, err := uc.deliveryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("entregas por bodega: entregas: %w", err)
	}

	out := make(dto.WarehouseDeliveriesDTO, len(warehouses))
	for _, w := range warehouses {
		total := 0
		for _, d := range deliveries {
			if d.Warehouse == w.Name && d.Status == entity.DeliveryStatusDelivered {
				total += d.Quantity
			}
		}
		out[w.Name] = total
	}
	return out, nil
}
