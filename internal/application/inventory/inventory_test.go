package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUser = "Admin"

// fixture arma el store en memoria con latencia cero y todos los casos de
// uso de inventario cableados contra él.
type fixture struct {
	store         *memory.Store
	receipts      *inventory.ReceiptUseCase
	deliveries    *inventory.DeliveryUseCase
	transfers     *inventory.TransferUseCase
	adjustments   *inventory.AdjustmentUseCase
	history       *inventory.HistoryUseCase
	activityRepo  *memory.ActivityRepo
	notifRepo     *memory.NotificationRepo
	movementRepo  *memory.MovementRepo
	productRepo   *memory.ProductRepo
	warehouseRepo *memory.WarehouseRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	activityRepo := memory.NewActivityRepository(store)
	notifRepo := memory.NewNotificationRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	productRepo := memory.NewProductRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)

	return &fixture{
		store:         store,
		receipts:      inventory.NewReceiptUseCase(memory.NewReceiptRepository(store), tx, 0),
		deliveries:    inventory.NewDeliveryUseCase(memory.NewDeliveryRepository(store), tx, 0),
		transfers:     inventory.NewTransferUseCase(memory.NewTransferRepository(store), tx, 0),
		adjustments:   inventory.NewAdjustmentUseCase(productRepo, tx, 0),
		history:       inventory.NewHistoryUseCase(activityRepo, movementRepo, 0),
		activityRepo:  activityRepo,
		notifRepo:     notifRepo,
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// auditCounts devuelve (actividades, notificaciones, movimientos) actuales.
func (f *fixture) auditCounts(t *testing.T) (int, int, int) {
	t.Helper()
	activities, err := f.activityRepo.List()
	require.NoError(t, err)
	notifications, err := f.notifRepo.List()
	require.NoError(t, err)
	movements, err := f.movementRepo.List()
	require.NoError(t, err)
	return len(activities), len(notifications), len(movements)
}

// mustCreateReceipt crea una recepción pendiente y devuelve su id.
func (f *fixture) mustCreateReceipt(t *testing.T, supplier, product string, qty int, warehouse string) string {
	t.Helper()
	out, err := f.receipts.Create(context.Background(), dto.CreateReceiptRequest{
		Supplier: supplier, Product: product, Quantity: qty, Warehouse: warehouse,
	})
	require.NoError(t, err)
	require.Equal(t, entity.ReceiptStatusPending, out.Status)
	return out.ID
}

// mustCreateDelivery crea una entrega pendiente y devuelve su id.
func (f *fixture) mustCreateDelivery(t *testing.T, product string, qty int, warehouse string) string {
	t.Helper()
	out, err := f.deliveries.Create(context.Background(), dto.CreateDeliveryRequest{
		Product: product, Quantity: qty, Warehouse: warehouse,
	})
	require.NoError(t, err)
	require.Equal(t, entity.DeliveryStatusPending, out.Status)
	return out.ID
}

// mustCreateTransfer crea un traslado programado y devuelve su id.
func (f *fixture) mustCreateTransfer(t *testing.T, product, from, to string, qty int) string {
	t.Helper()
	out, err := f.transfers.Create(context.Background(), dto.CreateTransferRequest{
		Product: product, FromWarehouse: from, ToWarehouse: to, Quantity: qty,
	})
	require.NoError(t, err)
	require.Equal(t, entity.TransferStatusPending, out.Status)
	return out.ID
}

// seedProduct inserta un producto directamente en el store.
func (f *fixture) seedProduct(t *testing.T, id, name string, stock map[string]int) {
	t.Helper()
	require.NoError(t, f.productRepo.Create(&entity.Product{
		ID: id, Name: name, SKU: "SKU-" + id, Category: "Test", Stock: stock,
	}))
}
