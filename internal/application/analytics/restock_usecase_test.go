package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// capturePDFGen captura las predicciones que recibe el generador.
type capturePDFGen struct {
	got []dto.RestockPredictionDTO
}

func (g *capturePDFGen) GenerateRestockReport(_ context.Context, predictions []dto.RestockPredictionDTO, _ time.Time) ([]byte, error) {
	g.got = predictions
	return []byte("%PDF-fake"), nil
}

func newRestockFixture(t *testing.T) (*memory.Store, *analytics.RestockUseCase, *capturePDFGen) {
	t.Helper()
	store := memory.NewStore()
	gen := &capturePDFGen{}
	uc := analytics.NewRestockUseCase(
		memory.NewProductRepository(store),
		memory.NewMovementRepository(store),
		gen,
		0,
	)
	return store, uc, gen
}

func seedRestockProduct(t *testing.T, store *memory.Store, id, name string, stock int) {
	t.Helper()
	require.NoError(t, memory.NewProductRepository(store).Create(&entity.Product{
		ID: id, Name: name, SKU: "SKU-" + id,
		Stock: map[string]int{"wh1": stock},
	}))
}

// seedDeliveredMovement inserta un movimiento de entrega con la antigüedad
// indicada en días.
func seedDeliveredMovement(t *testing.T, store *memory.Store, product string, qty, daysAgo int) {
	t.Helper()
	require.NoError(t, memory.NewMovementRepository(store).Create(&entity.Movement{
		ID: product + "-" + time.Now().String(), Type: entity.MovementTypeDelivery,
		Product: product, Quantity: qty, FromWarehouse: "Main Warehouse",
		Date: time.Now().AddDate(0, 0, -daysAgo), User: "Admin",
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Predict
// ──────────────────────────────────────────────────────────────────────────────

// Stock 100 con 60 unidades entregadas en la ventana: uso diario 2.0,
// 50 días de stock y sin reorden (el stock ya cubre los 14 días objetivo).
func TestRestock_ConsumoModerado(t *testing.T) {
	store, uc, _ := newRestockFixture(t)
	seedRestockProduct(t, store, "p1", "Widget", 100)
	seedDeliveredMovement(t, store, "Widget", 60, 10)

	out, err := uc.Predict(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	p := out[0]
	assert.Equal(t, 100, p.CurrentStock)
	assert.True(t, decimal.NewFromInt(2).Equal(p.AvgDailyUsage), "uso diario = 60/30 = 2, fue %s", p.AvgDailyUsage)
	assert.Equal(t, 50, p.DaysUntilOutOfStock)
	assert.Zero(t, p.SuggestedReorderQty)
}

// Stock 10 con 150 entregadas: uso diario 5.0, 2 días de stock y reorden de
// 60 unidades para cubrir 14 días (5·14 − 10).
func TestRestock_ConsumoAlto(t *testing.T) {
	store, uc, _ := newRestockFixture(t)
	seedRestockProduct(t, store, "p1", "Widget", 10)
	seedDeliveredMovement(t, store, "Widget", 150, 3)

	out, err := uc.Predict(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	p := out[0]
	assert.True(t, decimal.NewFromInt(5).Equal(p.AvgDailyUsage))
	assert.Equal(t, 2, p.DaysUntilOutOfStock)
	assert.Equal(t, 60, p.SuggestedReorderQty)
}

// Sin entregas en la ventana: centinela 999 días y sin reorden.
func TestRestock_SinConsumo(t *testing.T) {
	store, uc, _ := newRestockFixture(t)
	seedRestockProduct(t, store, "p1", "Widget", 40)

	out, err := uc.Predict(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 999, out[0].DaysUntilOutOfStock)
	assert.True(t, out[0].AvgDailyUsage.IsZero())
	assert.Zero(t, out[0].SuggestedReorderQty)
}

// Los movimientos fuera de la ventana de 30 días no cuentan; los que no son
// entregas tampoco.
func TestRestock_VentanaYTipoDeMovimiento(t *testing.T) {
	store, uc, _ := newRestockFixture(t)
	seedRestockProduct(t, store, "p1", "Widget", 40)
	seedDeliveredMovement(t, store, "Widget", 300, 45) // fuera de la ventana
	require.NoError(t, memory.NewMovementRepository(store).Create(&entity.Movement{
		ID: "m-receipt", Type: entity.MovementTypeReceipt, Product: "Widget",
		Quantity: 90, ToWarehouse: "Main Warehouse", Date: time.Now().AddDate(0, 0, -1),
	}))

	out, err := uc.Predict(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 999, out[0].DaysUntilOutOfStock, "solo entregas dentro de la ventana cuentan")
}

// El reporte sale ordenado por urgencia: menos días de stock primero, con
// los productos sin consumo (999) al final.
func TestRestock_OrdenPorUrgencia(t *testing.T) {
	store, uc, _ := newRestockFixture(t)
	seedRestockProduct(t, store, "p1", "Tranquilo", 240)
	seedRestockProduct(t, store, "p2", "Urgente", 10)
	seedRestockProduct(t, store, "p3", "SinConsumo", 5)
	seedDeliveredMovement(t, store, "Tranquilo", 30, 5) // avg 1, 240 días
	seedDeliveredMovement(t, store, "Urgente", 150, 5)  // avg 5, 2 días

	out, err := uc.Predict(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Urgente", out[0].ProductName)
	assert.Equal(t, "Tranquilo", out[1].ProductName)
	assert.Equal(t, "SinConsumo", out[2].ProductName)
}

// Determinismo: dos ejecuciones con el mismo historial producen el mismo
// reporte.
func TestRestock_Determinista(t *testing.T) {
	store, uc, _ := newRestockFixture(t)
	seedRestockProduct(t, store, "p1", "Widget", 100)
	seedRestockProduct(t, store, "p2", "Gadget", 50)
	seedDeliveredMovement(t, store, "Widget", 60, 10)
	seedDeliveredMovement(t, store, "Gadget", 15, 4)

	first, err := uc.Predict(context.Background())
	require.NoError(t, err)
	second, err := uc.Predict(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Report
// ──────────────────────────────────────────────────────────────────────────────

// Report delega en el generador con las predicciones ya ordenadas.
func TestRestock_ReportUsaPrediccionesOrdenadas(t *testing.T) {
	store, uc, gen := newRestockFixture(t)
	seedRestockProduct(t, store, "p1", "Tranquilo", 240)
	seedRestockProduct(t, store, "p2", "Urgente", 10)
	seedDeliveredMovement(t, store, "Tranquilo", 30, 5)
	seedDeliveredMovement(t, store, "Urgente", 150, 5)

	pdfBytes, err := uc.Report(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	require.Len(t, gen.got, 2)
	assert.Equal(t, "Urgente", gen.got[0].ProductName)
}
