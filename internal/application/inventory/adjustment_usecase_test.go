package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdjustmentUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Un ajuste negativo registra el rastro con |difference| y la etiqueta
// "System Adjustment" como origen, sin tocar el stock del producto.
func TestAdjustment_DiferenciaNegativa(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", "Webcam HD", map[string]int{"wh1": 20, "wh2": 15})

	err := f.adjustments.Apply(context.Background(), dto.ApplyAdjustmentRequest{
		ProductID: "p1", CountedQuantity: 30, Difference: -5,
	}, testUser)
	require.NoError(t, err)

	movs, err := f.movementRepo.List()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeAdjustment, movs[0].Type)
	assert.Equal(t, 5, movs[0].Quantity, "el movimiento lleva el valor absoluto")
	assert.Equal(t, entity.SystemAdjustmentLabel, movs[0].FromWarehouse)
	assert.Empty(t, movs[0].ToWarehouse)

	activities, err := f.activityRepo.List()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Stock ajustado para Webcam HD: -5 unidades", activities[0].Description)

	// El stock del producto no cambia: el ajuste es solo auditoría.
	product, err := f.productRepo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"wh1": 20, "wh2": 15}, product.Stock)
}

// Un ajuste positivo lleva el signo en la descripción y la etiqueta como
// destino.
func TestAdjustment_DiferenciaPositiva(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", "Widget", map[string]int{"wh1": 10})

	err := f.adjustments.Apply(context.Background(), dto.ApplyAdjustmentRequest{
		ProductID: "p1", CountedQuantity: 18, Difference: 8,
	}, testUser)
	require.NoError(t, err)

	movs, err := f.movementRepo.List()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, 8, movs[0].Quantity)
	assert.Empty(t, movs[0].FromWarehouse)
	assert.Equal(t, entity.SystemAdjustmentLabel, movs[0].ToWarehouse)

	activities, err := f.activityRepo.List()
	require.NoError(t, err)
	assert.Equal(t, "Stock ajustado para Widget: +8 unidades", activities[0].Description)

	notifs, err := f.notifRepo.List()
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, entity.NotificationAdjustmentMade, notifs[0].Type)
}

// Diferencia cero: rastro completo con cantidad cero y sin etiqueta en
// ninguno de los dos lados.
func TestAdjustment_DiferenciaCero(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", "Widget", map[string]int{"wh1": 10})

	err := f.adjustments.Apply(context.Background(), dto.ApplyAdjustmentRequest{
		ProductID: "p1", CountedQuantity: 10, Difference: 0,
	}, testUser)
	require.NoError(t, err)

	movs, err := f.movementRepo.List()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Zero(t, movs[0].Quantity)
	assert.Empty(t, movs[0].FromWarehouse)
	assert.Empty(t, movs[0].ToWarehouse)
}

// Producto inexistente: ErrNotFound sin rastro parcial.
func TestAdjustment_ProductoInexistente(t *testing.T) {
	f := newFixture(t)

	err := f.adjustments.Apply(context.Background(), dto.ApplyAdjustmentRequest{
		ProductID: "no-existe", CountedQuantity: 10, Difference: 2,
	}, testUser)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	activities, notifications, movements := f.auditCounts(t)
	assert.Zero(t, activities+notifications+movements)
}

func TestAdjustment_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", "Widget", nil)

	err := f.adjustments.Apply(context.Background(), dto.ApplyAdjustmentRequest{
		ProductID: "", CountedQuantity: 10, Difference: 2,
	}, testUser)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.adjustments.Apply(context.Background(), dto.ApplyAdjustmentRequest{
		ProductID: "p1", CountedQuantity: -1, Difference: 2,
	}, testUser)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
