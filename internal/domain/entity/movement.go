package entity

import "time"

// Tipos de movimiento del historial.
const (
	MovementTypeReceipt    = "receipt"
	MovementTypeDelivery   = "delivery"
	MovementTypeTransfer   = "transfer"
	MovementTypeAdjustment = "adjustment"
)

// SystemAdjustmentLabel etiqueta de origen/destino que usan los ajustes de
// inventario en el historial de movimientos.
const SystemAdjustmentLabel = "System Adjustment"

// Movement es una entrada del libro de movimientos: el ledger append-only
// (más reciente primero) que unifica todos los eventos que afectan stock.
// FromWarehouse/ToWarehouse vacíos significan "sin origen"/"sin destino":
// una recepción solo tiene destino y una entrega solo tiene origen.
type Movement struct {
	ID            string
	Type          string
	Product       string
	Quantity      int
	FromWarehouse string
	ToWarehouse   string
	Date          time.Time
	User          string
}
