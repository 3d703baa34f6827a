package entity

import "time"

// Estados de una recepción: pending → completed (terminal).
const (
	ReceiptStatusPending   = "pending"
	ReceiptStatusCompleted = "completed"
)

// Receipt representa mercancía entrante a una bodega desde un proveedor.
// Product y Warehouse son nombres para mostrar, tal como los captura el
// formulario de recepciones.
type Receipt struct {
	ID        string
	Supplier  string
	Product   string
	Quantity  int
	Warehouse string
	Date      time.Time
	Status    string
}
