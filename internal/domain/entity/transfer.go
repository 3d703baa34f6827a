package entity

import "time"

// Estados de un traslado: pending → completed (terminal).
const (
	TransferStatusPending   = "pending"
	TransferStatusCompleted = "completed"
)

// Transfer representa un traslado de stock entre dos bodegas.
// La regla fromWarehouse ≠ toWarehouse se valida en la capa de interfaz,
// no en el store.
type Transfer struct {
	ID            string
	Product       string
	FromWarehouse string
	ToWarehouse   string
	Quantity      int
	Date          time.Time
	Status        string
}
