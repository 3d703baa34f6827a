package entity

import "time"

// Estados de una entrega. La progresión es lineal y de un solo sentido:
// pending → picked → packed → delivered (terminal).
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusPicked    = "picked"
	DeliveryStatusPacked    = "packed"
	DeliveryStatusDelivered = "delivered"
)

// Delivery representa mercancía que sale de una bodega para atender demanda.
type Delivery struct {
	ID        string
	Product   string
	Quantity  int
	Warehouse string
	Date      time.Time
	Status    string
}

// deliveryOrder posición de cada estado dentro de la progresión lineal.
var deliveryOrder = map[string]int{
	DeliveryStatusPending:   0,
	DeliveryStatusPicked:    1,
	DeliveryStatusPacked:    2,
	DeliveryStatusDelivered: 3,
}

// ValidDeliveryStatus indica si s es un estado de entrega conocido.
func ValidDeliveryStatus(s string) bool {
	_, ok := deliveryOrder[s]
	return ok
}

// CanTransitionDelivery indica si la transición from → to es el único paso
// legal hacia adelante de la progresión. Retroceder, saltar pasos o salir
// del estado terminal no está permitido.
func CanTransitionDelivery(from, to string) bool {
	fi, okFrom := deliveryOrder[from]
	ti, okTo := deliveryOrder[to]
	return okFrom && okTo && ti == fi+1
}

// NextDeliveryStatus devuelve el siguiente estado legal de la progresión y
// false si el estado actual es terminal o desconocido.
func NextDeliveryStatus(current string) (string, bool) {
	switch current {
	case DeliveryStatusPending:
		return DeliveryStatusPicked, true
	case DeliveryStatusPicked:
		return DeliveryStatusPacked, true
	case DeliveryStatusPacked:
		return DeliveryStatusDelivered, true
	default:
		return "", false
	}
}
