package entity

import "time"

// Tipos de notificación.
const (
	NotificationLowStock          = "low_stock"
	NotificationReceiptValidated  = "receipt_validated"
	NotificationDeliveryValidated = "delivery_validated"
	NotificationTransferCompleted = "transfer_completed"
	NotificationAdjustmentMade    = "adjustment_made"
)

// Notification es un aviso para el usuario (append-only, más reciente
// primero). Read es el único campo mutable tras la inserción.
type Notification struct {
	ID      string
	Type    string
	Title   string
	Message string
	Date    time.Time
	Read    bool
}
