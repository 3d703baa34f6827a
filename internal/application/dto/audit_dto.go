package dto

import "time"

// ActivityResponse entrada del log de actividades.
type ActivityResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	User        string    `json:"user"`
	Icon        string    `json:"icon,omitempty"`
}

// NotificationResponse notificación para el usuario.
type NotificationResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

// MovementResponse entrada del historial de movimientos.
type MovementResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Product       string    `json:"product"`
	Quantity      int       `json:"quantity"`
	FromWarehouse string    `json:"from_warehouse,omitempty"`
	ToWarehouse   string    `json:"to_warehouse,omitempty"`
	Date          time.Time `json:"date"`
	User          string    `json:"user"`
}
