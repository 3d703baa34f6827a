package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// Puertos de persistencia para el rastro de auditoría. Las tres colecciones
// son insert-only y se listan en orden de inserción invertido (más reciente
// primero); Create antepone el registro.

// ActivityRepository puerto para el log de actividades.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	List() ([]*entity.Activity, error)
}

// NotificationRepository puerto para notificaciones. Read es el único campo
// mutable: MarkRead y MarkAllRead son las únicas escrituras post-inserción.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	List() ([]*entity.Notification, error)
	MarkRead(id string) (*entity.Notification, error)
	MarkAllRead() error
}

// MovementRepository puerto para el historial de movimientos.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List() ([]*entity.Movement, error)
}
