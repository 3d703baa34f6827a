package memory

import (
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var (
	_ repository.ActivityRepository     = (*ActivityRepo)(nil)
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
	_ repository.MovementRepository     = (*MovementRepo)(nil)
)

// ── Activities ────────────────────────────────────────────────────────────────

// ActivityRepo implementación en memoria del log de actividades.
type ActivityRepo struct {
	store *Store
	held  bool
}

// NewActivityRepository construye el adaptador de actividades.
func NewActivityRepository(store *Store) *ActivityRepo {
	return &ActivityRepo{store: store}
}

// Create antepone la actividad: la lista queda más reciente primero.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	defer r.store.acquire(r.held)()
	r.store.activities = append([]*entity.Activity{cloneActivity(activity)}, r.store.activities...)
	return nil
}

// List devuelve un snapshot copiado del log, más reciente primero.
func (r *ActivityRepo) List() ([]*entity.Activity, error) {
	defer r.store.acquire(r.held)()
	out := make([]*entity.Activity, 0, len(r.store.activities))
	for _, a := range r.store.activities {
		out = append(out, cloneActivity(a))
	}
	return out, nil
}

// ── Notifications ─────────────────────────────────────────────────────────────

// NotificationRepo implementación en memoria de notificaciones.
type NotificationRepo struct {
	store *Store
	held  bool
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(store *Store) *NotificationRepo {
	return &NotificationRepo{store: store}
}

// Create antepone la notificación.
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	defer r.store.acquire(r.held)()
	r.store.notifications = append([]*entity.Notification{cloneNotification(notification)}, r.store.notifications...)
	return nil
}

// GetByID devuelve una copia de la notificación o (nil, nil) si no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	defer r.store.acquire(r.held)()
	for _, n := range r.store.notifications {
		if n.ID == id {
			return cloneNotification(n), nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot copiado, más reciente primero.
func (r *NotificationRepo) List() ([]*entity.Notification, error) {
	defer r.store.acquire(r.held)()
	out := make([]*entity.Notification, 0, len(r.store.notifications))
	for _, n := range r.store.notifications {
		out = append(out, cloneNotification(n))
	}
	return out, nil
}

// MarkRead marca una notificación como leída y devuelve la copia actualizada,
// o (nil, nil) si el id no existe.
func (r *NotificationRepo) MarkRead(id string) (*entity.Notification, error) {
	defer r.store.acquire(r.held)()
	for _, n := range r.store.notifications {
		if n.ID == id {
			n.Read = true
			return cloneNotification(n), nil
		}
	}
	return nil, nil
}

// MarkAllRead marca todas las notificaciones como leídas. Con la lista vacía
// es un no-op sin error.
func (r *NotificationRepo) MarkAllRead() error {
	defer r.store.acquire(r.held)()
	for _, n := range r.store.notifications {
		n.Read = true
	}
	return nil
}

// ── Movements ─────────────────────────────────────────────────────────────────

// MovementRepo implementación en memoria del historial de movimientos.
type MovementRepo struct {
	store *Store
	held  bool
}

// NewMovementRepository construye el adaptador del ledger de movimientos.
func NewMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

// Create antepone el movimiento al ledger.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	defer r.store.acquire(r.held)()
	r.store.movements = append([]*entity.Movement{cloneMovement(movement)}, r.store.movements...)
	return nil
}

// List devuelve un snapshot copiado del ledger, más reciente primero.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	defer r.store.acquire(r.held)()
	out := make([]*entity.Movement, 0, len(r.store.movements))
	for _, m := range r.store.movements {
		out = append(out, cloneMovement(m))
	}
	return out, nil
}
