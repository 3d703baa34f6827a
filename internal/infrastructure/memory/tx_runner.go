package memory

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRunner ejecuta el fan-out de auditoría bajo el mutex del store: los tres
// appends (Activity, Notification, Movement) se aplican sin intercalar otra
// operación, de modo que el llamador observa "nada" o "todo aplicado".
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner atado al store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run toma el mutex, construye repositorios que asumen el lock ya tomado y
// ejecuta fn con ellos. No hay rollback: los appends en memoria no fallan y
// fn decide NotFound antes de escribir. El ctx no cancela: una operación en
// vuelo siempre llega a aplicar su efecto.
func (t *TxRunner) Run(_ context.Context, fn func(
	activityRepo repository.ActivityRepository,
	notificationRepo repository.NotificationRepository,
	movementRepo repository.MovementRepository,
) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(
		&ActivityRepo{store: t.store, held: true},
		&NotificationRepo{store: t.store, held: true},
		&MovementRepo{store: t.store, held: true},
	)
}
