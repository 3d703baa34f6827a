package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests NotificationUseCase
// ──────────────────────────────────────────────────────────────────────────────

func newNotificationFixture(t *testing.T, seed ...*entity.Notification) *usecase.NotificationUseCase {
	t.Helper()
	store := memory.NewStore()
	repo := memory.NewNotificationRepository(store)
	for _, n := range seed {
		require.NoError(t, repo.Create(n))
	}
	return usecase.NewNotificationUseCase(repo, 0)
}

func TestNotification_MarkAsRead(t *testing.T) {
	uc := newNotificationFixture(t,
		&entity.Notification{ID: "n1", Type: entity.NotificationLowStock, Title: "Alerta"},
		&entity.Notification{ID: "n2", Type: entity.NotificationReceiptValidated, Title: "Recepción"},
	)

	out, err := uc.MarkAsRead(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, out.Read)

	// Solo la marcada cambia.
	list, err := uc.Fetch(context.Background())
	require.NoError(t, err)
	for _, n := range list {
		if n.ID == "n1" {
			assert.True(t, n.Read)
		} else {
			assert.False(t, n.Read)
		}
	}
}

func TestNotification_MarkAsReadIdInexistente(t *testing.T) {
	uc := newNotificationFixture(t)

	_, err := uc.MarkAsRead(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Marcar como leída es idempotente.
func TestNotification_MarkAsReadIdempotente(t *testing.T) {
	uc := newNotificationFixture(t, &entity.Notification{ID: "n1", Title: "Alerta"})

	_, err := uc.MarkAsRead(context.Background(), "n1")
	require.NoError(t, err)
	out, err := uc.MarkAsRead(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, out.Read)
}

func TestNotification_MarkAllAsRead(t *testing.T) {
	uc := newNotificationFixture(t,
		&entity.Notification{ID: "n1"},
		&entity.Notification{ID: "n2", Read: true},
		&entity.Notification{ID: "n3"},
	)

	require.NoError(t, uc.MarkAllAsRead(context.Background()))

	list, err := uc.Fetch(context.Background())
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.Read)
	}
}

// Con la lista vacía, marcar todas es un no-op sin error.
func TestNotification_MarkAllAsReadVacio(t *testing.T) {
	uc := newNotificationFixture(t)
	assert.NoError(t, uc.MarkAllAsRead(context.Background()))
}

// Fetch devuelve más reciente primero (orden de inserción invertido).
func TestNotification_FetchMasRecientePrimero(t *testing.T) {
	uc := newNotificationFixture(t,
		&entity.Notification{ID: "vieja"},
		&entity.Notification{ID: "media"},
		&entity.Notification{ID: "nueva"},
	)

	list, err := uc.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "nueva", list[0].ID)
	assert.Equal(t, "media", list[1].ID)
	assert.Equal(t, "vieja", list[2].ID)
}
