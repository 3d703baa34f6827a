// Package memory implementa el Entity Store de StockMaster: colecciones en
// memoria volátiles para la vida del proceso, sin persistencia. Reemplaza el
// adaptador de PostgreSQL detrás de los mismos puertos de repository.
//
// Garantías:
//   - Cada lectura devuelve una copia independiente (mutar el valor devuelto
//     no afecta al store).
//   - Un único mutex por store: cada llamada de repositorio es atómica y dos
//     operaciones que se crucen en su ventana de latencia simulada resuelven
//     en last-write-wins.
//   - Activities, Notifications y Movements se anteponen: orden de inserción
//     invertido (más reciente primero), que es orden de finalización.
package memory

import (
	"sync"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// Store contiene las colecciones autoritativas en memoria. Lo construye la
// raíz de composición y se inyecta a los repositorios; no hay estado global
// de paquete.
type Store struct {
	mu sync.Mutex

	products   []*entity.Product
	warehouses []*entity.Warehouse
	receipts   []*entity.Receipt
	deliveries []*entity.Delivery
	transfers  []*entity.Transfer
	users      []*entity.User

	// Más reciente primero.
	activities    []*entity.Activity
	notifications []*entity.Notification
	movements     []*entity.Movement
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{}
}

// acquire toma el mutex del store salvo que el llamador ya lo tenga (repos
// construidos dentro de un TxRunner). Devuelve la función de liberación.
func (s *Store) acquire(held bool) func() {
	if held {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ── Clones ────────────────────────────────────────────────────────────────────

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	c := *p
	c.Stock = p.CloneStock()
	return &c
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}

func cloneReceipt(r *entity.Receipt) *entity.Receipt {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func cloneDelivery(d *entity.Delivery) *entity.Delivery {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func cloneTransfer(t *entity.Transfer) *entity.Transfer {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneActivity(a *entity.Activity) *entity.Activity {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneNotification(n *entity.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
