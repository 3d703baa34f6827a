package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Store — aislamiento de copias
// ──────────────────────────────────────────────────────────────────────────────

// Las lecturas devuelven copias profundas: mutar lo leído no toca el store.
func TestStore_LecturasSonCopias(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)
	require.NoError(t, repo.Create(&entity.Product{
		ID: "p1", Name: "Widget", SKU: "W-1", Stock: map[string]int{"wh1": 10},
	}))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	got.Name = "Mutado"
	got.Stock["wh1"] = 9999

	again, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", again.Name)
	assert.Equal(t, 10, again.Stock["wh1"])
}

// Lo escrito también se copia: mutar el argumento tras Create no afecta.
func TestStore_EscriturasSonCopias(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)
	in := &entity.Product{ID: "p1", Name: "Widget", SKU: "W-1", Stock: map[string]int{"wh1": 10}}
	require.NoError(t, repo.Create(in))

	in.Stock["wh1"] = 0

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock["wh1"])
}

func TestStore_GetByIDInexistenteDevuelveNilNil(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)

	got, err := repo.GetByID("no-existe")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_UpdateInexistenteDevuelveNotFound(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)

	err := repo.Update(&entity.Product{ID: "no-existe", Name: "X", SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Store — orden
// ──────────────────────────────────────────────────────────────────────────────

// Las colecciones de entidades conservan orden de inserción; las de
// auditoría lo invierten (más reciente primero).
func TestStore_OrdenDeColecciones(t *testing.T) {
	store := memory.NewStore()

	receiptRepo := memory.NewReceiptRepository(store)
	require.NoError(t, receiptRepo.Create(&entity.Receipt{ID: "r1"}))
	require.NoError(t, receiptRepo.Create(&entity.Receipt{ID: "r2"}))
	receipts, err := receiptRepo.List()
	require.NoError(t, err)
	assert.Equal(t, "r1", receipts[0].ID, "las recepciones van al final")
	assert.Equal(t, "r2", receipts[1].ID)

	movementRepo := memory.NewMovementRepository(store)
	require.NoError(t, movementRepo.Create(&entity.Movement{ID: "m1"}))
	require.NoError(t, movementRepo.Create(&entity.Movement{ID: "m2"}))
	movements, err := movementRepo.List()
	require.NoError(t, err)
	assert.Equal(t, "m2", movements[0].ID, "los movimientos se anteponen")
	assert.Equal(t, "m1", movements[1].ID)

	activityRepo := memory.NewActivityRepository(store)
	require.NoError(t, activityRepo.Create(&entity.Activity{ID: "a1"}))
	require.NoError(t, activityRepo.Create(&entity.Activity{ID: "a2"}))
	activities, err := activityRepo.List()
	require.NoError(t, err)
	assert.Equal(t, "a2", activities[0].ID, "las actividades se anteponen")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Store — concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Escrituras concurrentes sobre el mismo producto terminan en un estado
// consistente: alguno de los valores escritos, completo (last-write-wins).
func TestStore_LastWriteWins(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)
	require.NoError(t, repo.Create(&entity.Product{
		ID: "p1", Name: "Widget", SKU: "W-1", Stock: map[string]int{"wh1": 0},
	}))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			_ = repo.Update(&entity.Product{
				ID: "p1", Name: "Widget", SKU: "W-1", Stock: map[string]int{"wh1": qty},
			})
		}(i)
	}
	wg.Wait()

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Stock["wh1"], 1)
	assert.LessOrEqual(t, got.Stock["wh1"], 20)
}

// El fan-out dentro del TxRunner es atómico: un lector concurrente nunca
// observa un rastro a medias (p. ej. la actividad sin su movimiento).
func TestStore_TxRunnerEsAtomico(t *testing.T) {
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	activityRepo := memory.NewActivityRepository(store)
	movementRepo := memory.NewMovementRepository(store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = tx.Run(context.Background(), func(
				aRepo repository.ActivityRepository,
				nRepo repository.NotificationRepository,
				mRepo repository.MovementRepository,
			) error {
				if err := aRepo.Create(&entity.Activity{ID: "a"}); err != nil {
					return err
				}
				return mRepo.Create(&entity.Movement{ID: "m"})
			})
		}
	}()

	for i := 0; i < 100; i++ {
		// Leyendo primero el ledger: toda actividad cuyo movimiento ya era
		// visible tiene que estar en el log leído después. Si el fan-out se
		// intercalara, esta desigualdad se rompería.
		movements, err := movementRepo.List()
		require.NoError(t, err)
		activities, err := activityRepo.List()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(activities), len(movements))
	}
	<-done

	activities, err := activityRepo.List()
	require.NoError(t, err)
	movements, err := movementRepo.List()
	require.NoError(t, err)
	assert.Equal(t, len(activities), len(movements))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SeedDemo
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedDemo_PueblaElStore(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, memory.SeedDemo(store, "admin123"))

	products, err := memory.NewProductRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, products, 6)

	warehouses, err := memory.NewWarehouseRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, warehouses, 3)

	movements, err := memory.NewMovementRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, movements, 5)

	user, err := memory.NewUserRepository(store).FindByEmail("admin@stockmaster.local")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "admin123", user.PasswordHash, "el password se guarda hasheado")
}
