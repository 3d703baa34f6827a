package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildAPI arma la aplicación completa contra un store sembrado, con
// latencia cero.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.SeedDemo(store, "admin123"))

	tx := memory.NewTxRunner(store)
	productRepo := memory.NewProductRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)
	activityRepo := memory.NewActivityRepository(store)
	movementRepo := memory.NewMovementRepository(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:      usecase.NewProductUseCase(productRepo, activityRepo, 0),
		WarehouseUC:    usecase.NewWarehouseUseCase(warehouseRepo, activityRepo, 0),
		NotificationUC: usecase.NewNotificationUseCase(memory.NewNotificationRepository(store), 0),
		ReceiptUC:      inventory.NewReceiptUseCase(memory.NewReceiptRepository(store), tx, 0),
		DeliveryUC:     inventory.NewDeliveryUseCase(memory.NewDeliveryRepository(store), tx, 0),
		TransferUC:     inventory.NewTransferUseCase(memory.NewTransferRepository(store), tx, 0),
		AdjustmentUC:   inventory.NewAdjustmentUseCase(productRepo, tx, 0),
		HistoryUC:      inventory.NewHistoryUseCase(activityRepo, movementRepo, 0),
		DashboardUC: appanalytics.NewDashboardUseCase(
			productRepo, warehouseRepo,
			memory.NewReceiptRepository(store),
			memory.NewDeliveryRepository(store),
			memory.NewTransferRepository(store),
			0,
		),
		RestockUC: appanalytics.NewRestockUseCase(productRepo, movementRepo, nil, 0),
		AuthUC: auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}, 0),
		JWTSecret: testJWTSecret,
	})
	return app
}

// login inicia sesión con el usuario admin sembrado y devuelve el header.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"email": "admin@stockmaster.local", "password": "admin123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el admin sembrado debe poder iniciar sesión")

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

// doJSON lanza una petición autenticada con cuerpo JSON opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de integración del router
// ──────────────────────────────────────────────────────────────────────────────

// Las rutas protegidas rechazan peticiones sin token.
func TestRouter_RutasProtegidasSinToken(t *testing.T) {
	app := buildAPI(t)

	for _, path := range []string{
		"/api/products", "/api/receipts", "/api/dashboard/stats", "/api/restock/predictions",
	} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

// Validar la recepción sembrada r1 responde 200 y la segunda vez 404.
func TestRouter_ValidarRecepcion(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/receipts/r1/validate", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "completed", out.Status)

	again := doJSON(t, app, http.MethodPost, "/api/receipts/r1/validate", token, nil)
	again.Body.Close()
	assert.Equal(t, http.StatusNotFound, again.StatusCode, "revalidar debe responder 404")
}

// Un salto de estado en la entrega sembrada d1 (pending) responde 409; el
// paso legal responde 200.
func TestRouter_TransicionDeEntrega(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/deliveries/d1/status", token,
		map[string]string{"status": "delivered"})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "pending → delivered es un salto")

	resp = doJSON(t, app, http.MethodPut, "/api/deliveries/d1/status", token,
		map[string]string{"status": "picked"})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/deliveries/d1/status", token,
		map[string]string{"status": "shipped"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "estado desconocido es 400")
}

// Traslado con origen igual a destino se rechaza en la frontera HTTP.
func TestRouter_TrasladoMismaBodega(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/transfers", token, map[string]any{
		"product": "Widget", "from_warehouse": "Main Warehouse",
		"to_warehouse": "Main Warehouse", "quantity": 5,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// El dashboard del seed: 6 productos y los pendientes sembrados.
func TestRouter_DashboardStatsDelSeed(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalProducts      int `json:"total_products"`
		PendingReceipts    int `json:"pending_receipts"`
		PendingDeliveries  int `json:"pending_deliveries"`
		ScheduledTransfers int `json:"scheduled_transfers"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 6, stats.TotalProducts)
	assert.Equal(t, 1, stats.PendingReceipts)
	assert.Equal(t, 1, stats.PendingDeliveries)
	assert.Equal(t, 1, stats.ScheduledTransfers)
}

// Un ajuste sobre un producto inexistente responde 404.
func TestRouter_AjusteProductoInexistente(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/adjustments", token, map[string]any{
		"product_id": "no-existe", "counted_quantity": 10, "difference": -2,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
