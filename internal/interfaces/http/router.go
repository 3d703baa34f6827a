package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	NotificationUC *usecase.NotificationUseCase
	ReceiptUC      *inventory.ReceiptUseCase
	DeliveryUC     *inventory.DeliveryUseCase
	TransferUC     *inventory.TransferUseCase
	AdjustmentUC   *inventory.AdjustmentUseCase
	HistoryUC      *inventory.HistoryUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	RestockUC      *appanalytics.RestockUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/verify-otp", authHandler.VerifyOTP)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil del usuario autenticado
	protected.Get("/auth/profile", authHandler.Profile)
	protected.Put("/auth/profile", authHandler.UpdateProfile)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Put("/:id", warehouseHandler.Update)

	// Receipts (protegido)
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Get("/", receiptHandler.List)
	receipts.Post("/", receiptHandler.Create)
	receipts.Post("/:id/validate", receiptHandler.Validate)

	// Deliveries (protegido)
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Put("/:id/status", deliveryHandler.UpdateStatus)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", transferHandler.Create)
	transfers.Post("/:id/validate", transferHandler.Validate)

	// Adjustments (protegido)
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	protected.Post("/adjustments", adjustmentHandler.Apply)

	// Historial de actividades y movimientos (protegido)
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	protected.Get("/activities", historyHandler.Activities)
	protected.Get("/movements", historyHandler.Movements)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/warehouse-deliveries", dashboardHandler.GetWarehouseDeliveries)

	// Reposición predictiva (protegido)
	restock := protected.Group("/restock")
	restockHandler := NewRestockHandler(deps.RestockUC)
	restock.Get("/predictions", restockHandler.Predictions)
	restock.Get("/report", restockHandler.Report)
}
