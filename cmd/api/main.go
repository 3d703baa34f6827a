package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stockmaster-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
	"github.com/jhoicas/stockmaster-api/pkg/simulate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Store en memoria con los datos de demostración. El estado es volátil:
	// reiniciar el proceso lo restaura al seed.
	store := memory.NewStore()
	if err := memory.SeedDemo(store, cfg.Mock.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de demo")
	}
	lat := simulate.Latency(cfg.Mock.Latency())
	log.Info().
		Dur("latency", cfg.Mock.Latency()).
		Msg("store en memoria sembrado")

	productRepo := memory.NewProductRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)
	receiptRepo := memory.NewReceiptRepository(store)
	deliveryRepo := memory.NewDeliveryRepository(store)
	transferRepo := memory.NewTransferRepository(store)
	activityRepo := memory.NewActivityRepository(store)
	notificationRepo := memory.NewNotificationRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	userRepo := memory.NewUserRepository(store)
	txRunner := memory.NewTxRunner(store)

	productUC := usecase.NewProductUseCase(productRepo, activityRepo, lat)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, activityRepo, lat)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, lat)
	receiptUC := inventory.NewReceiptUseCase(receiptRepo, txRunner, lat)
	deliveryUC := inventory.NewDeliveryUseCase(deliveryRepo, txRunner, lat)
	transferUC := inventory.NewTransferUseCase(transferRepo, txRunner, lat)
	adjustmentUC := inventory.NewAdjustmentUseCase(productRepo, txRunner, lat)
	historyUC := inventory.NewHistoryUseCase(activityRepo, movementRepo, lat)
	dashboardUC := appanalytics.NewDashboardUseCase(
		productRepo, warehouseRepo, receiptRepo, deliveryRepo, transferRepo, lat,
	)

	// PDF: reporte de reposición predictiva
	pdfGenerator := infrapdf.NewRestockReportGenerator()
	restockUC := appanalytics.NewRestockUseCase(productRepo, movementRepo, pdfGenerator, lat)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, lat)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockMaster API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		WarehouseUC:    warehouseUC,
		NotificationUC: notificationUC,
		ReceiptUC:      receiptUC,
		DeliveryUC:     deliveryUC,
		TransferUC:     transferUC,
		AdjustmentUC:   adjustmentUC,
		HistoryUC:      historyUC,
		DashboardUC:    dashboardUC,
		RestockUC:      restockUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
