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

	appbom "github.com/DiksySingh/InventorySystem2-sub002/internal/application/bom"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/jobs"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/shortage"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/transfer"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/infrastructure/farmer"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/infrastructure/postgres"
	httpRouter "github.com/DiksySingh/InventorySystem2-sub002/internal/interfaces/http"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/config"
	"github.com/DiksySingh/InventorySystem2-sub002/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Strs("head_classes", cfg.BOM.PumpHeadClasses).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	catalogRepo := postgres.NewCatalogRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	demandRepo := postgres.NewDemandRepository(pool)
	installerRepo := postgres.NewInstallerRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	classifier := appbom.NewClassifier(catalogRepo, cfg.BOM, log)
	shortageUC := shortage.NewUseCase(classifier, catalogRepo, warehouseRepo, stockRepo, demandRepo, cfg.BOM)
	transferUC := transfer.NewUseCase(txRunner, installerRepo, log)

	// Farmer enrichment is optional; without a base URL job details simply
	// omit the farmer block.
	var farmerClient jobs.FarmerDetailClient
	if cfg.Farmer.BaseURL != "" {
		farmerClient = farmer.NewClient(cfg.Farmer)
	}
	jobQueryUC := jobs.NewQueryUseCase(jobRepo, farmerClient, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Solar Install Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Classifier: classifier,
		ShortageUC: shortageUC,
		TransferUC: transferUC,
		JobQueryUC: jobQueryUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
