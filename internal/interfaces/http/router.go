package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/bom"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/jobs"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/shortage"
	"github.com/DiksySingh/InventorySystem2-sub002/internal/application/transfer"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Classifier *bom.Classifier
	ShortageUC *shortage.UseCase
	TransferUC *transfer.UseCase
	JobQueryUC *jobs.QueryUseCase
	JWTSecret  string
}

// Router registers the API routes. Everything under /api requires a Bearer
// token issued by the surrounding service.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	bomHandler := NewBOMHandler(deps.Classifier)
	api.Get("/systems/:id/bom", bomHandler.Classify)

	shortageHandler := NewShortageHandler(deps.ShortageUC)
	api.Get("/reports/shortage", shortageHandler.Report)
	api.Get("/warehouses", shortageHandler.Warehouses)
	api.Get("/warehouses/:id/stock", shortageHandler.StockRows)

	jobHandler := NewJobHandler(deps.TransferUC, deps.JobQueryUC)
	api.Get("/jobs/:id", jobHandler.Detail)
	api.Post("/jobs/:id/accept", jobHandler.Accept)
	api.Post("/jobs/:id/complete", jobHandler.Complete)
}
