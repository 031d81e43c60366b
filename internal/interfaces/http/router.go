package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Xangel0s/CalidaLanding/internal/application/usecase"
	"github.com/Xangel0s/CalidaLanding/internal/domain/repository"
	"github.com/Xangel0s/CalidaLanding/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	Reloader  repository.CatalogReloader
	Log       *logger.Logger
}

// Router registra las rutas de la API del catálogo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Log)
	api.Get("/products", catalogHandler.List)
	api.Get("/products/:slug", catalogHandler.Detail)
	api.Get("/search", catalogHandler.Search)
	api.Get("/categories", catalogHandler.Categories)
	api.Get("/brands", catalogHandler.Brands)
	api.Get("/stats", catalogHandler.Stats)

	adminHandler := NewAdminHandler(deps.Reloader, deps.Log)
	api.Post("/admin/reload", adminHandler.Reload)
	app.Get("/admin/test", adminHandler.TestConsole)
}
