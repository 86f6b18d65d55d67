package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-creditos/internal/application/simulation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SimulationUC *simulation.SimulationUseCase
	CatalogUC    *simulation.CatalogUseCase
}

// Router registra las rutas de la API. Todas son públicas: el simulador no maneja usuarios.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Simulaciones
	simulationHandler := NewSimulationHandler(deps.SimulationUC)
	simulations := api.Group("/simulations")
	simulations.Post("/", simulationHandler.Simulate)
	simulations.Post("/pdf", simulationHandler.SimulatePDF)

	api.Post("/identifiers/validate", simulationHandler.ValidateIdentifier)

	// Catálogos de la parametría
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog := api.Group("/catalog")
	catalog.Get("/regions", catalogHandler.Regions)
	catalog.Get("/regions/:region/municipalities", catalogHandler.Municipalities)
	catalog.Get("/modalities", catalogHandler.Modalities)
	catalog.Get("/frequencies", catalogHandler.Frequencies)
	catalog.Get("/fng-products", catalogHandler.GuaranteeProducts)
}
