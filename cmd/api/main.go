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

	"github.com/jhoicas/simulador-creditos/internal/application/simulation"
	"github.com/jhoicas/simulador-creditos/internal/infrastructure/parametria"
	infrapdf "github.com/jhoicas/simulador-creditos/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/simulador-creditos/internal/interfaces/http"
	"github.com/jhoicas/simulador-creditos/pkg/config"
	"github.com/jhoicas/simulador-creditos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// La parametría se carga una sola vez; es de solo lectura durante la vida del proceso.
	params, err := parametria.LoadFile(cfg.Parametria.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Parametria.Path).Msg("cargar parametría")
	}
	log.Info().
		Str("version", params.Version).
		Int("modalidades", len(params.ModalityConstraints)).
		Int("productos_fng", len(params.GuaranteeProducts)).
		Int("departamentos", len(params.Locations)).
		Time("vigencia_cedulas", params.SpecialFund.ValidUntil).
		Msg("parametría cargada")

	// PDF: tabla de amortización descargable
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.PDF.Author)
	simulationUC := simulation.NewSimulationUseCase(params, pdfGenerator, log)
	catalogUC := simulation.NewCatalogUseCase(params)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerPath,
			Path:     "docs",
			Title:    "Simulador de Créditos API",
		}))
	} else {
		log.Warn().Str("path", cfg.Docs.SwaggerPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "parametria": params.Version})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SimulationUC: simulationUC,
		CatalogUC:    catalogUC,
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
