// @title        Grinvo API
// @version      1.0
// @description  Factura mensual freelance: horas hábiles y feriados federales de EE. UU., conversión USD→BRL y neto por proveedor de pago.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/grinvo/docs"
	"github.com/jhoicas/grinvo/internal/application/invoice"
	infrafx "github.com/jhoicas/grinvo/internal/infrastructure/fx"
	infrapdf "github.com/jhoicas/grinvo/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/grinvo/internal/interfaces/http"
	"github.com/jhoicas/grinvo/pkg/config"
	"github.com/jhoicas/grinvo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Cotización: PTAX → AwesomeAPI
	rates := infrafx.NewFromConfig(cfg.FX, log)
	calculateUC := invoice.NewCalculateUseCase(rates, log, invoice.WithFXTimeout(cfg.FX.Timeout))
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.FX.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, " + httpRouter.HeaderCalculationID,
		ExposeHeaders: httpRouter.HeaderCalculationID + ", Content-Disposition",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Grinvo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Calculate: calculateUC,
		PDF:       pdfGenerator,
		Rates:     rates,
		Invoice:   cfg.Invoice,
		FXTimeout: cfg.FX.Timeout,
		Log:       log,
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
