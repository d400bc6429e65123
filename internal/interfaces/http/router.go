package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/grinvo/internal/application/invoice"
	"github.com/jhoicas/grinvo/internal/application/ports"
	"github.com/jhoicas/grinvo/pkg/config"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Calculate *invoice.CalculateUseCase
	PDF       ports.InvoicePDFGenerator
	Rates     ports.RateProvider
	Invoice   config.InvoiceConfig
	FXTimeout time.Duration
	Now       func() time.Time // nil = time.Now
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	api := app.Group("/api", CalculationID())

	// Facturas
	invoiceHandler := NewInvoiceHandler(deps.Calculate, deps.PDF, deps.Invoice, deps.Now, log)
	invoices := api.Group("/invoices")
	invoices.Post("/calculate", invoiceHandler.Calculate)
	invoices.Post("/pdf", invoiceHandler.PDF)
	api.Get("/months", invoiceHandler.Months)

	// Calendario
	calendarHandler := NewCalendarHandler(deps.Invoice.IncludeChristmasEve)
	api.Get("/holidays", calendarHandler.Holidays)

	// Cotización
	fxHandler := NewFXHandler(deps.Rates, deps.FXTimeout, deps.Now, log)
	api.Get("/fx/rate", fxHandler.Rate)
}
