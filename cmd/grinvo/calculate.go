package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/grinvo/internal/application/dto"
	"github.com/jhoicas/grinvo/internal/application/invoice"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	infrapdf "github.com/jhoicas/grinvo/internal/infrastructure/pdf"
	"github.com/jhoicas/grinvo/pkg/config"
)

func requestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "month", Aliases: []string{"m"}, Usage: "mes a facturar YYYY-MM (por defecto el actual)"},
		&cli.Float64Flag{Name: "rate", Aliases: []string{"r"}, Usage: "tarifa horaria en USD (por defecto INVOICE_HOURLY_RATE)"},
		&cli.StringSliceFlag{Name: "fee", Usage: "tarifa de proveedor Nombre:pct[:fijoBRL], repetible (reemplaza INVOICE_FEES)"},
		&cli.BoolFlag{Name: "no-fees", Usage: "no aplicar tarifas de proveedores"},
		&cli.Float64Flag{Name: "fx-rate", Usage: "cotización manual BRL/USD (no consulta la red)"},
		&cli.StringFlag{Name: "fx-label", Usage: "etiqueta de la cotización manual"},
		&cli.BoolFlag{Name: "no-xmas-eve", Usage: "no pagar Nochebuena"},
		&cli.StringFlag{Name: "mode", Value: string(entity.ModeBoth), Usage: "conversion, withdraw o both"},
		&cli.BoolFlag{Name: "offline", Usage: "no consultar proveedores de cotización"},
	}
}

func calculateCommand(e env) *cli.Command {
	flags := append(requestFlags(),
		&cli.StringFlag{Name: "pdf", Usage: "escribe además el PDF en esta ruta"},
		&cli.BoolFlag{Name: "json", Usage: "imprime el resultado en JSON"},
	)
	return &cli.Command{
		Name:  "calculate",
		Usage: "calcula la factura de un mes",
		Flags: flags,
		Action: func(c *cli.Context) error {
			rt, err := setup(c, e)
			if err != nil {
				return err
			}
			req, err := requestFromFlags(c, rt.cfg.Invoice, rt)
			if err != nil {
				return err
			}

			uc := invoice.NewCalculateUseCase(rt.rateProvider(c.Bool("offline")), rt.log,
				invoice.WithClock(rt.now), invoice.WithFXTimeout(rt.cfg.FX.Timeout))
			result := uc.Calculate(c.Context, req)
			if result.Failed() {
				return fmt.Errorf("%s", result.SummaryText)
			}

			id := uuid.NewString()
			if c.Bool("json") {
				enc := json.NewEncoder(rt.out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(dto.NewInvoiceResponse(id, result)); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(rt.out, result.SummaryText)
			}

			if path := c.String("pdf"); path != "" {
				if err := writePDF(c.Context, path, result, id); err != nil {
					return err
				}
				rt.log.Info().Str("path", path).Msg("PDF generado")
			}
			return nil
		},
	}
}

func writePDF(ctx context.Context, path string, result *entity.InvoiceResult, id string) error {
	b, err := infrapdf.NewMarotoPDFGenerator().GenerateInvoicePDF(ctx, result, id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("escribir PDF: %w", err)
	}
	return nil
}

// requestFromFlags parte de los valores INVOICE_* y aplica los flags presentes.
func requestFromFlags(c *cli.Context, defaults config.InvoiceConfig, rt *runtime) (entity.InvoiceRequest, error) {
	now := rt.now()
	year, month := now.Year(), now.Month()
	if s := c.String("month"); s != "" {
		y, m, err := dto.ParseYearMonth(s)
		if err != nil {
			return entity.InvoiceRequest{}, err
		}
		year, month = y, m
	}

	req := invoice.DefaultRequest(defaults, year, month)
	if c.IsSet("rate") {
		req.HourlyRateUSD = c.Float64("rate")
	}
	switch {
	case c.Bool("no-fees"):
		req.FeeSchedules = nil
	case len(c.StringSlice("fee")) > 0:
		fees, err := config.ParseFees(strings.Join(c.StringSlice("fee"), ","))
		if err != nil {
			return entity.InvoiceRequest{}, err
		}
		req.FeeSchedules = invoice.FeeSchedules(fees)
	}
	if c.IsSet("fx-rate") {
		v := c.Float64("fx-rate")
		req.FXRateOverride = &v
	}
	req.FXLabelOverride = c.String("fx-label")
	if c.Bool("no-xmas-eve") {
		req.IncludeChristmasEve = false
	}
	mode, err := entity.ParseMode(c.String("mode"))
	if err != nil {
		return entity.InvoiceRequest{}, err
	}
	req.Mode = mode
	return req, nil
}
