package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/grinvo/internal/application/dto"
	"github.com/jhoicas/grinvo/internal/application/invoice"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/pkg/config"
)

func watchCommand(e env) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "recalcula al editar campos: lee líneas campo=valor de stdin",
		Description: "Campos: month=YYYY-MM, rate=<usd>, fx=<brl> (vacío = consultar), label=<texto>,\n" +
			"fees=Nombre:pct[:fijo],... , xmas=true|false, mode=conversion|withdraw|both.\n" +
			"Las ediciones seguidas se agrupan; solo se imprime el último cálculo.",
		Flags: append(requestFlags(),
			&cli.DurationFlag{Name: "debounce", Usage: "silencio antes de recalcular (por defecto INVOICE_DEBOUNCE_MS)"},
		),
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

			delay := rt.cfg.Invoice.Debounce
			if c.IsSet("debounce") {
				delay = c.Duration("debounce")
			}

			var (
				mu            sync.Mutex
				lastCommitted uint64
				notify        = make(chan struct{}, 1)
			)
			r := invoice.NewRecalculator(delay, uc.Calculate, func(id uint64, res *entity.InvoiceResult) {
				mu.Lock()
				fmt.Fprintf(rt.out, "#%d\n%s\n", id, res.SummaryText)
				lastCommitted = id
				mu.Unlock()
				select {
				case notify <- struct{}{}:
				default:
				}
			}, rt.log)
			defer r.Close()

			scanner := bufio.NewScanner(rt.in)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if err := applyEdit(&req, line); err != nil {
					fmt.Fprintf(rt.errOut, "edición ignorada %q: %v\n", line, err)
					continue
				}
				r.Schedule(req)
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			// fin de la entrada: calcular ya el estado final y esperar su entrega
			last := r.Immediate(req)
			for {
				mu.Lock()
				done := lastCommitted >= last
				mu.Unlock()
				if done {
					return nil
				}
				<-notify
			}
		},
	}
}

// applyEdit aplica una línea campo=valor sobre la solicitud.
func applyEdit(req *entity.InvoiceRequest, line string) error {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Errorf("formato esperado campo=valor")
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case "month":
		y, m, err := dto.ParseYearMonth(value)
		if err != nil {
			return err
		}
		req.Year, req.Month = y, m
	case "rate":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		req.HourlyRateUSD = v
	case "fx":
		if value == "" {
			req.FXRateOverride = nil
			return nil
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		req.FXRateOverride = &v
	case "label":
		req.FXLabelOverride = value
	case "fees":
		fees, err := config.ParseFees(value)
		if err != nil {
			return err
		}
		req.FeeSchedules = invoice.FeeSchedules(fees)
	case "xmas":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		req.IncludeChristmasEve = v
	case "mode":
		m, err := entity.ParseMode(value)
		if err != nil {
			return err
		}
		req.Mode = m
	default:
		return fmt.Errorf("campo desconocido %q", key)
	}
	return nil
}
