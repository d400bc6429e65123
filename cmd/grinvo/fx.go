package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/grinvo/internal/application/invoice"
)

var errRateUnavailable = errors.New("FX Rate: unavailable (offline or API error)")

func fxCommand(e env) *cli.Command {
	return &cli.Command{
		Name:  "fx",
		Usage: "consulta la cotización USD→BRL (PTAX, respaldo AwesomeAPI)",
		Flags: []cli.Flag{
			&cli.TimestampFlag{Name: "date", Layout: "2006-01-02", Usage: "fecha YYYY-MM-DD (por defecto hoy)"},
		},
		Action: func(c *cli.Context) error {
			rt, err := setup(c, e)
			if err != nil {
				return err
			}
			asOf := rt.now()
			if ts := c.Timestamp("date"); ts != nil {
				asOf = *ts
			}

			ctx, cancel := context.WithTimeout(c.Context, timeoutOr(rt.cfg.FX.Timeout))
			defer cancel()

			rate, err := rt.rateProvider(false).FetchRate(ctx, asOf)
			if err != nil {
				rt.log.Debug().Err(err).Msg("cotización no disponible")
				return errRateUnavailable
			}
			fmt.Fprintf(rt.out, "%s BRL/USD (%s, as of %s)\n", invoice.Fixed(rate.Rate, 4), rate.Source, rate.AsOf)
			return nil
		},
	}
}

func timeoutOr(d time.Duration) time.Duration {
	if d <= 0 {
		return invoice.DefaultFXTimeout
	}
	return d
}
