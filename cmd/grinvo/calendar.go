package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/grinvo/internal/application/invoice"
	"github.com/jhoicas/grinvo/internal/domain/calendar"
)

func holidaysCommand(e env) *cli.Command {
	return &cli.Command{
		Name:  "holidays",
		Usage: "lista los feriados federales observados de un año",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Aliases: []string{"y"}, Usage: "año (por defecto el actual)"},
			&cli.BoolFlag{Name: "no-xmas-eve", Usage: "excluir Nochebuena"},
		},
		Action: func(c *cli.Context) error {
			rt, err := setup(c, e)
			if err != nil {
				return err
			}
			year := c.Int("year")
			if year == 0 {
				year = rt.now().Year()
			}
			incl := rt.cfg.Invoice.IncludeChristmasEve && !c.Bool("no-xmas-eve")

			for _, h := range calendar.ObservedHolidays(year, incl) {
				fmt.Fprintf(rt.out, "%s  %-9s  %s\n", h.Date, h.Date.Weekday(), h.Name)
			}
			return nil
		},
	}
}

func monthsCommand(e env) *cli.Command {
	return &cli.Command{
		Name:  "months",
		Usage: "lista los meses seleccionables (año anterior, actual y siguiente)",
		Action: func(c *cli.Context) error {
			for _, o := range invoice.MonthOptions(e.now()) {
				fmt.Fprintf(e.out, "%04d-%02d  %s\n", o.Year, int(o.Month), o.Label)
			}
			return nil
		},
	}
}
