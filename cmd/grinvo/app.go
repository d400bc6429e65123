package main

import (
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/grinvo/internal/application/ports"
	infrafx "github.com/jhoicas/grinvo/internal/infrastructure/fx"
	"github.com/jhoicas/grinvo/pkg/config"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// env dependencias externas del CLI (reemplazables en tests).
type env struct {
	out        io.Writer
	errOut     io.Writer
	in         io.Reader
	now        func() time.Time
	loadConfig func() (*config.Config, error)
}

// runtime configuración y logger resueltos para un comando.
type runtime struct {
	env
	cfg *config.Config
	log *logger.Logger
}

func newApp(e env) *cli.App {
	return &cli.App{
		Name:      "grinvo",
		Usage:     "factura mensual freelance: horas, feriados de EE. UU., USD→BRL y tarifas de retiro",
		Writer:    e.out,
		ErrWriter: e.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "nivel de log (trace, debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			calculateCommand(e),
			holidaysCommand(e),
			monthsCommand(e),
			fxCommand(e),
			watchCommand(e),
		},
	}
}

// setup carga la configuración y arma el logger hacia stderr.
func setup(c *cli.Context, e env) (*runtime, error) {
	cfg, err := e.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: c.String("log-level"),
		Out:   e.errOut,
	})
	return &runtime{env: e, cfg: cfg, log: log}, nil
}

// rateProvider devuelve la cadena PTAX → AwesomeAPI, o nil sin red.
func (rt *runtime) rateProvider(offline bool) ports.RateProvider {
	if offline {
		return nil
	}
	return infrafx.NewFromConfig(rt.cfg.FX, rt.log)
}
