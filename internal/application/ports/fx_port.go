package ports

//go:generate mockgen -source=fx_port.go -destination=../../mocks/ports/mock_fx_port.go -package=mockports

import (
	"context"
	"time"

	"github.com/jhoicas/grinvo/internal/domain/entity"
)

// RateProvider define el puerto de salida para obtener la cotización USD→BRL.
// Cualquier adaptador (PTAX, AwesomeAPI, cadena de respaldo, mock) implementa esta interfaz.
// El contexto debe llevar un timeout: es la única llamada de red del cálculo.
type RateProvider interface {
	// FetchRate devuelve la última cotización disponible a la fecha asOf.
	// Devuelve un error que envuelve domain.ErrRateUnavailable si no hay fuente disponible.
	FetchRate(ctx context.Context, asOf time.Time) (*entity.FXRate, error)
}
