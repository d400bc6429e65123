package fx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/grinvo/internal/application/ports"
	"github.com/jhoicas/grinvo/internal/domain"
	"github.com/jhoicas/grinvo/internal/domain/calendar"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/pkg/config"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// Verificar en tiempo de compilación que Provider implementa RateProvider.
var _ ports.RateProvider = (*Provider)(nil)

// Source fuente individual de cotización.
type Source interface {
	Name() string
	FetchRate(ctx context.Context, asOf time.Time) (*entity.FXRate, error)
}

// DefaultFetchTimeout tope de una consulta compartida cuando no se configura otro.
const DefaultFetchTimeout = 10 * time.Second

// Provider cadena de respaldo: prueba las fuentes en orden y devuelve la primera
// cotización. Si todas fallan devuelve domain.ErrRateUnavailable con las causas.
// Peticiones concurrentes para el mismo día comparten una sola consulta, que no
// depende de la cancelación de ningún llamador y está acotada por timeout.
type Provider struct {
	sources []Source
	group   singleflight.Group
	timeout time.Duration
	log     *logger.Logger
}

// NewProvider construye la cadena con las fuentes en orden de preferencia.
func NewProvider(log *logger.Logger, sources ...Source) *Provider {
	return &Provider{sources: sources, timeout: DefaultFetchTimeout, log: log.Named("fx")}
}

// WithTimeout fija el tope de la consulta compartida. d <= 0 no cambia nada.
func (p *Provider) WithTimeout(d time.Duration) *Provider {
	if d > 0 {
		p.timeout = d
	}
	return p
}

// NewFromConfig arma la cadena PTAX → AwesomeAPI.
func NewFromConfig(cfg config.FXConfig, log *logger.Logger) *Provider {
	ptax := NewPTAXClient(PTAXConfig{
		BaseURL:      cfg.PTAXBaseURL,
		LookbackDays: cfg.LookbackDays,
		RateLimitRPS: cfg.RateLimitRPS,
	}, log)
	awesome := NewAwesomeClient(AwesomeConfig{
		BaseURL:  cfg.AwesomeBaseURL,
		Retries:  cfg.FallbackRetries,
		Location: cfg.Location(),
	}, log)
	return NewProvider(log, ptax, awesome).WithTimeout(cfg.Timeout)
}

// FetchRate implementa ports.RateProvider. Si ctx termina antes que la consulta
// compartida, este llamador abandona la espera y la consulta sigue para los demás.
func (p *Provider) FetchRate(ctx context.Context, asOf time.Time) (*entity.FXRate, error) {
	key := calendar.DateOf(asOf).String()
	ch := p.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()
		return p.fetch(fetchCtx, asOf)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", domain.ErrRateUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		fxRate := *res.Val.(*entity.FXRate)
		p.log.Debug().Str("source", fxRate.Source).Bool("shared", res.Shared).Msg("cotización obtenida")
		return &fxRate, nil
	}
}

func (p *Provider) fetch(ctx context.Context, asOf time.Time) (*entity.FXRate, error) {
	causes := make([]error, 0, len(p.sources))
	for _, s := range p.sources {
		fxRate, err := s.FetchRate(ctx, asOf)
		if err == nil && fxRate == nil {
			err = fmt.Errorf("sin cotización: %w", domain.ErrMalformedProviderResponse)
		}
		if err == nil {
			return fxRate, nil
		}
		p.log.Warn().Err(err).Str("source", s.Name()).Msg("fuente de cotización falló")
		causes = append(causes, fmt.Errorf("%s: %w", s.Name(), err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrRateUnavailable, errors.Join(causes...))
}
