package fx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/grinvo/internal/domain"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// AwesomeSourceName etiqueta del agregador comercial AwesomeAPI.
const AwesomeSourceName = "AwesomeAPI"

const awesomeLastPath = "/json/last/USD-BRL"

// AwesomeConfig parámetros del cliente AwesomeAPI.
type AwesomeConfig struct {
	BaseURL       string
	Retries       int           // reintentos ante 408/429/5xx o error de red; 0 = una sola petición
	RetryInterval time.Duration // intervalo inicial del backoff
	Location      *time.Location
	HTTPClient    *http.Client
}

// AwesomeClient respaldo: una petición al último precio "ask" USD-BRL.
type AwesomeClient struct {
	baseURL       string
	retries       int
	retryInterval time.Duration
	loc           *time.Location
	httpClient    *http.Client
	log           *logger.Logger
}

// NewAwesomeClient construye el adaptador.
func NewAwesomeClient(cfg AwesomeConfig, log *logger.Logger) *AwesomeClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &AwesomeClient{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		retries:       cfg.Retries,
		retryInterval: interval,
		loc:           loc,
		httpClient:    httpClient,
		log:           log.Named("fx.awesome"),
	}
}

// Name etiqueta de la fuente.
func (c *AwesomeClient) Name() string { return AwesomeSourceName }

type awesomeResponse struct {
	USDBRL *struct {
		Ask       string `json:"ask"`
		Timestamp string `json:"timestamp"`
	} `json:"USDBRL"`
}

// FetchRate consulta el último precio; asOf se ignora (el endpoint solo expone el último).
// Falla ante error de red, estado no-200 o payload no interpretable.
func (c *AwesomeClient) FetchRate(ctx context.Context, _ time.Time) (*entity.FXRate, error) {
	var result *entity.FXRate
	attempt := 0

	operation := func() error {
		attempt++
		fxRate, err := c.fetchOnce(ctx)
		if err != nil {
			var httpErr *HTTPError
			if errors.As(err, &httpErr) && !httpErr.Retryable() {
				return backoff.Permanent(err)
			}
			if errors.Is(err, domain.ErrMalformedProviderResponse) {
				return backoff.Permanent(err)
			}
			c.log.Debug().Err(err).Int("attempt", attempt).Msg("AwesomeAPI falló")
			return err
		}
		result = fxRate
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retryInterval
	expBackoff.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.retries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *AwesomeClient) fetchOnce(ctx context.Context) (*entity.FXRate, error) {
	url := c.baseURL + awesomeLastPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fx: crear request AwesomeAPI: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fx: AwesomeAPI timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("fx: llamada AwesomeAPI fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("fx: leer respuesta AwesomeAPI: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url, Body: string(body)}
	}

	var parsed awesomeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("fx: deserializar AwesomeAPI: %v: %w", err, domain.ErrMalformedProviderResponse)
	}
	if parsed.USDBRL == nil {
		return nil, fmt.Errorf("fx: AwesomeAPI sin par USDBRL: %w", domain.ErrMalformedProviderResponse)
	}

	ask, err := decimal.NewFromString(strings.TrimSpace(parsed.USDBRL.Ask))
	if err != nil || !ask.IsPositive() {
		return nil, fmt.Errorf("fx: AwesomeAPI ask inválido %q: %w", parsed.USDBRL.Ask, domain.ErrMalformedProviderResponse)
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(parsed.USDBRL.Timestamp), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("fx: AwesomeAPI timestamp inválido %q: %w", parsed.USDBRL.Timestamp, domain.ErrMalformedProviderResponse)
	}

	rate, _ := ask.Float64()
	return &entity.FXRate{
		Rate:   rate,
		Source: AwesomeSourceName,
		AsOf:   time.Unix(ts, 0).In(c.loc).Format("02/01/2006 15:04"),
	}, nil
}
