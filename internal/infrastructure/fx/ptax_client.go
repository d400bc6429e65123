package fx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jhoicas/grinvo/internal/domain"
	"github.com/jhoicas/grinvo/internal/domain/calendar"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// PTAXSourceName etiqueta de la cotización de cierre del Banco Central do Brasil.
const PTAXSourceName = "BCB/PTAX"

const ptaxPathFmt = "/olinda/servico/PTAX/versao/v1/odata/" +
	"CotacaoDolarPeriodoFechamento(dataInicial='%s',dataFinalCotacao='%s')" +
	"?$top=1&$orderby=dataHoraCotacao%%20desc&$format=json"

var errNoQuotes = errors.New("sin cotizaciones para la fecha")

// PTAXConfig parámetros del cliente PTAX.
type PTAXConfig struct {
	BaseURL      string
	LookbackDays int     // días anteriores a probar además del pedido
	RateLimitRPS float64 // <= 0 sin límite
	HTTPClient   *http.Client
}

// PTAXClient consulta la cotización de cierre PTAX, retrocediendo día a día
// (fines de semana y feriados no publican cotización).
type PTAXClient struct {
	baseURL      string
	lookbackDays int
	httpClient   *http.Client
	limiter      *rate.Limiter
	log          *logger.Logger
}

// NewPTAXClient construye el adaptador.
func NewPTAXClient(cfg PTAXConfig, log *logger.Logger) *PTAXClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}
	return &PTAXClient{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		lookbackDays: cfg.LookbackDays,
		httpClient:   httpClient,
		limiter:      rate.NewLimiter(limit, cfg.LookbackDays+1),
		log:          log.Named("fx.ptax"),
	}
}

// Name etiqueta de la fuente.
func (c *PTAXClient) Name() string { return PTAXSourceName }

// ── Estructuras del protocolo OData PTAX ──────────────────────────────────────

type ptaxResponse struct {
	Value []ptaxQuote `json:"value"`
}

type ptaxQuote struct {
	CotacaoVenda    *float64 `json:"cotacaoVenda"`
	CotacaoCompra   *float64 `json:"cotacaoCompra"`
	DataHoraCotacao string   `json:"dataHoraCotacao"`
}

// FetchRate prueba asOf y luego hasta LookbackDays días anteriores. Un error de red
// o de parseo en un día cuenta como "sin dato" y se sigue con el día anterior.
func (c *PTAXClient) FetchRate(ctx context.Context, asOf time.Time) (*entity.FXRate, error) {
	day := calendar.DateOf(asOf)
	for i := 0; i <= c.lookbackDays; i++ {
		target := day.AddDays(-i)
		fxRate, err := c.fetchDay(ctx, target)
		if err == nil {
			return fxRate, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fx: ptax cancelado: %w", ctx.Err())
		}
		c.log.Debug().Err(err).Str("date", target.String()).Msg("PTAX sin cotización, probando día anterior")
	}
	return nil, fmt.Errorf("fx: ptax sin cotización en %d días desde %s: %w",
		c.lookbackDays+1, day, domain.ErrRateUnavailable)
}

func (c *PTAXClient) fetchDay(ctx context.Context, target calendar.Date) (*entity.FXRate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	dateStr := target.Format("01-02-2006")
	url := c.baseURL + fmt.Sprintf(ptaxPathFmt, dateStr, dateStr)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fx: crear request PTAX: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fx: llamada PTAX fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("fx: leer respuesta PTAX: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url, Body: string(body)}
	}

	var parsed ptaxResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("fx: deserializar PTAX: %v: %w", err, domain.ErrMalformedProviderResponse)
	}
	if len(parsed.Value) == 0 {
		return nil, errNoQuotes
	}

	quote := parsed.Value[0]
	// Se prefiere la cotización de venta; compra como respaldo.
	var value float64
	switch {
	case quote.CotacaoVenda != nil:
		value = *quote.CotacaoVenda
	case quote.CotacaoCompra != nil:
		value = *quote.CotacaoCompra
	default:
		return nil, fmt.Errorf("fx: PTAX sin cotacaoVenda ni cotacaoCompra: %w", domain.ErrMalformedProviderResponse)
	}
	if value <= 0 {
		return nil, fmt.Errorf("fx: PTAX cotización no positiva %v: %w", value, domain.ErrMalformedProviderResponse)
	}

	asOf := quote.DataHoraCotacao
	if asOf == "" {
		asOf = target.String()
	}
	return &entity.FXRate{Rate: value, Source: PTAXSourceName, AsOf: asOf}, nil
}
