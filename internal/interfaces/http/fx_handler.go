package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/grinvo/internal/application/dto"
	"github.com/jhoicas/grinvo/internal/application/ports"
	"github.com/jhoicas/grinvo/internal/domain"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// FXHandler consulta la cotización USD→BRL.
type FXHandler struct {
	rates   ports.RateProvider
	timeout time.Duration
	now     func() time.Time
	log     *logger.Logger
}

// NewFXHandler construye el handler. rates nil responde siempre 503.
func NewFXHandler(rates ports.RateProvider, timeout time.Duration, now func() time.Time, log *logger.Logger) *FXHandler {
	if now == nil {
		now = time.Now
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &FXHandler{rates: rates, timeout: timeout, now: now, log: log.Named("http.fx")}
}

// Rate godoc
// @Summary      Cotización USD→BRL
// @Description  PTAX del Banco Central (retrocede hasta 7 días) con AwesomeAPI como respaldo.
// @Tags         fx
// @Produce      json
// @Param        date  query  string  false  "fecha YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.FXRateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/fx/rate [get]
func (h *FXHandler) Rate(c *fiber.Ctx) error {
	q := dto.FXRateQuery{Date: c.Query("date")}
	if err := q.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	asOf, err := q.AsOf(h.now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	if h.rates == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "RATE_UNAVAILABLE", Message: "proveedor de cotización no configurado",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	fxRate, err := h.rates.FetchRate(ctx, asOf)
	if err != nil {
		h.log.Warn().Err(err).Time("as_of", asOf).Msg("cotización no disponible")
		if errors.Is(err, domain.ErrRateUnavailable) || errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "RATE_UNAVAILABLE", Message: "cotización no disponible (sin conexión o error del proveedor)",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "FX_ERROR", Message: err.Error()})
	}
	return c.JSON(dto.NewFXRateResponse(fxRate))
}
