// Package invoice orquesta el cálculo mensual de la factura: horas trabajadas y
// feriados pagados, conversión USD→BRL y desglose por proveedor de pago.
package invoice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/grinvo/internal/application/ports"
	"github.com/jhoicas/grinvo/internal/domain"
	"github.com/jhoicas/grinvo/internal/domain/calendar"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// DefaultFXTimeout tope por defecto para resolver la cotización.
const DefaultFXTimeout = 10 * time.Second

// overrideAsOfLayout formato de la fecha mostrada para la cotización manual.
const overrideAsOfLayout = "02/01/2006 15:04"

// CalculateUseCase calcula facturas. Es seguro para uso concurrente: cada llamada
// trabaja sobre su propia solicitud y construye su propio resultado.
type CalculateUseCase struct {
	rates     ports.RateProvider
	fxTimeout time.Duration
	now       func() time.Time
	log       *logger.Logger
}

// Option configura el caso de uso.
type Option func(*CalculateUseCase)

// WithClock reemplaza el reloj (fecha de la cotización y de la cotización manual).
func WithClock(now func() time.Time) Option {
	return func(uc *CalculateUseCase) { uc.now = now }
}

// WithFXTimeout fija el tope de la consulta de cotización.
func WithFXTimeout(d time.Duration) Option {
	return func(uc *CalculateUseCase) {
		if d > 0 {
			uc.fxTimeout = d
		}
	}
}

// NewCalculateUseCase construye el caso de uso. rates puede ser nil (modo sin red):
// sin cotización manual el resultado queda sin campos BRL.
func NewCalculateUseCase(rates ports.RateProvider, log *logger.Logger, opts ...Option) *CalculateUseCase {
	uc := &CalculateUseCase{
		rates:     rates,
		fxTimeout: DefaultFXTimeout,
		now:       time.Now,
		log:       log.Named("invoice"),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Calculate nunca falla: una cotización no disponible degrada el resultado
// (sin campos BRL) y solo una entrada inválida produce un resultado con Err.
func (uc *CalculateUseCase) Calculate(ctx context.Context, req entity.InvoiceRequest) *entity.InvoiceResult {
	mode, err := validate(req)
	if err != nil {
		uc.log.Warn().Err(err).Int("year", req.Year).Int("month", int(req.Month)).Msg("solicitud de factura inválida")
		return errorResult(req, err)
	}

	// ── 1. Horas (CPU pura, antes de cualquier I/O) ──────────────────────────
	holidays := calendar.HolidaysAround(req.Year, req.IncludeChristmasEve)
	part := calendar.PartitionDays(
		calendar.StartOfMonth(req.Year, req.Month),
		calendar.EndOfMonth(req.Year, req.Month),
		holidays,
	)

	paidDates := make([]time.Time, 0, len(part.PaidHolidays))
	for _, d := range part.PaidHolidays {
		paidDates = append(paidDates, d.Time())
	}

	result := &entity.InvoiceResult{
		Year:             req.Year,
		Month:            req.Month,
		Mode:             mode,
		WorkDays:         len(part.WorkDays),
		WorkHours:        part.WorkHours(),
		PaidHolidayCount: len(part.PaidHolidays),
		HolidayHours:     part.HolidayHours(),
		TotalHours:       part.TotalHours(),
		PaidHolidayDates: paidDates,
		HourlyRateUSD:    req.HourlyRateUSD,
		GrossUSD:         float64(part.TotalHours()) * req.HourlyRateUSD,
		Payouts:          []entity.PayoutBreakdown{},
	}

	// ── 2. Cotización ────────────────────────────────────────────────────────
	result.FX = uc.resolveRate(ctx, req)

	// ── 3. Conversión y tarifas ──────────────────────────────────────────────
	if result.FX != nil {
		result.ConversionGrossBRL = result.GrossUSD * result.FX.Rate
		if mode.IncludesPayouts() {
			result.Payouts = ComputePayouts(result.ConversionGrossBRL, req.EnabledFees())
		}
	}

	result.SummaryText = RenderSummary(result)
	return result
}

// resolveRate aplica la cotización manual o consulta al proveedor con timeout.
// Devuelve nil si no hay cotización disponible.
func (uc *CalculateUseCase) resolveRate(ctx context.Context, req entity.InvoiceRequest) *entity.FXRate {
	now := uc.now()
	if req.FXRateOverride != nil {
		label := req.FXLabelOverride
		if label == "" {
			label = entity.DefaultOverrideLabel
		}
		return &entity.FXRate{Rate: *req.FXRateOverride, Source: label, AsOf: now.Format(overrideAsOfLayout)}
	}
	if uc.rates == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.fxTimeout)
	defer cancel()

	fxRate, err := uc.rates.FetchRate(ctx, now)
	if err != nil {
		uc.log.Warn().Err(err).Msg("cotización no disponible, se omiten los montos en BRL")
		return nil
	}
	if fxRate == nil || !(fxRate.Rate > 0) || math.IsInf(fxRate.Rate, 0) {
		uc.log.Warn().Msg("proveedor devolvió una cotización no positiva, se descarta")
		return nil
	}
	return fxRate
}

// validate rechaza mes inválido y montos negativos o no finitos.
func validate(req entity.InvoiceRequest) (entity.Mode, error) {
	if req.Month < time.January || req.Month > time.December || req.Year < 1 || req.Year > 9999 {
		return "", fmt.Errorf("%w: %04d-%02d", domain.ErrInvalidMonth, req.Year, int(req.Month))
	}
	mode, err := entity.ParseMode(string(req.Mode))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !nonNegative(req.HourlyRateUSD) {
		return "", fmt.Errorf("%w: tarifa horaria %v", domain.ErrInvalidInput, req.HourlyRateUSD)
	}
	if req.FXRateOverride != nil {
		r := *req.FXRateOverride
		if !(r > 0) || math.IsInf(r, 0) {
			return "", fmt.Errorf("%w: cotización manual %v", domain.ErrInvalidInput, r)
		}
	}
	for _, f := range req.FeeSchedules {
		if !f.Enabled {
			continue
		}
		if !nonNegative(f.FeePercent) {
			return "", fmt.Errorf("%w: porcentaje de %s %v", domain.ErrInvalidInput, f.ProviderName, f.FeePercent)
		}
		if !nonNegative(f.FixedFeeBrl) {
			return "", fmt.Errorf("%w: tarifa fija de %s %v", domain.ErrInvalidInput, f.ProviderName, f.FixedFeeBrl)
		}
	}
	return mode, nil
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// errorResult resultado sin datos parciales para una entrada inválida.
func errorResult(req entity.InvoiceRequest, err error) *entity.InvoiceResult {
	return &entity.InvoiceResult{
		Year:             req.Year,
		Month:            req.Month,
		Mode:             req.Mode,
		PaidHolidayDates: []time.Time{},
		Payouts:          []entity.PayoutBreakdown{},
		SummaryText:      renderError(req, err),
		Err:              err,
	}
}
