package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/grinvo/internal/domain/calendar"
	"github.com/jhoicas/grinvo/internal/domain/entity"
)

// FeeScheduleRequest tarifa de un proveedor de pago.
type FeeScheduleRequest struct {
	ProviderName string  `json:"provider_name" validate:"required,max=64"`
	FeePercent   float64 `json:"fee_percent" validate:"gte=0,lte=100"`
	FixedFeeBrl  float64 `json:"fixed_fee_brl,omitempty" validate:"gte=0"`
	Enabled      *bool   `json:"enabled,omitempty"` // nil = habilitada
}

// CalculateInvoiceRequest body para POST /api/invoices/calculate y /api/invoices/pdf.
// Los campos nil toman los valores por defecto de la configuración (INVOICE_*).
type CalculateInvoiceRequest struct {
	Month               string               `json:"month" validate:"required,yearmonth" example:"2024-01"`
	HourlyRateUSD       *float64             `json:"hourly_rate_usd,omitempty" validate:"omitempty,gte=0"`
	Fees                []FeeScheduleRequest `json:"fees,omitempty" validate:"omitempty,dive"`
	FXRateOverride      *float64             `json:"fx_rate_override,omitempty" validate:"omitempty,gt=0"`
	FXLabelOverride     string               `json:"fx_label_override,omitempty" validate:"max=64"`
	IncludeChristmasEve *bool                `json:"include_christmas_eve,omitempty"`
	Mode                string               `json:"mode,omitempty" validate:"omitempty,oneof=conversion withdraw both"`
}

// Validate aplica las reglas de go-playground/validator.
func (r *CalculateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return validationMessage(err)
	}
	return nil
}

// YearMonth separa "YYYY-MM". El rango del mes lo valida el cálculo.
func (r *CalculateInvoiceRequest) YearMonth() (int, time.Month, error) {
	return ParseYearMonth(r.Month)
}

// ParseYearMonth interpreta "YYYY-MM" sin validar el rango del mes.
func ParseYearMonth(s string) (int, time.Month, error) {
	if !yearMonthRe.MatchString(s) {
		return 0, 0, fmt.Errorf("mes %q: formato esperado YYYY-MM", s)
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[5:])
	return year, time.Month(month), nil
}

// ApplyTo sobrescribe en base los campos presentes en la petición.
func (r *CalculateInvoiceRequest) ApplyTo(base *entity.InvoiceRequest) {
	if r.HourlyRateUSD != nil {
		base.HourlyRateUSD = *r.HourlyRateUSD
	}
	if r.Fees != nil {
		fees := make([]entity.FeeSchedule, 0, len(r.Fees))
		for _, f := range r.Fees {
			fees = append(fees, entity.FeeSchedule{
				ProviderName: f.ProviderName,
				FeePercent:   f.FeePercent,
				FixedFeeBrl:  f.FixedFeeBrl,
				Enabled:      f.Enabled == nil || *f.Enabled,
			})
		}
		base.FeeSchedules = fees
	}
	if r.FXRateOverride != nil {
		v := *r.FXRateOverride
		base.FXRateOverride = &v
	}
	if r.FXLabelOverride != "" {
		base.FXLabelOverride = r.FXLabelOverride
	}
	if r.IncludeChristmasEve != nil {
		base.IncludeChristmasEve = *r.IncludeChristmasEve
	}
	if r.Mode != "" {
		base.Mode = entity.Mode(r.Mode)
	}
}

// FXRateResponse cotización en respuestas.
type FXRateResponse struct {
	Rate   decimal.Decimal `json:"rate" swaggertype:"string" example:"5.0000"`
	Source string          `json:"source"`
	AsOf   string          `json:"as_of"`
}

// PayoutResponse desglose de un proveedor (precisión completa).
type PayoutResponse struct {
	ProviderName string          `json:"provider_name"`
	FeePercent   decimal.Decimal `json:"fee_percent" swaggertype:"string"`
	FixedFeeBrl  decimal.Decimal `json:"fixed_fee_brl" swaggertype:"string"`
	FeesBrl      decimal.Decimal `json:"fees_brl" swaggertype:"string"`
	NetBrl       decimal.Decimal `json:"net_brl" swaggertype:"string"`
}

// InvoiceResponse resultado del cálculo. fx y conversion_gross_brl son null
// cuando no hay cotización.
type InvoiceResponse struct {
	CalculationID      string           `json:"calculation_id"`
	Year               int              `json:"year"`
	Month              int              `json:"month"`
	Mode               string           `json:"mode"`
	WorkDays           int              `json:"work_days"`
	WorkHours          int              `json:"work_hours"`
	PaidHolidayCount   int              `json:"paid_holiday_count"`
	HolidayHours       int              `json:"holiday_hours"`
	TotalHours         int              `json:"total_hours"`
	PaidHolidayDates   []string         `json:"paid_holiday_dates"`
	HourlyRateUSD      decimal.Decimal  `json:"hourly_rate_usd" swaggertype:"string"`
	GrossUSD           decimal.Decimal  `json:"gross_usd" swaggertype:"string"`
	FX                 *FXRateResponse  `json:"fx"`
	ConversionGrossBRL *decimal.Decimal `json:"conversion_gross_brl" swaggertype:"string"`
	Payouts            []PayoutResponse `json:"payouts"`
	Summary            string           `json:"summary"`
}

// NewInvoiceResponse mapea el resultado del dominio.
func NewInvoiceResponse(calculationID string, r *entity.InvoiceResult) InvoiceResponse {
	dates := make([]string, 0, len(r.PaidHolidayDates))
	for _, t := range r.PaidHolidayDates {
		dates = append(dates, calendar.DateOf(t).String())
	}
	payouts := make([]PayoutResponse, 0, len(r.Payouts))
	for _, p := range r.Payouts {
		payouts = append(payouts, PayoutResponse{
			ProviderName: p.ProviderName,
			FeePercent:   decimal.NewFromFloat(p.FeePercent),
			FixedFeeBrl:  decimal.NewFromFloat(p.FixedFeeBrl),
			FeesBrl:      decimal.NewFromFloat(p.FeesBrl),
			NetBrl:       decimal.NewFromFloat(p.NetBrl),
		})
	}

	out := InvoiceResponse{
		CalculationID:    calculationID,
		Year:             r.Year,
		Month:            int(r.Month),
		Mode:             string(r.Mode),
		WorkDays:         r.WorkDays,
		WorkHours:        r.WorkHours,
		PaidHolidayCount: r.PaidHolidayCount,
		HolidayHours:     r.HolidayHours,
		TotalHours:       r.TotalHours,
		PaidHolidayDates: dates,
		HourlyRateUSD:    decimal.NewFromFloat(r.HourlyRateUSD),
		GrossUSD:         decimal.NewFromFloat(r.GrossUSD),
		Payouts:          payouts,
		Summary:          r.SummaryText,
	}
	if r.FX != nil {
		fx := NewFXRateResponse(r.FX)
		out.FX = &fx
		conv := decimal.NewFromFloat(r.ConversionGrossBRL)
		out.ConversionGrossBRL = &conv
	}
	return out
}

// NewFXRateResponse mapea una cotización.
func NewFXRateResponse(fx *entity.FXRate) FXRateResponse {
	return FXRateResponse{Rate: decimal.NewFromFloat(fx.Rate), Source: fx.Source, AsOf: fx.AsOf}
}
