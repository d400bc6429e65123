package entity

import (
	"fmt"
	"strings"
	"time"
)

// Mode indica qué partes del cálculo se reportan.
// La conversión a BRL siempre se calcula cuando hay cotización; el modo solo
// decide si el desglose por proveedor de pago entra en el resultado.
type Mode string

const (
	ModeConversionOnly Mode = "conversion"
	ModeWithdrawOnly   Mode = "withdraw"
	ModeBoth           Mode = "both"
)

// IncludesPayouts indica si el modo reporta el desglose de tarifas.
func (m Mode) IncludesPayouts() bool {
	return m != ModeConversionOnly
}

// ParseMode acepta "conversion", "withdraw" o "both" (vacío = both).
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeBoth:
		return ModeBoth, nil
	case ModeConversionOnly:
		return ModeConversionOnly, nil
	case ModeWithdrawOnly:
		return ModeWithdrawOnly, nil
	}
	return "", fmt.Errorf("modo desconocido %q", s)
}

// FeeSchedule tarifa porcentual de un proveedor de pago (Nomad, Higlobe, ...).
// FixedFeeBrl es una tarifa fija opcional que se suma al porcentaje.
type FeeSchedule struct {
	ProviderName string
	FeePercent   float64 // 0–100
	FixedFeeBrl  float64
	Enabled      bool
}

// InvoiceRequest entrada inmutable del cálculo mensual.
type InvoiceRequest struct {
	Year                int
	Month               time.Month
	HourlyRateUSD       float64
	FeeSchedules        []FeeSchedule
	FXRateOverride      *float64 // nil = consultar proveedores
	FXLabelOverride     string   // vacío = "Manual override"
	IncludeChristmasEve bool
	Mode                Mode
}

// NewInvoiceRequest construye una solicitud con los valores por defecto
// (Nochebuena incluida, modo both).
func NewInvoiceRequest(year int, month time.Month, hourlyRateUSD float64, fees ...FeeSchedule) InvoiceRequest {
	return InvoiceRequest{
		Year:                year,
		Month:               month,
		HourlyRateUSD:       hourlyRateUSD,
		FeeSchedules:        fees,
		IncludeChristmasEve: true,
		Mode:                ModeBoth,
	}
}

// EnabledFees devuelve las tarifas habilitadas en el orden recibido.
func (r InvoiceRequest) EnabledFees() []FeeSchedule {
	out := make([]FeeSchedule, 0, len(r.FeeSchedules))
	for _, f := range r.FeeSchedules {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

// PayoutBreakdown resultado neto de un proveedor, calculado sobre el bruto BRL completo.
type PayoutBreakdown struct {
	ProviderName string
	FeePercent   float64
	FixedFeeBrl  float64
	FeesBrl      float64
	NetBrl       float64
}

// InvoiceResult resultado del cálculo. Se construye una vez por llamada.
// Los montos conservan precisión completa; el redondeo es solo de presentación.
type InvoiceResult struct {
	Year             int
	Month            time.Month
	Mode             Mode
	WorkDays         int
	WorkHours        int
	PaidHolidayCount int
	HolidayHours     int
	TotalHours       int
	PaidHolidayDates []time.Time // medianoche UTC, orden ascendente
	HourlyRateUSD    float64
	GrossUSD         float64

	FX                 *FXRate // nil = cotización no disponible
	ConversionGrossBRL float64
	Payouts            []PayoutBreakdown

	SummaryText string

	// Err solo se llena cuando la entrada es inválida (mes o montos negativos).
	Err error
}

// Failed indica un resultado de error (sin datos parciales).
func (r *InvoiceResult) Failed() bool {
	return r.Err != nil
}

// HasFX indica si los campos dependientes de BRL están disponibles.
func (r *InvoiceResult) HasFX() bool {
	return r.FX != nil
}
