package invoice_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/grinvo/internal/application/invoice"
	"github.com/jhoicas/grinvo/internal/domain/entity"
)

func TestRenderSummary_SinCotizacion(t *testing.T) {
	res := &entity.InvoiceResult{
		Year: 2024, Month: time.February,
		WorkDays: 21, WorkHours: 168, TotalHours: 168,
		HourlyRateUSD: 12.345, GrossUSD: 2073.96,
	}

	want := `February 2024
  Work Days:       21 (168h)
  Paid Holidays:   0 (0h)
  Total Hours:     168h
  Hourly Rate:     $12.35 USD/h
  Amount (USD):    $2073.96
  FX Rate: unavailable (offline or API error)`
	assert.Equal(t, want, invoice.RenderSummary(res))
}

func TestRenderSummary_TarifaFijaYVariosFeriados(t *testing.T) {
	res := &entity.InvoiceResult{
		Year: 2021, Month: time.December,
		WorkDays: 21, WorkHours: 168, PaidHolidayCount: 2, HolidayHours: 16, TotalHours: 184,
		PaidHolidayDates: []time.Time{
			time.Date(2021, time.December, 24, 0, 0, 0, 0, time.UTC),
			time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		HourlyRateUSD:      10,
		GrossUSD:           1840,
		FX:                 &entity.FXRate{Rate: 5.67891, Source: "BCB/PTAX", AsOf: "2021-12-30 13:05:00.0"},
		ConversionGrossBRL: 10449.1944,
		Payouts: []entity.PayoutBreakdown{
			{ProviderName: "Banco", FeePercent: 1.1, FixedFeeBrl: 7.5, FeesBrl: 122.441, NetBrl: 10326.7534},
		},
	}

	want := `December 2021
  Work Days:       21 (168h)
  Paid Holidays:   2 (16h)
  Total Hours:     184h
  Hourly Rate:     $10.00 USD/h
  Amount (USD):    $1840.00
  FX Base Rate:    5.6789 BRL/USD (BCB/PTAX, as of 2021-12-30 13:05:00.0)
  Conversion (BRL): R$ 10449.19
  --- Banco ---
    Taxa: 1.10%
    Tarifa fixa: R$ 7.50
    Tarifas: R$ 122.44
    Líquido: R$ 10326.75
  Holidays in month: 2021-12-24, 2021-12-31`
	assert.Equal(t, want, invoice.RenderSummary(res))
}

func TestFixed(t *testing.T) {
	testCases := []struct {
		in     float64
		places int32
		want   string
	}{
		{in: 0, places: 2, want: "0.00"},
		{in: 2.005, places: 2, want: "2.01"},
		{in: 41.400000000000006, places: 2, want: "41.40"},
		{in: 5, places: 4, want: "5.0000"},
		{in: 4.88685, places: 4, want: "4.8869"},
		{in: math.Inf(1), places: 2, want: "+Inf"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, invoice.Fixed(tc.in, tc.places), "%v", tc.in)
	}
}
