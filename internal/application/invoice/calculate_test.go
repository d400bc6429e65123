package invoice_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/grinvo/internal/application/invoice"
	"github.com/jhoicas/grinvo/internal/domain"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	mockports "github.com/jhoicas/grinvo/internal/mocks/ports"
	"github.com/jhoicas/grinvo/pkg/logger"
)

var fixedNow = time.Date(2024, time.February, 1, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newUseCase(t *testing.T) (*invoice.CalculateUseCase, *mockports.MockRateProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	rates := mockports.NewMockRateProvider(ctrl)
	return invoice.NewCalculateUseCase(rates, logger.Nop(), invoice.WithClock(clock)), rates
}

func ptr(v float64) *float64 { return &v }

func nomadHiglobe() []entity.FeeSchedule {
	return []entity.FeeSchedule{
		{ProviderName: "Nomad", FeePercent: 1.0, Enabled: true},
		{ProviderName: "Higlobe", FeePercent: 0.3, Enabled: true},
	}
}

func TestCalculate_Enero2024ConCotizacionManual(t *testing.T) {
	uc, _ := newUseCase(t) // sin llamadas esperadas al proveedor

	req := entity.NewInvoiceRequest(2024, time.January, 15)
	req.FXRateOverride = ptr(5.0)

	res := uc.Calculate(context.Background(), req)
	require.False(t, res.Failed())

	assert.Equal(t, 22, res.WorkDays)
	assert.Equal(t, 176, res.WorkHours)
	assert.Equal(t, 1, res.PaidHolidayCount)
	assert.Equal(t, 8, res.HolidayHours)
	assert.Equal(t, 184, res.TotalHours)
	assert.Equal(t, []time.Time{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}, res.PaidHolidayDates)
	assert.Equal(t, 2760.0, res.GrossUSD)

	require.True(t, res.HasFX())
	assert.Equal(t, 5.0, res.FX.Rate)
	assert.Equal(t, "Manual override", res.FX.Source)
	assert.Equal(t, "01/02/2024 10:30", res.FX.AsOf)
	assert.Equal(t, 13800.0, res.ConversionGrossBRL)
	assert.Empty(t, res.Payouts)
}

func TestCalculate_ResumenCompleto(t *testing.T) {
	uc, _ := newUseCase(t)

	req := entity.NewInvoiceRequest(2024, time.January, 15, nomadHiglobe()...)
	req.FXRateOverride = ptr(5.0)

	res := uc.Calculate(context.Background(), req)

	want := `January 2024
  Work Days:       22 (176h)
  Paid Holidays:   1 (8h)
  Total Hours:     184h
  Hourly Rate:     $15.00 USD/h
  Amount (USD):    $2760.00
  FX Base Rate:    5.0000 BRL/USD (Manual override, as of 01/02/2024 10:30)
  Conversion (BRL): R$ 13800.00
  --- Nomad ---
    Taxa: 1.00%
    Tarifas: R$ 138.00
    Líquido: R$ 13662.00
  --- Higlobe ---
    Taxa: 0.30%
    Tarifas: R$ 41.40
    Líquido: R$ 13758.60
  Holidays in month: 2024-01-01`
	assert.Equal(t, want, res.SummaryText)
}

func TestCalculate_EtiquetaManual(t *testing.T) {
	uc, _ := newUseCase(t)

	req := entity.NewInvoiceRequest(2024, time.February, 10)
	req.FXRateOverride = ptr(5.25)
	req.FXLabelOverride = "Wise"

	res := uc.Calculate(context.Background(), req)
	require.True(t, res.HasFX())
	assert.Equal(t, "Wise", res.FX.Source)
	assert.Equal(t, 0, res.PaidHolidayCount)
	assert.Equal(t, 21, res.WorkDays)
	assert.NotContains(t, res.SummaryText, "Holidays in month")
}

func TestCalculate_CotizacionDelProveedor(t *testing.T) {
	uc, rates := newUseCase(t)

	rates.EXPECT().
		FetchRate(gomock.Any(), fixedNow).
		DoAndReturn(func(ctx context.Context, _ time.Time) (*entity.FXRate, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "la consulta debe tener timeout")
			return &entity.FXRate{Rate: 4.9, Source: "BCB/PTAX", AsOf: "2024-01-31 13:10:00"}, nil
		})

	req := entity.NewInvoiceRequest(2024, time.January, 10, nomadHiglobe()...)
	res := uc.Calculate(context.Background(), req)

	require.True(t, res.HasFX())
	assert.Equal(t, "BCB/PTAX", res.FX.Source)
	assert.InDelta(t, 1840*4.9, res.ConversionGrossBRL, 1e-9)
	require.Len(t, res.Payouts, 2)
	assert.Equal(t, "Nomad", res.Payouts[0].ProviderName)
	assert.Equal(t, "Higlobe", res.Payouts[1].ProviderName)
	assert.Contains(t, res.SummaryText, "FX Base Rate:    4.9000 BRL/USD (BCB/PTAX, as of 2024-01-31 13:10:00)")
}

func TestCalculate_SinCotizacion(t *testing.T) {
	uc, rates := newUseCase(t)

	rates.EXPECT().
		FetchRate(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(domain.ErrRateUnavailable, errors.New("offline")))

	req := entity.NewInvoiceRequest(2024, time.January, 15, nomadHiglobe()...)
	res := uc.Calculate(context.Background(), req)

	require.False(t, res.Failed(), "la falta de cotización no es un error")
	assert.Nil(t, res.FX)
	assert.Empty(t, res.Payouts)
	assert.Equal(t, 0.0, res.ConversionGrossBRL)
	assert.Equal(t, 2760.0, res.GrossUSD)
	assert.Contains(t, res.SummaryText, "  FX Rate: unavailable (offline or API error)")
	assert.NotContains(t, res.SummaryText, "Conversion (BRL)")
	assert.NotContains(t, res.SummaryText, "--- Nomad ---")
}

func TestCalculate_TimeoutDeCotizacion(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mockports.NewMockRateProvider(ctrl)
	uc := invoice.NewCalculateUseCase(rates, logger.Nop(),
		invoice.WithClock(clock), invoice.WithFXTimeout(20*time.Millisecond))

	rates.EXPECT().
		FetchRate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time) (*entity.FXRate, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	start := time.Now()
	res := uc.Calculate(context.Background(), entity.NewInvoiceRequest(2024, time.March, 20))

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Nil(t, res.FX)
	assert.Equal(t, 168, res.TotalHours)
}

func TestCalculate_SinProveedor(t *testing.T) {
	uc := invoice.NewCalculateUseCase(nil, logger.Nop())

	res := uc.Calculate(context.Background(), entity.NewInvoiceRequest(2024, time.January, 15))
	assert.False(t, res.Failed())
	assert.Nil(t, res.FX)
}

func TestCalculate_Idempotente(t *testing.T) {
	uc, rates := newUseCase(t)
	rates.EXPECT().
		FetchRate(gomock.Any(), gomock.Any()).
		Return(&entity.FXRate{Rate: 5.1234, Source: "AwesomeAPI", AsOf: "31/01/2024 17:00"}, nil).
		Times(2)

	req := entity.NewInvoiceRequest(2023, time.December, 17.5, nomadHiglobe()...)
	first := uc.Calculate(context.Background(), req)
	second := uc.Calculate(context.Background(), req)

	assert.Equal(t, first, second)
	assert.Equal(t, first.SummaryText, second.SummaryText)
}

func TestCalculate_TarifaCero(t *testing.T) {
	uc, _ := newUseCase(t)

	req := entity.NewInvoiceRequest(2024, time.May, 13.37,
		entity.FeeSchedule{ProviderName: "Zero", FeePercent: 0, Enabled: true})
	req.FXRateOverride = ptr(5.4321)

	res := uc.Calculate(context.Background(), req)
	require.Len(t, res.Payouts, 1)
	assert.Equal(t, 0.0, res.Payouts[0].FeesBrl)
	assert.Equal(t, res.ConversionGrossBRL, res.Payouts[0].NetBrl)
}

func TestCalculate_TarifasDeshabilitadas(t *testing.T) {
	uc, _ := newUseCase(t)

	fees := nomadHiglobe()
	fees[0].Enabled = false
	req := entity.NewInvoiceRequest(2024, time.January, 15, fees...)
	req.FXRateOverride = ptr(5.0)

	res := uc.Calculate(context.Background(), req)
	require.Len(t, res.Payouts, 1)
	assert.Equal(t, "Higlobe", res.Payouts[0].ProviderName)
	assert.NotContains(t, res.SummaryText, "Nomad")
}

func TestCalculate_Modos(t *testing.T) {
	testCases := []struct {
		name        string
		mode        entity.Mode
		wantPayouts int
	}{
		{name: "solo_conversion", mode: entity.ModeConversionOnly, wantPayouts: 0},
		{name: "solo_retiro", mode: entity.ModeWithdrawOnly, wantPayouts: 2},
		{name: "ambos", mode: entity.ModeBoth, wantPayouts: 2},
		{name: "vacio_es_ambos", mode: "", wantPayouts: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newUseCase(t)
			req := entity.NewInvoiceRequest(2024, time.January, 15, nomadHiglobe()...)
			req.FXRateOverride = ptr(5.0)
			req.Mode = tc.mode

			res := uc.Calculate(context.Background(), req)
			require.False(t, res.Failed())
			assert.Len(t, res.Payouts, tc.wantPayouts)
			assert.Equal(t, 13800.0, res.ConversionGrossBRL, "la conversión se calcula en todos los modos")
			assert.Equal(t, tc.wantPayouts > 0, strings.Contains(res.SummaryText, "  --- "))
		})
	}
}

func TestCalculate_Diciembre2022FeriadoObservado(t *testing.T) {
	uc, _ := newUseCase(t)
	req := entity.NewInvoiceRequest(2022, time.December, 20)
	req.FXRateOverride = ptr(5.2)

	res := uc.Calculate(context.Background(), req)
	assert.Equal(t, []time.Time{time.Date(2022, time.December, 26, 0, 0, 0, 0, time.UTC)}, res.PaidHolidayDates)
	assert.Equal(t, 21, res.WorkDays)
	assert.Contains(t, res.SummaryText, "Holidays in month: 2022-12-26")
}

func TestCalculate_SinNochebuena(t *testing.T) {
	uc, _ := newUseCase(t)

	with := entity.NewInvoiceRequest(2024, time.December, 10)
	with.FXRateOverride = ptr(5.0)
	without := with
	without.IncludeChristmasEve = false

	a := uc.Calculate(context.Background(), with)
	b := uc.Calculate(context.Background(), without)
	assert.Equal(t, 2, a.PaidHolidayCount)
	assert.Equal(t, 1, b.PaidHolidayCount)
	assert.Equal(t, a.TotalHours, b.TotalHours, "Nochebuena en día hábil solo cambia la clasificación")
	assert.Equal(t, a.ConversionGrossBRL, b.ConversionGrossBRL)
}

func TestCalculate_EntradaInvalida(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(r *entity.InvoiceRequest)
		wantErr     error
		wantSummary string
	}{
		{
			name:        "mes_13",
			mutate:      func(r *entity.InvoiceRequest) { r.Month = 13 },
			wantErr:     domain.ErrInvalidMonth,
			wantSummary: "Invalid month: 2024-13",
		},
		{
			name:        "mes_0",
			mutate:      func(r *entity.InvoiceRequest) { r.Month = 0 },
			wantErr:     domain.ErrInvalidMonth,
			wantSummary: "Invalid month: 2024-00",
		},
		{
			name:    "tarifa_horaria_negativa",
			mutate:  func(r *entity.InvoiceRequest) { r.HourlyRateUSD = -1 },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "porcentaje_negativo",
			mutate: func(r *entity.InvoiceRequest) {
				r.FeeSchedules = []entity.FeeSchedule{{ProviderName: "X", FeePercent: -0.5, Enabled: true}}
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "tarifa_fija_negativa",
			mutate: func(r *entity.InvoiceRequest) {
				r.FeeSchedules = []entity.FeeSchedule{{ProviderName: "X", FixedFeeBrl: -3, Enabled: true}}
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "cotizacion_manual_cero",
			mutate:  func(r *entity.InvoiceRequest) { r.FXRateOverride = ptr(0) },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "modo_desconocido",
			mutate:  func(r *entity.InvoiceRequest) { r.Mode = "swap" },
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newUseCase(t) // el proveedor no debe consultarse
			req := entity.NewInvoiceRequest(2024, time.January, 15)
			tc.mutate(&req)

			res := uc.Calculate(context.Background(), req)
			require.True(t, res.Failed())
			assert.ErrorIs(t, res.Err, tc.wantErr)
			assert.Zero(t, res.TotalHours)
			assert.Zero(t, res.GrossUSD)
			assert.Nil(t, res.FX)
			assert.Empty(t, res.Payouts)
			assert.Empty(t, res.PaidHolidayDates)
			if tc.wantSummary != "" {
				assert.Equal(t, tc.wantSummary, res.SummaryText)
			} else {
				assert.Contains(t, res.SummaryText, "Invalid input")
			}
		})
	}
}

func TestCalculate_TarifaNegativaDeshabilitadaSeIgnora(t *testing.T) {
	uc, _ := newUseCase(t)
	req := entity.NewInvoiceRequest(2024, time.January, 15,
		entity.FeeSchedule{ProviderName: "Off", FeePercent: -1, Enabled: false})
	req.FXRateOverride = ptr(5.0)

	res := uc.Calculate(context.Background(), req)
	assert.False(t, res.Failed())
	assert.Empty(t, res.Payouts)
}
