package invoice_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/grinvo/internal/application/invoice"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/internal/infrastructure/fx"
	"github.com/jhoicas/grinvo/pkg/logger"
)

type committed struct {
	id     uint64
	result *entity.InvoiceResult
}

func collector() (invoice.CommitFunc, chan committed) {
	ch := make(chan committed, 16)
	return func(id uint64, r *entity.InvoiceResult) { ch <- committed{id, r} }, ch
}

func echoCalc(calls *int32) invoice.CalculateFunc {
	return func(_ context.Context, req entity.InvoiceRequest) *entity.InvoiceResult {
		atomic.AddInt32(calls, 1)
		return &entity.InvoiceResult{Year: req.Year, Month: req.Month, HourlyRateUSD: req.HourlyRateUSD}
	}
}

func waitCommit(t *testing.T, ch chan committed) committed {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no se entregó ningún resultado")
		return committed{}
	}
}

func TestRecalculator_AgrupaRafagas(t *testing.T) {
	var calls int32
	commit, ch := collector()
	r := invoice.NewRecalculator(30*time.Millisecond, echoCalc(&calls), commit, logger.Nop())
	defer r.Close()

	for rate := 1.0; rate <= 5; rate++ {
		r.Schedule(entity.NewInvoiceRequest(2024, time.January, rate))
	}

	c := waitCommit(t, ch)
	assert.Equal(t, uint64(5), c.id)
	assert.Equal(t, 5.0, c.result.HourlyRateUSD)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "solo corre el último")

	select {
	case extra := <-ch:
		t.Fatalf("resultado inesperado %d", extra.id)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRecalculator_DescartaResultadoObsoleto(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var firstCtx context.Context
	var mu sync.Mutex

	calc := func(ctx context.Context, req entity.InvoiceRequest) *entity.InvoiceResult {
		if req.HourlyRateUSD == 1 {
			mu.Lock()
			firstCtx = ctx
			mu.Unlock()
			close(started)
			<-release
		}
		return &entity.InvoiceResult{HourlyRateUSD: req.HourlyRateUSD}
	}
	commit, ch := collector()
	r := invoice.NewRecalculator(time.Millisecond, calc, commit, logger.Nop())

	first := r.Immediate(entity.NewInvoiceRequest(2024, time.January, 1))
	<-started
	second := r.Immediate(entity.NewInvoiceRequest(2024, time.January, 2))
	require.Greater(t, second, first)
	assert.Equal(t, second, r.Latest())

	c := waitCommit(t, ch)
	assert.Equal(t, second, c.id)
	assert.Equal(t, 2.0, c.result.HourlyRateUSD)

	mu.Lock()
	assert.ErrorIs(t, firstCtx.Err(), context.Canceled, "el cálculo reemplazado se cancela")
	mu.Unlock()

	close(release)
	r.Close()
	assert.Empty(t, ch, "el resultado del primer cálculo se descarta")
}

func TestRecalculator_CloseDetieneEntregas(t *testing.T) {
	var calls int32
	commit, ch := collector()
	r := invoice.NewRecalculator(50*time.Millisecond, echoCalc(&calls), commit, logger.Nop())

	r.Schedule(entity.NewInvoiceRequest(2024, time.January, 1))
	r.Close()
	r.Schedule(entity.NewInvoiceRequest(2024, time.January, 2))

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, ch)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

type slowSource struct{ delay time.Duration }

func (slowSource) Name() string { return "lenta" }

func (s slowSource) FetchRate(ctx context.Context, _ time.Time) (*entity.FXRate, error) {
	select {
	case <-time.After(s.delay):
		return &entity.FXRate{Rate: 5, Source: "lenta", AsOf: "2024-02-01"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// El cálculo reemplazado se cancela mientras la consulta de cotización del mismo
// día está en curso; el último cálculo debe recibir la cotización igualmente.
func TestRecalculator_CotizacionCompartidaSobreviveAlCalculoCancelado(t *testing.T) {
	provider := fx.NewProvider(logger.Nop(), slowSource{delay: 200 * time.Millisecond})
	uc := invoice.NewCalculateUseCase(provider, logger.Nop(), invoice.WithClock(clock))

	commit, ch := collector()
	r := invoice.NewRecalculator(time.Hour, uc.Calculate, commit, logger.Nop())
	defer r.Close()

	r.Immediate(entity.NewInvoiceRequest(2024, time.January, 10))
	time.Sleep(50 * time.Millisecond)
	id := r.Immediate(entity.NewInvoiceRequest(2024, time.January, 20))

	c := waitCommit(t, ch)
	assert.Equal(t, id, c.id)
	require.True(t, c.result.HasFX(), c.result.SummaryText)
	assert.Equal(t, 5.0, c.result.FX.Rate)
	assert.Equal(t, 20.0, c.result.HourlyRateUSD)
	assert.Contains(t, c.result.SummaryText, "  FX Base Rate:    5.0000 BRL/USD (lenta, as of 2024-02-01)")

	select {
	case extra := <-ch:
		t.Fatalf("resultado inesperado #%d", extra.id)
	case <-time.After(100 * time.Millisecond):
	}
}
