package invoice

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// DefaultDebounce espera por defecto tras la última edición.
const DefaultDebounce = 350 * time.Millisecond

// CalculateFunc ejecuta un cálculo (normalmente CalculateUseCase.Calculate).
type CalculateFunc func(ctx context.Context, req entity.InvoiceRequest) *entity.InvoiceResult

// CommitFunc recibe el resultado de la generación más reciente.
type CommitFunc func(id uint64, result *entity.InvoiceResult)

// Recalculator recalcula ante ediciones sucesivas: agrupa ráfagas tras un
// silencio de delay y solo entrega el resultado cuyo id es el último emitido.
// La cancelación del cálculo anterior es orientativa; si termina, se descarta.
type Recalculator struct {
	delay     time.Duration
	calculate CalculateFunc
	commit    CommitFunc
	log       *logger.Logger

	mu       sync.Mutex
	gen      uint64
	timer    *time.Timer
	cancel   context.CancelFunc
	closed   bool
	commitMu sync.Mutex
	wg       sync.WaitGroup
}

// NewRecalculator construye el recalculador. delay <= 0 usa DefaultDebounce.
func NewRecalculator(delay time.Duration, calculate CalculateFunc, commit CommitFunc, log *logger.Logger) *Recalculator {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Recalculator{
		delay:     delay,
		calculate: calculate,
		commit:    commit,
		log:       log.Named("recalculator"),
	}
}

// Schedule programa un cálculo tras el silencio configurado y devuelve su id.
func (r *Recalculator) Schedule(req entity.InvoiceRequest) uint64 {
	return r.schedule(req, r.delay)
}

// Immediate calcula sin esperar; igualmente invalida los pendientes.
func (r *Recalculator) Immediate(req entity.InvoiceRequest) uint64 {
	return r.schedule(req, 0)
}

// Latest id de la última solicitud emitida.
func (r *Recalculator) Latest() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// Close cancela lo pendiente y espera a los cálculos en curso.
// Tras Close no se entregan más resultados.
func (r *Recalculator) Close() {
	r.mu.Lock()
	r.closed = true
	r.stopPendingLocked()
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Recalculator) schedule(req entity.InvoiceRequest, delay time.Duration) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return r.gen
	}

	r.gen++
	id := r.gen
	r.stopPendingLocked()

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	r.timer = time.AfterFunc(delay, func() {
		defer r.wg.Done()
		r.run(ctx, id, req)
	})
	return id
}

// stopPendingLocked detiene el temporizador pendiente y cancela el cálculo en curso.
func (r *Recalculator) stopPendingLocked() {
	if r.timer != nil && r.timer.Stop() {
		// el callback nunca correrá
		r.wg.Done()
	}
	r.timer = nil
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Recalculator) run(ctx context.Context, id uint64, req entity.InvoiceRequest) {
	result := r.calculate(ctx, req)

	r.commitMu.Lock()
	defer r.commitMu.Unlock()

	r.mu.Lock()
	latest := id == r.gen && !r.closed
	r.mu.Unlock()

	if !latest {
		r.log.Debug().Uint64("id", id).Msg("resultado obsoleto descartado")
		return
	}
	r.commit(id, result)
}
