package invoice

import (
	"time"

	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/pkg/config"
)

// FeeSchedules convierte las tarifas configuradas en FeeSchedule habilitados.
func FeeSchedules(fees []config.FeeConfig) []entity.FeeSchedule {
	out := make([]entity.FeeSchedule, 0, len(fees))
	for _, f := range fees {
		out = append(out, entity.FeeSchedule{
			ProviderName: f.Name,
			FeePercent:   f.Percent,
			FixedFeeBrl:  f.FixedBrl,
			Enabled:      true,
		})
	}
	return out
}

// DefaultRequest solicitud para year/month con los valores de INVOICE_*.
func DefaultRequest(cfg config.InvoiceConfig, year int, month time.Month) entity.InvoiceRequest {
	req := entity.NewInvoiceRequest(year, month, cfg.HourlyRate, FeeSchedules(cfg.Fees)...)
	req.IncludeChristmasEve = cfg.IncludeChristmasEve
	return req
}
