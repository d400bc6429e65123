package invoice

import "github.com/jhoicas/grinvo/internal/domain/entity"

// ComputePayout aplica una tarifa sobre el bruto BRL completo:
// fees = bruto × pct/100 + fija, neto = bruto − fees.
func ComputePayout(grossBRL float64, fee entity.FeeSchedule) entity.PayoutBreakdown {
	fees := grossBRL*(fee.FeePercent/100) + fee.FixedFeeBrl
	return entity.PayoutBreakdown{
		ProviderName: fee.ProviderName,
		FeePercent:   fee.FeePercent,
		FixedFeeBrl:  fee.FixedFeeBrl,
		FeesBrl:      fees,
		NetBrl:       grossBRL - fees,
	}
}

// ComputePayouts calcula cada proveedor de forma independiente (sin encadenar
// descuentos), en el orden recibido.
func ComputePayouts(grossBRL float64, fees []entity.FeeSchedule) []entity.PayoutBreakdown {
	out := make([]entity.PayoutBreakdown, 0, len(fees))
	for _, f := range fees {
		out = append(out, ComputePayout(grossBRL, f))
	}
	return out
}
