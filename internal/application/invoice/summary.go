package invoice

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/grinvo/internal/domain"
	"github.com/jhoicas/grinvo/internal/domain/calendar"
	"github.com/jhoicas/grinvo/internal/domain/entity"
)

// RenderSummary arma el resumen de texto a partir de los campos del resultado.
// El redondeo ocurre solo aquí.
func RenderSummary(r *entity.InvoiceResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d\n", r.Month, r.Year)
	fmt.Fprintf(&b, "  Work Days:       %d (%dh)\n", r.WorkDays, r.WorkHours)
	fmt.Fprintf(&b, "  Paid Holidays:   %d (%dh)\n", r.PaidHolidayCount, r.HolidayHours)
	fmt.Fprintf(&b, "  Total Hours:     %dh\n", r.TotalHours)
	fmt.Fprintf(&b, "  Hourly Rate:     $%s USD/h\n", Fixed(r.HourlyRateUSD, 2))
	fmt.Fprintf(&b, "  Amount (USD):    $%s\n", Fixed(r.GrossUSD, 2))

	if r.FX == nil {
		b.WriteString("  FX Rate: unavailable (offline or API error)\n")
	} else {
		fmt.Fprintf(&b, "  FX Base Rate:    %s BRL/USD (%s, as of %s)\n", Fixed(r.FX.Rate, 4), r.FX.Source, r.FX.AsOf)
		fmt.Fprintf(&b, "  Conversion (BRL): R$ %s\n", Fixed(r.ConversionGrossBRL, 2))
		for _, p := range r.Payouts {
			fmt.Fprintf(&b, "  --- %s ---\n", p.ProviderName)
			fmt.Fprintf(&b, "    Taxa: %s%%\n", Fixed(p.FeePercent, 2))
			if p.FixedFeeBrl > 0 {
				fmt.Fprintf(&b, "    Tarifa fixa: R$ %s\n", Fixed(p.FixedFeeBrl, 2))
			}
			fmt.Fprintf(&b, "    Tarifas: R$ %s\n", Fixed(p.FeesBrl, 2))
			fmt.Fprintf(&b, "    Líquido: R$ %s\n", Fixed(p.NetBrl, 2))
		}
	}

	if len(r.PaidHolidayDates) > 0 {
		days := make([]string, 0, len(r.PaidHolidayDates))
		for _, t := range r.PaidHolidayDates {
			days = append(days, calendar.DateOf(t).String())
		}
		fmt.Fprintf(&b, "  Holidays in month: %s\n", strings.Join(days, ", "))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func renderError(req entity.InvoiceRequest, err error) string {
	if errors.Is(err, domain.ErrInvalidMonth) {
		return fmt.Sprintf("Invalid month: %04d-%02d", req.Year, int(req.Month))
	}
	return fmt.Sprintf("Invalid input: %v", err)
}

// Fixed formatea v con places decimales (redondeo half-up).
func Fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
