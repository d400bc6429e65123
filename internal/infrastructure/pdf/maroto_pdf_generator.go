// Package pdf genera el PDF de la factura mensual.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Grinvo + mes facturado  │  ID de cálculo           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HORAS: Días hábiles | Feriados pagados | Total             │
//	│  MONTOS: Tarifa horaria / Total USD                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CÂMBIO: cotización + fuente, conversión BRL                │
//	│  TABLA: Proveedor | Taxa | Tarifas | Líquido                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: feriados del mes                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/grinvo/internal/application/ports"
	"github.com/jhoicas/grinvo/internal/domain/calendar"
	"github.com/jhoicas/grinvo/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ ports.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.InvoicePDFGenerator usando Maroto v2.
// Los montos se muestran con formato pt-BR (1.234,56).
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	result *entity.InvoiceResult,
	calculationID string,
) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("pdf: resultado vacío")
	}
	if result.Failed() {
		return nil, fmt.Errorf("pdf: resultado inválido: %w", result.Err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Invoice %s %d", result.Month, result.Year), true).
		WithAuthor("Grinvo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(result, calculationID))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(hoursRow(result))
	m.AddRows(g.amountsRow(result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.fxRow(result))
	if result.HasFX() && len(result.Payouts) > 0 {
		m.AddRows(tableHeaderRow())
		for _, r := range g.payoutRows(result.Payouts) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(holidaysRow(result))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(result *entity.InvoiceResult, calculationID string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Grinvo", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Freelance monthly invoice", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %d", result.Month, result.Year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("ID: "+nonEmpty(calculationID, "-"), props.Text{
				Size: 7, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func hoursRow(result *entity.InvoiceResult) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 10, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("Work days", fmt.Sprintf("%d (%dh)", result.WorkDays, result.WorkHours)),
		cell("Paid holidays", fmt.Sprintf("%d (%dh)", result.PaidHolidayCount, result.HolidayHours)),
		cell("Total hours", fmt.Sprintf("%dh", result.TotalHours)),
	)
}

func (g *MarotoPDFGenerator) amountsRow(result *entity.InvoiceResult) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Hourly rate: US$ "+g.money(result.HourlyRateUSD)+" /h", props.Text{Size: 9, Top: 2}),
		),
		col.New(6).Add(
			text.New("Amount: US$ "+g.money(result.GrossUSD), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func (g *MarotoPDFGenerator) fxRow(result *entity.InvoiceResult) core.Row {
	if !result.HasFX() {
		return row.New(10).Add(col.New(12).Add(
			text.New("FX rate unavailable (offline or API error): amounts in BRL omitted.", props.Text{
				Style: fontstyle.Italic, Size: 9, Color: colorGray, Top: 2,
			}),
		))
	}
	fx := result.FX
	return row.New(16).Add(
		col.New(7).Add(
			text.New("CÂMBIO USD/BRL", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%s (%s, %s)", g.printer.Sprintf("%.4f", fx.Rate), fx.Source, fx.AsOf), props.Text{
				Size: 9, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Conversion", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New("R$ "+g.money(result.ConversionGrossBRL), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Provedor", 4, align.Left),
		h("Taxa", 2, align.Center),
		h("Tarifas", 3, align.Right),
		h("Líquido", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoPDFGenerator) payoutRows(payouts []entity.PayoutBreakdown) []core.Row {
	out := make([]core.Row, 0, len(payouts))
	for _, p := range payouts {
		taxa := g.printer.Sprintf("%.2f%%", p.FeePercent)
		if p.FixedFeeBrl > 0 {
			taxa += " + R$ " + g.money(p.FixedFeeBrl)
		}
		out = append(out, row.New(7).Add(
			col.New(4).Add(text.New(p.ProviderName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(taxa, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("R$ "+g.money(p.FeesBrl), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New("R$ "+g.money(p.NetBrl), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return out
}

func holidaysRow(result *entity.InvoiceResult) core.Row {
	label := "No paid holidays in month."
	if len(result.PaidHolidayDates) > 0 {
		days := make([]string, 0, len(result.PaidHolidayDates))
		for _, t := range result.PaidHolidayDates {
			days = append(days, calendar.DateOf(t).Format("02/01/2006"))
		}
		label = "Holidays in month: " + strings.Join(days, ", ")
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con 2 decimales en pt-BR. Ej: 13800 → "13.800,00".
func (g *MarotoPDFGenerator) money(v float64) string {
	return g.printer.Sprintf("%.2f", v)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
