package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/grinvo/internal/application/dto"
	"github.com/jhoicas/grinvo/internal/application/invoice"
	"github.com/jhoicas/grinvo/internal/application/ports"
	"github.com/jhoicas/grinvo/internal/domain"
	"github.com/jhoicas/grinvo/internal/domain/entity"
	"github.com/jhoicas/grinvo/pkg/config"
	"github.com/jhoicas/grinvo/pkg/logger"
)

// InvoiceHandler maneja el cálculo de la factura mensual.
type InvoiceHandler struct {
	uc       *invoice.CalculateUseCase
	pdf      ports.InvoicePDFGenerator
	defaults config.InvoiceConfig
	now      func() time.Time
	log      *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	uc *invoice.CalculateUseCase,
	pdf ports.InvoicePDFGenerator,
	defaults config.InvoiceConfig,
	now func() time.Time,
	log *logger.Logger,
) *InvoiceHandler {
	if now == nil {
		now = time.Now
	}
	return &InvoiceHandler{uc: uc, pdf: pdf, defaults: defaults, now: now, log: log.Named("http.invoice")}
}

// Calculate godoc
// @Summary      Calcular factura mensual
// @Description  Horas hábiles y feriados pagados del mes, total USD, conversión a BRL y neto por proveedor.
// @Description  Sin cotización disponible responde 200 con fx y conversion_gross_brl en null.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateInvoiceRequest  true  "mes YYYY-MM y sobrescrituras opcionales"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/calculate [post]
func (h *InvoiceHandler) Calculate(c *fiber.Ctx) error {
	result, errResp, status := h.calculate(c)
	if errResp != nil {
		return c.Status(status).JSON(errResp)
	}
	return c.JSON(dto.NewInvoiceResponse(GetCalculationID(c), result))
}

// PDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.CalculateInvoiceRequest  true  "mismo cuerpo que /calculate"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/invoices/pdf [post]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	result, errResp, status := h.calculate(c)
	if errResp != nil {
		return c.Status(status).JSON(errResp)
	}

	b, err := h.pdf.GenerateInvoicePDF(c.UserContext(), result, GetCalculationID(c))
	if err != nil {
		h.log.Error().Err(err).Str("calculation_id", GetCalculationID(c)).Msg("generar PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo generar el PDF",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="invoice-%04d-%02d.pdf"`, result.Year, int(result.Month)))
	return c.Send(b)
}

// Months godoc
// @Summary      Meses seleccionables
// @Description  Año anterior, actual y siguiente, del más reciente al más antiguo.
// @Tags         invoices
// @Produce      json
// @Success      200  {array}  dto.MonthOptionResponse
// @Router       /api/months [get]
func (h *InvoiceHandler) Months(c *fiber.Ctx) error {
	opts := invoice.MonthOptions(h.now())
	out := make([]dto.MonthOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.MonthOptionResponse{
			Value: fmt.Sprintf("%04d-%02d", o.Year, int(o.Month)),
			Label: o.Label,
		})
	}
	return c.JSON(out)
}

// calculate parsea, valida y ejecuta el cálculo. Devuelve el cuerpo de error y
// su estado cuando la petición no es válida.
func (h *InvoiceHandler) calculate(c *fiber.Ctx) (*entity.InvoiceResult, *dto.ErrorResponse, int) {
	var in dto.CalculateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"}, fiber.StatusBadRequest
	}
	if err := in.Validate(); err != nil {
		return nil, &dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}, fiber.StatusBadRequest
	}
	year, month, err := in.YearMonth()
	if err != nil {
		return nil, &dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}, fiber.StatusBadRequest
	}

	req := invoice.DefaultRequest(h.defaults, year, month)
	in.ApplyTo(&req)

	result := h.uc.Calculate(c.UserContext(), req)
	if result.Failed() {
		code := "INVALID_INPUT"
		if errors.Is(result.Err, domain.ErrInvalidMonth) {
			code = "INVALID_MONTH"
		}
		return nil, &dto.ErrorResponse{Code: code, Message: result.Err.Error()}, fiber.StatusUnprocessableEntity
	}

	h.log.Info().
		Str("calculation_id", GetCalculationID(c)).
		Int("year", result.Year).
		Int("month", int(result.Month)).
		Int("total_hours", result.TotalHours).
		Bool("fx", result.HasFX()).
		Msg("factura calculada")
	return result, nil, fiber.StatusOK
}
