package ports

import (
	"context"

	"github.com/jhoicas/grinvo/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación en PDF de un resultado de factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, result *entity.InvoiceResult, calculationID string) ([]byte, error)
}
