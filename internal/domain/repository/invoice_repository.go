package repository

import (
	"context"

	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
)

// InvoiceRepository archives rendered invoice payloads. The write is
// best-effort: callers log failures and never fail the render because of
// them. Save returns the opaque identifier the payload was stored under.
type InvoiceRepository interface {
	Save(ctx context.Context, req *entity.InvoiceRequest, totals tax.Breakdown) (id string, err error)
}
