package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
	"github.com/kavinkharthik/proforma-api/internal/domain/repository"
	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
)

// Querier is the subset of pgx executed by the repositories; both a pool and
// a transaction satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo archives every rendered invoice request for audit.
type InvoiceRepo struct {
	q Querier
}

func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Save inserts one archive row. The full request is stored as jsonb next to
// the computed totals so a document can be re-rendered or inspected later.
func (r *InvoiceRepo) Save(ctx context.Context, req *entity.InvoiceRequest, totals tax.Breakdown) (string, error) {
	payload, err := json.Marshal(archivedRequest(req))
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO invoice_requests (id, po_number, receiver_name, to_email, payload, subtotal, tax_total, grand_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		id, req.PONumber, req.ReceiverName, req.ToEmail, payload,
		totals.Subtotal, totals.TaxTotal, totals.GrandTotal, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert invoice request: %w", err)
	}
	return id, nil
}

// archivedRequest strips the embedded images before archiving; data URLs can
// run to megabytes and re-rendering only needs the text fields.
func archivedRequest(req *entity.InvoiceRequest) entity.InvoiceRequest {
	snapshot := *req
	snapshot.Logo = nil
	snapshot.PaymentQR = nil
	return snapshot
}
