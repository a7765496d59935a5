package postgres

import (
	"context"
	"fmt"
)

const createInvoiceRequests = `
CREATE TABLE IF NOT EXISTS invoice_requests (
	id            uuid PRIMARY KEY,
	po_number     text NOT NULL DEFAULT '',
	receiver_name text NOT NULL,
	to_email      text NOT NULL DEFAULT '',
	payload       jsonb NOT NULL,
	subtotal      numeric(14,2) NOT NULL,
	tax_total     numeric(14,2) NOT NULL,
	grand_total   numeric(14,2) NOT NULL,
	created_at    timestamptz NOT NULL
)`

// EnsureSchema creates the archive table when it does not exist yet. The
// service owns a single table, so idempotent DDL at startup replaces a
// migration tool.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, createInvoiceRequests); err != nil {
		return fmt.Errorf("create invoice_requests: %w", err)
	}
	return nil
}
