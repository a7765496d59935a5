package invoicing

import (
	"context"
	"io"

	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
)

// DocumentRenderer draws the complete proforma invoice from scratch and
// returns the finished PDF bytes. All-or-nothing: an error means no partial
// document was produced.
type DocumentRenderer interface {
	Render(ctx context.Context, inv *entity.InvoiceRequest, totals tax.Breakdown) ([]byte, error)
}

// TemplateOverlayer fills text fields over the first page of a caller-supplied
// template PDF (legacy mode). Backgrounds and images of the template are left
// untouched.
type TemplateOverlayer interface {
	Overlay(ctx context.Context, template io.ReadSeeker, inv *entity.InvoiceRequest, totals tax.Breakdown) ([]byte, error)
}

// OutboundMail is one transactional message with the rendered document
// attached.
type OutboundMail struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Mailer dispatches transactional email. Implementations must return
// domain.ErrEmailNotConfigured when the provider credential is absent.
type Mailer interface {
	Send(ctx context.Context, m OutboundMail) error
}
