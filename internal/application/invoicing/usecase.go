package invoicing

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kavinkharthik/proforma-api/internal/application/dto"
	"github.com/kavinkharthik/proforma-api/internal/domain"
	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
	"github.com/kavinkharthik/proforma-api/internal/domain/repository"
	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
	"github.com/kavinkharthik/proforma-api/pkg/logger"
)

// RenderedDocument is the finished byte stream plus its display filename.
type RenderedDocument struct {
	Bytes    []byte
	Filename string
}

// UseCase drives the invoicing operations: validate, compute totals, render,
// archive (best-effort) and optionally email. The archive may be nil, in
// which case payloads are simply not stored.
type UseCase struct {
	renderer  DocumentRenderer
	overlayer TemplateOverlayer
	mailer    Mailer
	archive   repository.InvoiceRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewUseCase wires the use case. archive may be nil (render-only deployment).
func NewUseCase(
	renderer DocumentRenderer,
	overlayer TemplateOverlayer,
	mailer Mailer,
	archive repository.InvoiceRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		renderer:  renderer,
		overlayer: overlayer,
		mailer:    mailer,
		archive:   archive,
		log:       log,
		now:       time.Now,
	}
}

// Generate validates the payload, computes totals and renders the proforma
// invoice from scratch. The payload is archived after a successful render;
// archive failures are logged and never fail the operation.
func (uc *UseCase) Generate(ctx context.Context, in *dto.GenerateInvoiceRequest) (*RenderedDocument, error) {
	if err := validateGenerate(in, false); err != nil {
		return nil, err
	}
	return uc.render(ctx, in)
}

// GenerateAndEmail renders like Generate and then dispatches the document to
// the payload's recipient. Email delivery is the point of this operation, so
// a dispatch failure fails the call — unlike archiving.
func (uc *UseCase) GenerateAndEmail(ctx context.Context, in *dto.GenerateInvoiceRequest) (*RenderedDocument, error) {
	if err := validateGenerate(in, true); err != nil {
		return nil, err
	}
	doc, err := uc.render(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := uc.email(ctx, in, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FillTemplateAndEmail is the legacy mode: overlay text fields on the
// caller's template PDF and email the result. All fields are mandatory here.
func (uc *UseCase) FillTemplateAndEmail(ctx context.Context, template io.ReadSeeker, in *dto.GenerateInvoiceRequest) error {
	if err := validateTemplateFill(in); err != nil {
		return err
	}
	inv, err := toEntity(in)
	if err != nil {
		return err
	}
	totals := tax.Compute(inv.Items, inv.CGSTRate, inv.SGSTRate, inv.IGSTRate)

	bytes, err := uc.overlayer.Overlay(ctx, template, inv, totals)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	uc.save(ctx, inv, totals)

	return uc.mailer.Send(ctx, OutboundMail{
		To:             inv.ToEmail,
		Subject:        fmt.Sprintf("Invoice/Challan: %s", inv.PONumber),
		Body:           fmt.Sprintf("Please find attached the document for PO #%s.", inv.PONumber),
		AttachmentName: fmt.Sprintf("invoice-%s.pdf", inv.PONumber),
		Attachment:     bytes,
	})
}

func (uc *UseCase) render(ctx context.Context, in *dto.GenerateInvoiceRequest) (*RenderedDocument, error) {
	inv, err := toEntity(in)
	if err != nil {
		return nil, err
	}
	totals := tax.Compute(inv.Items, inv.CGSTRate, inv.SGSTRate, inv.IGSTRate)

	bytes, err := uc.renderer.Render(ctx, inv, totals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	doc := &RenderedDocument{
		Bytes:    bytes,
		Filename: uc.filename(inv.PONumber),
	}

	uc.save(ctx, inv, totals)

	uc.log.Info().
		Str("po_number", inv.PONumber).
		Str("filename", doc.Filename).
		Int("bytes", len(doc.Bytes)).
		Int("items", len(inv.Items)).
		Msg("proforma invoice rendered")
	return doc, nil
}

// save archives the payload. Best-effort: failures are logged and swallowed,
// the render's success never depends on the store.
func (uc *UseCase) save(ctx context.Context, inv *entity.InvoiceRequest, totals tax.Breakdown) {
	if uc.archive == nil {
		return
	}
	id, err := uc.archive.Save(ctx, inv, totals)
	if err != nil {
		uc.log.Warn().Err(err).Str("po_number", inv.PONumber).Msg("archiving invoice payload failed")
		return
	}
	uc.log.Debug().Str("invoice_id", id).Msg("invoice payload archived")
}

func (uc *UseCase) email(ctx context.Context, in *dto.GenerateInvoiceRequest, doc *RenderedDocument) error {
	po := in.PONumber
	if po == "" {
		po = "PI"
	}
	subject := in.EmailSubject
	if subject == "" {
		subject = fmt.Sprintf("Proforma Invoice: %s", po)
	}
	body := in.EmailBody
	if body == "" {
		body = fmt.Sprintf("Please find attached the Proforma Invoice for PO #%s.", po)
	}
	if err := uc.mailer.Send(ctx, OutboundMail{
		To:             in.ToEmail,
		Subject:        subject,
		Body:           body,
		AttachmentName: doc.Filename,
		Attachment:     doc.Bytes,
	}); err != nil {
		return err
	}
	uc.log.Info().Str("to", in.ToEmail).Str("filename", doc.Filename).Msg("proforma invoice emailed")
	return nil
}

// filename derives the display filename from the PO number, falling back to
// a millisecond timestamp when it is absent.
func (uc *UseCase) filename(poNumber string) string {
	if poNumber == "" {
		poNumber = strconv.FormatInt(uc.now().UnixMilli(), 10)
	}
	return fmt.Sprintf("proforma-invoice-%s.pdf", poNumber)
}

// toEntity maps the payload onto the immutable render input. Malformed tax
// rates already degraded to zero in the DTO layer; embedded images must be
// decodable or the render is refused.
func toEntity(in *dto.GenerateInvoiceRequest) (*entity.InvoiceRequest, error) {
	logo, err := entity.ParseDataURL(in.LogoDataURL)
	if err != nil {
		return nil, err
	}
	qr, err := entity.ParseDataURL(in.PaymentQRDataURL)
	if err != nil {
		return nil, err
	}

	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.LineItem{
			Particulars: it.Particulars,
			HSN:         it.HSN,
			DCNo:        it.DCNo,
			Rate:        it.Rate.Decimal,
			Quantity:    it.Quantity.Decimal,
		})
	}

	return &entity.InvoiceRequest{
		ReceiverName:    in.ReceiverName,
		ReceiverAddress: in.ReceiverAddress,
		ReceiverPhone:   in.ReceiverPhone,
		ReceiverEmail:   in.ReceiverEmail,
		ReceiverGSTIN:   in.ReceiverGSTIN,
		PONumber:        in.PONumber,
		PODate:          in.PODate,
		PIDate:          in.PIDate,
		TransportMode:   in.TransportMode,
		DeliveryDate:    in.DeliveryDate,
		Destination:     in.Destination,
		OrderBy:         in.OrderBy,
		Items:           items,
		CGSTRate:        in.CGSTRate.Decimal,
		SGSTRate:        in.SGSTRate.Decimal,
		IGSTRate:        in.IGSTRate.Decimal,
		ToEmail:         in.ToEmail,
		EmailSubject:    in.EmailSubject,
		EmailBody:       in.EmailBody,
		Logo:            logo,
		PaymentQR:       qr,
	}, nil
}
