package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
)

// Renderer produces the complete invoice document from scratch on a fresh A4
// page. Safe for concurrent use: every Render builds its own document.
type Renderer struct {
	geo          Geometry
	st           Style
	staticQRPath string
	now          func() time.Time
}

// NewRenderer builds a Renderer with the default page geometry and
// letterhead. staticQRPath points at an optional payment-QR image on disk; it
// may be empty or missing, in which case the QR falls back to the payload
// image and finally to a generated UPI code.
func NewRenderer(staticQRPath string) *Renderer {
	return NewRendererWithStyle(DefaultGeometry(), DefaultStyle(), staticQRPath)
}

// NewRendererWithStyle builds a Renderer with explicit geometry and style.
func NewRendererWithStyle(geo Geometry, st Style, staticQRPath string) *Renderer {
	return &Renderer{geo: geo, st: st, staticQRPath: staticQRPath, now: time.Now}
}

// Render draws the invoice and returns the finished PDF bytes.
func (r *Renderer) Render(ctx context.Context, inv *entity.InvoiceRequest, totals tax.Breakdown) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	logoName, err := registerImage(doc, "logo", inv.Logo)
	if err != nil {
		return nil, fmt.Errorf("logo image: %w", err)
	}
	qrName, err := r.registerPaymentQR(doc, inv, totals)
	if err != nil {
		return nil, fmt.Errorf("payment qr: %w", err)
	}

	l := &layout{doc: doc, geo: r.geo, st: r.st, tr: doc.UnicodeTranslatorFromDescriptor(""), now: r.now()}
	l.draw(inv, totals, logoName, qrName)

	if doc.Error() != nil {
		return nil, doc.Error()
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// registerPaymentQR resolves the payment QR in priority order: static asset
// file, payload-supplied image, generated UPI code. A generation failure is a
// render failure; the document never ships with a blank payment slot.
func (r *Renderer) registerPaymentQR(doc *gofpdf.Fpdf, inv *entity.InvoiceRequest, totals tax.Breakdown) (string, error) {
	switch pickQRSource(r.staticQRAvailable(), inv.PaymentQR != nil) {
	case qrAsset:
		doc.RegisterImageOptions(r.staticQRPath, gofpdf.ImageOptions{})
		if doc.Error() != nil {
			return "", doc.Error()
		}
		return r.staticQRPath, nil
	case qrPayload:
		return registerImage(doc, "payment-qr", inv.PaymentQR)
	default:
		uri := buildPaymentURI(r.st.UPIAddress, r.st.CompanyName, inv.PONumber, totals.GrandTotal)
		data, err := generateQRPNG(uri, 256)
		if err != nil {
			return "", err
		}
		return registerImage(doc, "payment-qr", &entity.EmbeddedImage{Format: "PNG", Data: data})
	}
}

func (r *Renderer) staticQRAvailable() bool {
	if r.staticQRPath == "" {
		return false
	}
	info, err := os.Stat(r.staticQRPath)
	return err == nil && !info.IsDir()
}

// registerImage registers a payload image under name and returns the name, or
// "" when img is nil.
func registerImage(doc *gofpdf.Fpdf, name string, img *entity.EmbeddedImage) (string, error) {
	if img == nil {
		return "", nil
	}
	doc.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: img.Format}, bytes.NewReader(img.Data))
	if doc.Error() != nil {
		return "", doc.Error()
	}
	return name, nil
}
