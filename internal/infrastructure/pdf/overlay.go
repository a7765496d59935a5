package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
)

// OverlayGeometry places overlay text over a caller-supplied template page.
// Unlike the from-scratch Geometry, Y coordinates here measure from the
// BOTTOM of the page: the template fill predates the from-scratch renderer
// and its coordinate sheet was calibrated that way against the printed form.
// They are converted at draw time.
type OverlayGeometry struct {
	FontSize float64

	ReceiverName    LayoutBox
	ReceiverAddress LayoutBox
	ReceiverPhone   LayoutBox
	ReceiverEmail   LayoutBox
	ReceiverGSTIN   LayoutBox

	PONumber      LayoutBox
	PODate        LayoutBox
	TransportMode LayoutBox
	DeliveryDate  LayoutBox
	Destination   LayoutBox

	TableStartY    float64
	TableRowHeight float64
	TableMaxRows   int
	TableColumns   []OverlayColumn

	Total      LayoutBox
	CGST       LayoutBox
	SGST       LayoutBox
	IGST       LayoutBox
	GST        LayoutBox
	RoundedOff LayoutBox
	GrandTotal LayoutBox
}

// OverlayColumn is one table column at an absolute page X.
type OverlayColumn struct {
	X, W  float64
	Align Alignment
}

// DefaultOverlayGeometry is the coordinate sheet calibrated against the
// pre-printed Sri Chakri Traders form.
func DefaultOverlayGeometry() OverlayGeometry {
	return OverlayGeometry{
		FontSize: 9,

		ReceiverName:    LayoutBox{X: 80, Y: 560, W: 250, H: 14},
		ReceiverAddress: LayoutBox{X: 80, Y: 530, W: 250, H: 40, LineHeight: 12, MaxLines: 3},
		ReceiverPhone:   LayoutBox{X: 80, Y: 505, W: 120, H: 12},
		ReceiverEmail:   LayoutBox{X: 230, Y: 505, W: 200, H: 12},
		ReceiverGSTIN:   LayoutBox{X: 80, Y: 490, W: 150, H: 12},

		PONumber:      LayoutBox{X: 420, Y: 560, W: 140, H: 12},
		PODate:        LayoutBox{X: 420, Y: 545, W: 140, H: 12},
		TransportMode: LayoutBox{X: 420, Y: 530, W: 140, H: 12},
		DeliveryDate:  LayoutBox{X: 420, Y: 515, W: 140, H: 12},
		Destination:   LayoutBox{X: 420, Y: 500, W: 140, H: 12},

		TableStartY:    430,
		TableRowHeight: 16,
		TableMaxRows:   10,
		TableColumns: []OverlayColumn{
			{X: 48, W: 25, Align: AlignCenter},   // s.no
			{X: 80, W: 200, Align: AlignLeft},    // particulars
			{X: 290, W: 50, Align: AlignCenter},  // hsn
			{X: 345, W: 60, Align: AlignCenter},  // d.c. no
			{X: 410, W: 70, Align: AlignRight},   // rate
			{X: 485, W: 40, Align: AlignCenter},  // quantity
			{X: 530, W: 70, Align: AlignRight},   // amount
		},

		Total:      LayoutBox{X: 530, Y: 260, W: 70, H: 12},
		CGST:       LayoutBox{X: 530, Y: 244, W: 70, H: 12},
		SGST:       LayoutBox{X: 530, Y: 228, W: 70, H: 12},
		IGST:       LayoutBox{X: 530, Y: 212, W: 70, H: 12},
		GST:        LayoutBox{X: 530, Y: 196, W: 70, H: 12},
		RoundedOff: LayoutBox{X: 530, Y: 180, W: 70, H: 12},
		GrandTotal: LayoutBox{X: 530, Y: 164, W: 70, H: 12},
	}
}

// Overlayer fills text over the first page of an uploaded template PDF.
// Backgrounds, images and pre-printed copy of the template pass through
// unchanged. Zero-valued totals ARE printed here (0.00): the pre-printed form
// has labelled slots for every row, so an empty slot would look like a
// missed fill rather than a zero.
type Overlayer struct {
	geo OverlayGeometry
}

func NewOverlayer() *Overlayer {
	return &Overlayer{geo: DefaultOverlayGeometry()}
}

func NewOverlayerWithGeometry(geo OverlayGeometry) *Overlayer {
	return &Overlayer{geo: geo}
}

// Overlay imports the template's first page and draws the invoice fields on
// top of it.
func (o *Overlayer) Overlay(ctx context.Context, template io.ReadSeeker, inv *entity.InvoiceRequest, totals tax.Breakdown) (out []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The page importer panics on malformed input instead of returning an
	// error; an uploaded file is untrusted, so contain it here.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("import template page: %v", r)
		}
	}()

	imp := gofpdi.NewImporter()

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	tpl := imp.ImportPageFromStream(doc, &template, 1, "/MediaBox")

	pageW, pageH := PageWidth, PageHeight
	if sizes := imp.GetPageSizes(); sizes != nil {
		if box, ok := sizes[1]["/MediaBox"]; ok && box["w"] > 0 && box["h"] > 0 {
			pageW, pageH = box["w"], box["h"]
		}
	}

	doc.AddPageFormat("P", gofpdf.SizeType{Wd: pageW, Ht: pageH})
	imp.UseImportedTemplate(doc, tpl, 0, 0, pageW, pageH)

	w := &overlayWriter{doc: doc, geo: o.geo, pageH: pageH, tr: doc.UnicodeTranslatorFromDescriptor("")}
	w.draw(inv, totals)

	if doc.Error() != nil {
		return nil, doc.Error()
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// overlayWriter draws in the bottom-origin coordinates of OverlayGeometry.
type overlayWriter struct {
	doc   *gofpdf.Fpdf
	geo   OverlayGeometry
	pageH float64
	tr    func(string) string
}

func (w *overlayWriter) widthOf(s string, size float64) float64 {
	w.doc.SetFontSize(size)
	return w.doc.GetStringWidth(w.tr(s))
}

// textInBox draws one clipped line with box.Y measured from the page bottom.
func (w *overlayWriter) textInBox(s string, box LayoutBox, align Alignment) {
	size := w.geo.FontSize
	clipped := Clip(s, size, box.W, w.widthOf)
	if clipped == "" {
		return
	}
	x := AlignedX(box, w.widthOf(clipped, size), align)
	w.doc.Text(x, w.pageH-box.Y, w.tr(clipped))
}

func (w *overlayWriter) multilineInBox(s string, box LayoutBox) {
	size := w.geo.FontSize
	for i, line := range Wrap(s, size, box.W, box.MaxLines, w.widthOf) {
		w.doc.SetFontSize(size)
		yFromBottom := box.Y + box.H - box.LineHeight*float64(i+1)
		w.doc.Text(box.X, w.pageH-yFromBottom, w.tr(line))
	}
}

func (w *overlayWriter) draw(inv *entity.InvoiceRequest, totals tax.Breakdown) {
	g := w.geo
	w.doc.SetFont("Helvetica", "", g.FontSize)
	w.doc.SetTextColor(0, 0, 0)

	w.textInBox(inv.ReceiverName, g.ReceiverName, AlignLeft)
	w.multilineInBox(inv.ReceiverAddress, g.ReceiverAddress)
	w.textInBox(inv.ReceiverPhone, g.ReceiverPhone, AlignLeft)
	w.textInBox(inv.ReceiverEmail, g.ReceiverEmail, AlignLeft)
	w.textInBox(inv.ReceiverGSTIN, g.ReceiverGSTIN, AlignLeft)

	w.textInBox(inv.PONumber, g.PONumber, AlignLeft)
	w.textInBox(inv.PODate, g.PODate, AlignLeft)
	w.textInBox(inv.TransportMode, g.TransportMode, AlignLeft)
	w.textInBox(inv.DeliveryDate, g.DeliveryDate, AlignLeft)
	w.textInBox(inv.Destination, g.Destination, AlignLeft)

	for r, it := range visibleItems(inv.Items, g.TableMaxRows) {
		rowY := g.TableStartY - g.TableRowHeight*float64(r)
		cells := []string{
			strconv.Itoa(r + 1),
			it.Particulars,
			it.HSN,
			it.DCNo,
			it.Rate.StringFixed(2),
			it.Quantity.String(),
			it.Amount().StringFixed(2),
		}
		for i, cell := range cells {
			col := g.TableColumns[i]
			box := LayoutBox{X: col.X, Y: rowY, W: col.W, H: g.TableRowHeight}
			w.textInBox(cell, box, col.Align)
		}
	}

	w.textInBox(totals.Subtotal.StringFixed(2), g.Total, AlignRight)
	w.textInBox(totals.CGST.StringFixed(2), g.CGST, AlignRight)
	w.textInBox(totals.SGST.StringFixed(2), g.SGST, AlignRight)
	w.textInBox(totals.IGST.StringFixed(2), g.IGST, AlignRight)
	w.textInBox(totals.TaxTotal.StringFixed(2), g.GST, AlignRight)
	w.textInBox(totals.RoundedOff.StringFixed(2), g.RoundedOff, AlignRight)
	w.textInBox(totals.GrandTotal.StringFixed(2), g.GrandTotal, AlignRight)
}
