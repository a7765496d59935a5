package pdf

import (
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
	"github.com/kavinkharthik/proforma-api/internal/domain/words"
)

// layout draws the seven fixed regions of one invoice page. It owns no state
// beyond the page it is drawing on; every render builds a fresh one.
type layout struct {
	doc *gofpdf.Fpdf
	geo Geometry
	st  Style
	tr  func(string) string // UTF-8 -> cp1252 for the core fonts
	now time.Time
}

// widthOf measures text with the currently selected font style at the given
// size. Selecting the size here keeps measurement and drawing consistent.
func (l *layout) widthOf(s string, size float64) float64 {
	l.doc.SetFontSize(size)
	return l.doc.GetStringWidth(l.tr(s))
}

func (l *layout) setFont(style string, size float64) {
	l.doc.SetFont(l.st.FontFamily, style, size)
}

func (l *layout) setTextColor(c RGB) { l.doc.SetTextColor(c.R, c.G, c.B) }
func (l *layout) setFillColor(c RGB) { l.doc.SetFillColor(c.R, c.G, c.B) }
func (l *layout) setDrawColor(c RGB) { l.doc.SetDrawColor(c.R, c.G, c.B) }

// textInBox clips the text to the box width and draws one baseline with the
// requested alignment. The current font style and color apply.
func (l *layout) textInBox(s string, size float64, box LayoutBox, align Alignment) {
	clipped := Clip(s, size, box.W, l.widthOf)
	if clipped == "" {
		return
	}
	x := AlignedX(box, l.widthOf(clipped, size), align)
	l.doc.Text(x, box.Y, l.tr(clipped))
}

// multilineInBox wraps the text into the box and draws up to MaxLines lines,
// advancing by LineHeight. Overflowing words are silently dropped.
func (l *layout) multilineInBox(s string, size float64, box LayoutBox) {
	for i, line := range Wrap(s, size, box.W, box.MaxLines, l.widthOf) {
		l.doc.SetFontSize(size)
		l.doc.Text(box.X, box.Y+float64(i)*box.LineHeight, l.tr(line))
	}
}

// draw renders the whole page. logoName and qrName are image names already
// registered on the document, or empty when the slot stays blank.
func (l *layout) draw(inv *entity.InvoiceRequest, totals tax.Breakdown, logoName, qrName string) {
	l.drawHeader(logoName)
	l.drawParty(inv)
	l.drawTable(inv.Items)
	l.drawTotals(inv, totals)
	l.drawAmountInWords(totals)
	l.drawSignature(qrName)
	l.drawFooter()
}

// ── Header band ──────────────────────────────────────────────────────────────

func (l *layout) drawHeader(logoName string) {
	g, st := l.geo, l.st

	l.setFillColor(st.HeaderColor)
	l.doc.Rect(g.HeaderBand.X, g.HeaderBand.Y, g.HeaderBand.W, g.HeaderBand.H, "F")

	// Logo slot: bordered placeholder, image scaled to fit when present.
	l.setFillColor(st.LogoFillColor)
	l.setDrawColor(st.LogoBorderColor)
	l.doc.SetLineWidth(2)
	l.doc.Rect(g.LogoBox.X, g.LogoBox.Y, g.LogoBox.W, g.LogoBox.H, "FD")
	if logoName != "" {
		l.imageInBox(logoName, g.LogoBox)
	}

	l.setTextColor(st.HeaderTextColor)
	l.setFont("B", st.HeaderFontSize)
	l.textInBox(st.CompanyName, st.HeaderFontSize, g.CompanyName, AlignLeft)

	l.setFont("", st.FontSize)
	details := []string{st.CompanyAddress, st.CompanyPhone, st.CompanyEmail}
	for i, line := range details {
		if i >= g.CompanyDetails.MaxLines {
			break
		}
		box := g.CompanyDetails
		box.Y += float64(i) * box.LineHeight
		l.textInBox(line, st.FontSize, box, AlignLeft)
	}
	l.textInBox(st.CompanyGSTIN, st.FontSize, g.CompanyGSTIN, AlignRight)

	// Document-type badge.
	l.setDrawColor(st.BadgeTextColor)
	l.doc.SetLineWidth(1.5)
	l.doc.Rect(g.Badge.X, g.Badge.Y, g.Badge.W, g.Badge.H, "D")
	l.setTextColor(st.BadgeTextColor)
	l.setFont("B", st.FontSize)
	badgeText := LayoutBox{X: g.Badge.X + 5, Y: g.Badge.Y + 17, W: g.Badge.W - 10}
	l.textInBox(st.BadgeText, st.FontSize, badgeText, AlignCenter)
}

// ── Party & metadata block ───────────────────────────────────────────────────

func (l *layout) drawParty(inv *entity.InvoiceRequest) {
	g, st := l.geo, l.st

	l.setDrawColor(RGB{})
	l.doc.SetLineWidth(1)
	l.doc.Line(0, g.SeparatorY, PageWidth, g.SeparatorY)

	l.setTextColor(RGB{})
	l.setFont("", st.FontSize)
	l.textInBox("To. M/s.", st.FontSize, g.ToLabel, AlignLeft)
	l.textInBox(inv.ReceiverName, st.FontSize, g.ReceiverName, AlignLeft)
	l.multilineInBox(inv.ReceiverAddress, st.FontSize, g.ReceiverAddress)
	l.textInBox("Mobile no: "+inv.ReceiverPhone, st.FontSize, g.ReceiverPhone, AlignLeft)
	if inv.ReceiverEmail != "" {
		l.textInBox("Email: "+inv.ReceiverEmail, st.FontSize, g.ReceiverEmail, AlignLeft)
	}
	if inv.ReceiverGSTIN != "" {
		l.textInBox("GSTIN: "+inv.ReceiverGSTIN, st.FontSize, g.ReceiverGSTIN, AlignLeft)
	}

	orderBy := inv.OrderBy
	if orderBy == "" {
		orderBy = st.DefaultOrderBy
	}
	piDate := inv.PIDate
	if piDate == "" {
		piDate = inv.PODate
	}
	if piDate == "" {
		piDate = l.now.Format("2006-01-02")
	}
	l.textInBox("Order By: "+orderBy, st.FontSize, g.OrderBy, AlignLeft)
	l.textInBox("PO No.: "+inv.PONumber, st.FontSize, g.PONumber, AlignLeft)
	l.textInBox("PI.Dt: "+FormatDisplayDate(piDate), st.FontSize, g.PIDate, AlignLeft)
	l.textInBox("Transport: "+inv.TransportMode, st.FontSize, g.TransportMode, AlignLeft)
	l.textInBox("Delivery Dt: "+FormatDisplayDate(inv.DeliveryDate), st.FontSize, g.DeliveryDate, AlignLeft)
	l.textInBox("Destination: "+inv.Destination, st.FontSize, g.Destination, AlignLeft)
}

// ── Line-item table ──────────────────────────────────────────────────────────

// visibleItems clamps the item list to the table's row limit. Rows beyond the
// limit are dropped silently — a known product limitation of the fixed page.
func visibleItems(items []entity.LineItem, maxRows int) []entity.LineItem {
	if len(items) > maxRows {
		return items[:maxRows]
	}
	return items
}

func (l *layout) drawTable(items []entity.LineItem) {
	g, st := l.geo, l.st
	widths := g.Table.Widths()

	l.setDrawColor(RGB{})
	l.setTextColor(RGB{})

	// Header row.
	l.doc.SetLineWidth(1)
	l.doc.Rect(g.Table.X, g.Table.Y, g.Table.W, g.Table.HeaderHeight, "D")
	l.drawColumnSeparators(g.Table.Y, g.Table.HeaderHeight, widths)
	l.setFont("B", st.SmallFontSize)
	x := g.Table.X
	for i, col := range g.Table.Columns {
		box := LayoutBox{X: x + g.Table.CellPad, Y: g.Table.Y + 13, W: widths[i] - 2*g.Table.CellPad}
		l.textInBox(col.Title, st.SmallFontSize, box, col.Align)
		x += widths[i]
	}

	// Item rows, then empty bordered rows padding to a constant table height.
	l.setFont("", st.SmallFontSize)
	l.doc.SetLineWidth(0.5)
	rows := visibleItems(items, g.Table.MaxRows)
	for r := 0; r < g.Table.MaxRows; r++ {
		rowY := g.Table.Y + g.Table.HeaderHeight + float64(r)*g.Table.RowHeight
		l.doc.Rect(g.Table.X, rowY, g.Table.W, g.Table.RowHeight, "D")
		l.drawColumnSeparators(rowY, g.Table.RowHeight, widths)
		if r >= len(rows) {
			continue
		}
		it := rows[r]
		cells := []string{
			strconv.Itoa(r + 1),
			it.Particulars,
			it.HSN,
			it.DCNo,
			blankIfZero(it.Rate),
			blankQtyIfZero(it.Quantity),
			blankIfZero(it.Amount()),
		}
		x = g.Table.X
		for i, cell := range cells {
			box := LayoutBox{X: x + g.Table.CellPad, Y: rowY + 13, W: widths[i] - 2*g.Table.CellPad}
			l.textInBox(cell, st.SmallFontSize, box, g.Table.Columns[i].Align)
			x += widths[i]
		}
	}
}

func (l *layout) drawColumnSeparators(y, h float64, widths []float64) {
	x := l.geo.Table.X
	for i := 0; i < len(widths)-1; i++ {
		x += widths[i]
		l.doc.Line(x, y, x, y+h)
	}
}

// ── Totals block ─────────────────────────────────────────────────────────────

func (l *layout) drawTotals(inv *entity.InvoiceRequest, totals tax.Breakdown) {
	g, st := l.geo, l.st

	igstLabel := st.IGSTFallback
	if inv.IGSTRate.IsPositive() {
		igstLabel = "IGST " + inv.IGSTRate.String() + "%"
	}

	// Zero-valued tax components show the label with a blank value, not 0.00.
	rows := []struct {
		label string
		value string
		bold  bool
	}{
		{"TOTAL", totals.Subtotal.StringFixed(2), false},
		{"CGST", blankIfZero(totals.CGST), false},
		{"SGST", blankIfZero(totals.SGST), false},
		{igstLabel, blankIfZero(totals.IGST), false},
		{"GST", blankIfZero(totals.TaxTotal), false},
		{"Rounded Off", totals.RoundedOff.StringFixed(2), false},
		{"GRAND TOTAL", totals.GrandTotal.StringFixed(2), true},
	}

	height := float64(len(rows)) * g.Totals.RowHeight
	l.setDrawColor(RGB{})
	l.setTextColor(RGB{})
	l.doc.SetLineWidth(1)
	l.doc.Rect(g.Totals.X, g.Totals.Y, g.Totals.W, height, "D")

	for i, row := range rows {
		size := st.SmallFontSize
		if row.bold {
			l.setFont("B", st.FontSize)
			size = st.FontSize
		} else {
			l.setFont("", st.SmallFontSize)
		}
		y := g.Totals.Y + 13 + float64(i)*g.Totals.RowHeight
		label := LayoutBox{X: g.Totals.X + g.Totals.LabelInset, Y: y, W: g.Totals.W / 2}
		value := LayoutBox{X: g.Totals.X, Y: y, W: g.Totals.W - g.Totals.ValueInset}
		l.textInBox(row.label, size, label, AlignLeft)
		if row.value != "" {
			l.textInBox(row.value, size, value, AlignRight)
		}
	}
}

// ── Amount in words ──────────────────────────────────────────────────────────

func (l *layout) drawAmountInWords(totals tax.Breakdown) {
	g, st := l.geo, l.st

	l.setDrawColor(RGB{})
	l.doc.SetLineWidth(1)
	l.doc.Rect(g.WordsBox.X, g.WordsBox.Y, g.WordsBox.W, g.WordsBox.H, "D")

	l.setTextColor(RGB{})
	l.setFont("B", st.SmallFontSize)
	label := LayoutBox{X: g.WordsBox.X + 5, Y: g.WordsBox.Y + 14, W: g.WordsBox.W - 10}
	l.textInBox("Rupees", st.SmallFontSize, label, AlignLeft)

	l.setFont("", st.SmallFontSize)
	wordsBox := LayoutBox{
		X: g.WordsBox.X + 5, Y: g.WordsBox.Y + 30,
		W:          g.WordsBox.W - 10,
		LineHeight: g.WordsBox.LineHeight,
		MaxLines:   g.WordsBox.MaxLines,
	}
	l.multilineInBox(words.Convert(totals.GrandTotal.IntPart()), st.SmallFontSize, wordsBox)
}

// ── Signature & payment QR ───────────────────────────────────────────────────

func (l *layout) drawSignature(qrName string) {
	g, st := l.geo, l.st

	l.setTextColor(RGB{})
	l.setFont("", st.SmallFontSize)
	for i, line := range st.SignatureLines {
		box := g.Signature
		box.Y += float64(i) * box.LineHeight
		l.textInBox(line, st.SmallFontSize, box, AlignLeft)
	}
	if qrName != "" {
		l.imageInBox(qrName, g.QRBox)
	}
}

// ── Footer band ──────────────────────────────────────────────────────────────

func (l *layout) drawFooter() {
	g, st := l.geo, l.st

	l.setTextColor(RGB{})
	l.setFont("", st.SmallFontSize)
	for i, term := range st.Terms {
		box := g.Terms
		box.Y += float64(i) * box.LineHeight
		l.textInBox("• "+term, st.SmallFontSize, box, AlignLeft)
	}

	l.setFillColor(st.FooterColor)
	l.doc.Rect(g.FooterBand.X, g.FooterBand.Y, g.FooterBand.W, g.FooterBand.H, "F")

	l.setTextColor(st.FooterTextColor)
	l.setFont("B", st.SmallFontSize)
	l.textInBox(st.AttentionHeading, st.SmallFontSize, g.Attention, AlignLeft)
	l.setFont("", st.SmallFontSize)
	for i, line := range st.AttentionLines {
		box := g.Attention
		box.Y += float64(i+1) * box.LineHeight
		l.textInBox(line, st.SmallFontSize, box, AlignLeft)
	}
}

// imageInBox draws a registered image scaled to fit the box, preserving
// aspect ratio and centered.
func (l *layout) imageInBox(name string, box LayoutBox) {
	info := l.doc.GetImageInfo(name)
	if info == nil || info.Width() <= 0 || info.Height() <= 0 {
		return
	}
	scale := box.W / info.Width()
	if s := box.H / info.Height(); s < scale {
		scale = s
	}
	w := info.Width() * scale
	h := info.Height() * scale
	x := box.X + (box.W-w)/2
	y := box.Y + (box.H-h)/2
	l.doc.ImageOptions(name, x, y, w, h, false, gofpdf.ImageOptions{}, 0, "")
}

// FormatDisplayDate turns YYYY-MM-DD into the printed DD.MM.YYYY form. Values
// without a dash separator (already formatted, or free text) pass through
// unchanged.
func FormatDisplayDate(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return s
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// blankIfZero renders a positive amount with two decimals and anything else
// as an empty cell, matching the printed document's convention.
func blankIfZero(d decimal.Decimal) string {
	if d.IsPositive() {
		return d.StringFixed(2)
	}
	return ""
}

// blankQtyIfZero renders quantities without forced decimals.
func blankQtyIfZero(d decimal.Decimal) string {
	if d.IsPositive() {
		return d.String()
	}
	return ""
}
