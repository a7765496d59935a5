// Package pdf implements the graphical rendering of the proforma invoice.
//
// A4 page layout, drawn strictly top to bottom:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER BAND: logo box │ company identity │ GST no │ badge  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  To. M/s. + address           │  Order By / PO metadata     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: S.No │ Particulars │ HSN │ D.C. │ Rate │ Qty │ Amt  │
//	│  (empty bordered rows pad to a constant height)             │
//	│  RUPEES (amount in words)     │  TOTALS block               │
//	│  terms                        │  signature + payment QR     │
//	│  FOOTER BAND: attention note                                │
//	└─────────────────────────────────────────────────────────────┘
//
// Every coordinate lives in a Geometry value and every color and line of
// business copy in a Style value; nothing is computed per request. The page
// origin is top-left, units are points.
package pdf

// A4 page size in points.
const (
	PageWidth  = 595.28
	PageHeight = 841.89
)

// LayoutBox is a fixed rectangle used to place one field or block. For text,
// Y is the first baseline; multi-line boxes advance by LineHeight up to
// MaxLines lines.
type LayoutBox struct {
	X, Y, W, H float64
	LineHeight float64
	MaxLines   int
}

// RGB is an 8-bit color.
type RGB struct {
	R, G, B int
}

// Column describes one table column: a header title, a nominal width weight
// (scaled against the sum of all weights to the table width), and the cell
// alignment.
type Column struct {
	Title  string
	Weight float64
	Align  Alignment
}

// TableGeometry is the line-item table region.
type TableGeometry struct {
	X, Y         float64
	W            float64
	HeaderHeight float64
	RowHeight    float64
	MaxRows      int
	CellPad      float64
	Columns      []Column
}

// Widths returns the effective column widths, the nominal weights scaled to
// the table width.
func (t TableGeometry) Widths() []float64 {
	var sum float64
	for _, c := range t.Columns {
		sum += c.Weight
	}
	widths := make([]float64, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = c.Weight / sum * t.W
	}
	return widths
}

// TotalsGeometry is the bordered label/value block on the right.
type TotalsGeometry struct {
	X, Y       float64
	W          float64
	RowHeight  float64
	LabelInset float64 // label x offset from the block's left edge
	ValueInset float64 // value right edge offset from the block's right edge
}

// Geometry maps every field and block of the from-scratch document to its
// fixed box. Defined once at startup, never mutated per request.
type Geometry struct {
	HeaderBand     LayoutBox
	LogoBox        LayoutBox
	CompanyName    LayoutBox
	CompanyDetails LayoutBox // address, phone, email lines
	CompanyGSTIN   LayoutBox // right-aligned
	Badge          LayoutBox
	SeparatorY     float64

	ToLabel         LayoutBox
	ReceiverName    LayoutBox
	ReceiverAddress LayoutBox
	ReceiverPhone   LayoutBox
	ReceiverEmail   LayoutBox
	ReceiverGSTIN   LayoutBox
	OrderBy         LayoutBox
	PONumber        LayoutBox
	PIDate          LayoutBox
	TransportMode   LayoutBox
	DeliveryDate    LayoutBox
	Destination     LayoutBox

	Table  TableGeometry
	Totals TotalsGeometry

	WordsBox  LayoutBox
	Terms     LayoutBox
	Signature LayoutBox
	QRBox     LayoutBox

	FooterBand LayoutBox
	Attention  LayoutBox
}

// DefaultGeometry is the one canonical coordinate set of the from-scratch
// renderer. The legacy overlay mode keeps its own, deliberately separate set
// (see DefaultOverlayGeometry).
func DefaultGeometry() Geometry {
	return Geometry{
		HeaderBand:     LayoutBox{X: 0, Y: 0, W: PageWidth, H: 120},
		LogoBox:        LayoutBox{X: 20, Y: 15, W: 90, H: 90},
		CompanyName:    LayoutBox{X: 130, Y: 50, W: 310, H: 22},
		CompanyDetails: LayoutBox{X: 130, Y: 74, W: 420, H: 54, LineHeight: 18, MaxLines: 3},
		CompanyGSTIN:   LayoutBox{X: 365.28, Y: 50, W: 200, H: 12},
		Badge:          LayoutBox{X: 445.28, Y: 85, W: 130, H: 25},
		SeparatorY:     140,

		ToLabel:         LayoutBox{X: 50, Y: 165, W: 65, H: 12},
		ReceiverName:    LayoutBox{X: 120, Y: 165, W: 220, H: 12},
		ReceiverAddress: LayoutBox{X: 50, Y: 183, W: 250, H: 42, LineHeight: 14, MaxLines: 3},
		ReceiverPhone:   LayoutBox{X: 50, Y: 233, W: 220, H: 12},
		ReceiverEmail:   LayoutBox{X: 50, Y: 251, W: 250, H: 12},
		ReceiverGSTIN:   LayoutBox{X: 50, Y: 269, W: 250, H: 12},
		OrderBy:         LayoutBox{X: 350, Y: 165, W: 215, H: 12},
		PONumber:        LayoutBox{X: 350, Y: 183, W: 215, H: 12},
		PIDate:          LayoutBox{X: 350, Y: 201, W: 215, H: 12},
		TransportMode:   LayoutBox{X: 350, Y: 219, W: 215, H: 12},
		DeliveryDate:    LayoutBox{X: 350, Y: 237, W: 215, H: 12},
		Destination:     LayoutBox{X: 350, Y: 255, W: 215, H: 12},

		Table: TableGeometry{
			X: 30, Y: 290, W: PageWidth - 60,
			HeaderHeight: 20, RowHeight: 20,
			MaxRows: 12, CellPad: 5,
			Columns: []Column{
				{Title: "S.No.", Weight: 40, Align: AlignCenter},
				{Title: "Particulars", Weight: 180, Align: AlignLeft},
				{Title: "HSN CODE", Weight: 80, Align: AlignLeft},
				{Title: "D.C. No.", Weight: 70, Align: AlignLeft},
				{Title: "Rate Rs.", Weight: 80, Align: AlignRight},
				{Title: "Quantity", Weight: 70, Align: AlignCenter},
				{Title: "Amount", Weight: 65, Align: AlignRight},
			},
		},
		Totals: TotalsGeometry{
			X: PageWidth - 200, Y: 570, W: 170,
			RowHeight: 18, LabelInset: 5, ValueInset: 10,
		},

		WordsBox:  LayoutBox{X: 30, Y: 570, W: 330, H: 80, LineHeight: 14, MaxLines: 4},
		Terms:     LayoutBox{X: 50, Y: 716, W: 330, H: 60, LineHeight: 15},
		Signature: LayoutBox{X: PageWidth - 200, Y: 716, W: 170, H: 45, LineHeight: 15},
		QRBox:     LayoutBox{X: 505, Y: 700, W: 60, H: 60},

		FooterBand: LayoutBox{X: 0, Y: PageHeight - 50, W: PageWidth, H: 50},
		Attention:  LayoutBox{X: 30, Y: PageHeight - 35, W: 500, H: 45, LineHeight: 15},
	}
}

// Style carries every color, font and line of boilerplate copy of the
// document. Injected into the renderer so alternate letterheads are a
// configuration value, not a code fork.
type Style struct {
	FontFamily     string
	FontSize       float64
	SmallFontSize  float64
	HeaderFontSize float64

	HeaderColor     RGB
	HeaderTextColor RGB
	BadgeTextColor  RGB
	LogoBorderColor RGB
	LogoFillColor   RGB
	FooterColor     RGB
	FooterTextColor RGB

	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyGSTIN   string
	BadgeText      string

	DefaultOrderBy string
	IGSTFallback   string // IGST row label when no rate was supplied

	SignatureLines   []string
	Terms            []string
	AttentionHeading string
	AttentionLines   []string

	// UPIAddress is the payee VPA encoded into a generated payment QR when
	// neither a static asset nor a payload image is available.
	UPIAddress string
}

// DefaultStyle is the Sri Chakri Traders letterhead.
func DefaultStyle() Style {
	return Style{
		FontFamily:     "Helvetica",
		FontSize:       10,
		SmallFontSize:  8,
		HeaderFontSize: 20,

		HeaderColor:     RGB{R: 51, G: 153, B: 76},
		HeaderTextColor: RGB{R: 255, G: 255, B: 51},
		BadgeTextColor:  RGB{R: 255, G: 255, B: 255},
		LogoBorderColor: RGB{R: 255, G: 255, B: 51},
		LogoFillColor:   RGB{R: 230, G: 230, B: 230},
		FooterColor:     RGB{R: 255, G: 191, B: 204},
		FooterTextColor: RGB{R: 204, G: 0, B: 127},

		CompanyName:    "SRI CHAKRI TRADERS",
		CompanyAddress: "222, C1, P.K.M.R. Nagar, Dharapuram Road, Tirupur-641 604",
		CompanyPhone:   "Mobile no: 8072202136, 9976951369",
		CompanyEmail:   "srichakritraderstup@gmail.com",
		CompanyGSTIN:   "GST No.: 33DMSPD3047K1ZV",
		BadgeText:      "PROFORMA INVOICE",

		DefaultOrderBy: "VOLTA FASHIONS",
		IGSTFallback:   "IGST 12%",

		SignatureLines: []string{
			"For SRI CHAKRI TRADERS,",
			"T.J. DURGA",
			"Authorised Signatory",
		},
		Terms: []string{
			"Payments are to be made by A/C Payee's cheque or DD payable at Tirupur",
			"Claims of any nature whatsoever will lapse unless raised in writing within 5 days from the date of invoice",
			"Interest will be charged @ 24% from the date of Invoice.",
			"Subject to Tirupur Jurisdiction.",
		},
		AttentionHeading: "FOR YOUR KIND ATTENTION:",
		AttentionLines: []string{
			"payment must be within 30 days from the despatch day.( Pay by cheque)",
			"AFTER RECEIVING THE PI , PLEASE SEND POST DATED CHEQUE",
		},

		UPIAddress: "srichakritraders@okaxis",
	}
}
