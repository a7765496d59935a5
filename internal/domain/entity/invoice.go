package entity

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kavinkharthik/proforma-api/internal/domain"
)

// InvoiceRequest is everything a single render needs. It is built once from
// the incoming payload and never mutated afterwards; concurrent renders each
// hold their own value.
type InvoiceRequest struct {
	ReceiverName    string
	ReceiverAddress string
	ReceiverPhone   string
	ReceiverEmail   string
	ReceiverGSTIN   string

	PONumber      string
	PODate        string // kept as received, usually YYYY-MM-DD
	PIDate        string // printed date; falls back to PODate, then the render date
	TransportMode string
	DeliveryDate  string
	Destination   string
	OrderBy       string

	Items []LineItem

	CGSTRate decimal.Decimal
	SGSTRate decimal.Decimal
	IGSTRate decimal.Decimal

	ToEmail      string
	EmailSubject string
	EmailBody    string

	Logo      *EmbeddedImage
	PaymentQR *EmbeddedImage
}

// LineItem is one row of the invoice table. Amounts derive from it; it is
// immutable once constructed.
type LineItem struct {
	Particulars string
	HSN         string
	DCNo        string
	Rate        decimal.Decimal
	Quantity    decimal.Decimal
}

// Amount returns rate × quantity.
func (li LineItem) Amount() decimal.Decimal {
	return li.Rate.Mul(li.Quantity)
}

// EmbeddedImage is a decodable raster image supplied with the payload.
// Format is the gofpdf image type: "PNG" or "JPG".
type EmbeddedImage struct {
	Format string
	Data   []byte
}

var dataURLRe = regexp.MustCompile(`(?i)^data:image/(png|jpeg|jpg);base64,(.+)$`)

// ParseDataURL decodes a data:image/...;base64 URL into an EmbeddedImage.
// An empty input yields (nil, nil): absent images are simply not drawn.
// A malformed URL or bad base64 is a render-input error.
func ParseDataURL(s string) (*EmbeddedImage, error) {
	if s == "" {
		return nil, nil
	}
	m := dataURLRe.FindStringSubmatch(s)
	if m == nil {
		return nil, domain.ErrBadImage
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, domain.ErrBadImage
	}
	format := "PNG"
	if ext := strings.ToLower(m[1]); ext == "jpeg" || ext == "jpg" {
		format = "JPG"
	}
	return &EmbeddedImage{Format: format, Data: data}, nil
}
