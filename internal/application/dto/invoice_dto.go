package dto

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest body for POST /api/generate-pdf and
// POST /api/generate-and-email-pdf. Field names match the historical payload.
type GenerateInvoiceRequest struct {
	ReceiverName    string `json:"receiverName"`
	ReceiverAddress string `json:"receiverAddress,omitempty"`
	ReceiverPhone   string `json:"receiverPhone"`
	ReceiverEmail   string `json:"receiverEmail,omitempty"`
	ReceiverGSTIN   string `json:"receiverGstin,omitempty"`

	PONumber      string `json:"poNumber,omitempty"`
	PODate        string `json:"poDate,omitempty"` // YYYY-MM-DD
	PIDate        string `json:"piDate,omitempty"` // overrides poDate on the printed document
	TransportMode string `json:"transportMode,omitempty"`
	DeliveryDate  string `json:"deliveryDate,omitempty"`
	Destination   string `json:"destination,omitempty"`
	OrderBy       string `json:"orderBy,omitempty"`

	Items []LineItemRequest `json:"items"`

	CGSTRate Number `json:"cgstRate,omitempty"`
	SGSTRate Number `json:"sgstRate,omitempty"`
	IGSTRate Number `json:"igstRate,omitempty"`

	ToEmail      string `json:"toEmail,omitempty"`
	EmailSubject string `json:"emailSubject,omitempty"`
	EmailBody    string `json:"emailBody,omitempty"`

	LogoDataURL      string `json:"logoDataUrl,omitempty"`
	PaymentQRDataURL string `json:"paymentQrDataUrl,omitempty"`
}

// LineItemRequest one table row of the payload.
type LineItemRequest struct {
	Particulars string `json:"particulars"`
	HSN         string `json:"hsn,omitempty"`
	DCNo        string `json:"dcNo,omitempty"`
	Rate        Number `json:"rate"`
	Quantity    Number `json:"quantity"`
}

// ErrorResponse error body for all endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// EmailedResponse success body for the email endpoints.
type EmailedResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// Number is a lenient monetary value. Payloads historically carried rates and
// quantities as JSON numbers or as strings, and garbage degraded to zero
// instead of failing the parse. Valid reports whether a parseable value was
// actually supplied, which lets validation reject malformed line items while
// absent tax rates silently default to zero.
type Number struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NumberFrom builds a valid Number, mostly for tests.
func NumberFrom(d decimal.Decimal) Number {
	return Number{Decimal: d, Valid: true}
}

// UnmarshalJSON never returns an error: JSON numbers and numeric strings
// parse, everything else (null, objects, non-numeric strings) is zero with
// Valid=false.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" || s == "null" {
		*n = Number{}
		return nil
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		*n = Number{}
		return nil
	}
	*n = Number{Decimal: d, Valid: true}
	return nil
}

// MarshalJSON writes the plain decimal value.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}
