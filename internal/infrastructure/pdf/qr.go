package pdf

import (
	"bytes"
	"fmt"
	"image/png"
	"net/url"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/shopspring/decimal"
)

// qrSource identifies which of the three payment-QR sources won the
// resolution. The order — static asset, then payload image, then generated —
// is a product decision, not incidental.
type qrSource int

const (
	qrNone qrSource = iota
	qrAsset
	qrPayload
	qrGenerated
)

// pickQRSource applies the resolution order given what is available.
func pickQRSource(assetAvailable, payloadSupplied bool) qrSource {
	switch {
	case assetAvailable:
		return qrAsset
	case payloadSupplied:
		return qrPayload
	default:
		return qrGenerated
	}
}

// buildPaymentURI builds the UPI payment URI encoded into a generated QR:
// payee address and name, the rounded grand total, and the PO number as the
// transaction note.
func buildPaymentURI(vpa, payeeName, poNumber string, grandTotal decimal.Decimal) string {
	v := url.Values{}
	v.Set("pa", vpa)
	v.Set("pn", payeeName)
	v.Set("am", grandTotal.StringFixed(2))
	v.Set("cu", "INR")
	if poNumber != "" {
		v.Set("tn", "PO "+poNumber)
	}
	return "upi://pay?" + v.Encode()
}

// generateQRPNG encodes content as a QR code scaled to sizePx square and
// returns it as PNG bytes.
func generateQRPNG(content string, sizePx int) ([]byte, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	scaled, err := barcode.Scale(code, sizePx, sizePx)
	if err != nil {
		return nil, fmt.Errorf("scale qr: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("png-encode qr: %w", err)
	}
	return buf.Bytes(), nil
}
