package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
)

// templatePDF builds a minimal single-page PDF to overlay onto.
func templatePDF(t *testing.T) []byte {
	t.Helper()
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Text(50, 50, "PRE-PRINTED FORM")
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestOverlayFillsTemplate(t *testing.T) {
	inv := sampleInvoice(3)
	totals := tax.Compute(inv.Items, inv.CGSTRate, inv.SGSTRate, inv.IGSTRate)

	out, err := NewOverlayer().Overlay(context.Background(), bytes.NewReader(templatePDF(t)), inv, totals)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 500)
}

func TestOverlayMalformedTemplate(t *testing.T) {
	inv := sampleInvoice(1)
	totals := tax.Compute(inv.Items, inv.CGSTRate, inv.SGSTRate, inv.IGSTRate)

	out, err := NewOverlayer().Overlay(context.Background(), bytes.NewReader([]byte("not a pdf")), inv, totals)
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestOverlayCancelledContext(t *testing.T) {
	inv := sampleInvoice(1)
	totals := tax.Compute(inv.Items, inv.CGSTRate, inv.SGSTRate, inv.IGSTRate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewOverlayer().Overlay(ctx, bytes.NewReader(templatePDF(t)), inv, totals)
	assert.ErrorIs(t, err, context.Canceled)
}
