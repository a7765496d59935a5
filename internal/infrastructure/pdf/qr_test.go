package pdf

import (
	"bytes"
	"image/png"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickQRSourceOrder(t *testing.T) {
	assert.Equal(t, qrAsset, pickQRSource(true, true))
	assert.Equal(t, qrAsset, pickQRSource(true, false))
	assert.Equal(t, qrPayload, pickQRSource(false, true))
	assert.Equal(t, qrGenerated, pickQRSource(false, false))
}

func TestBuildPaymentURI(t *testing.T) {
	uri := buildPaymentURI("trader@okaxis", "SRI CHAKRI TRADERS", "PO-77", decimal.RequireFromString("1234.5"))
	require.True(t, strings.HasPrefix(uri, "upi://pay?"))

	q, err := url.ParseQuery(strings.TrimPrefix(uri, "upi://pay?"))
	require.NoError(t, err)
	assert.Equal(t, "trader@okaxis", q.Get("pa"))
	assert.Equal(t, "SRI CHAKRI TRADERS", q.Get("pn"))
	assert.Equal(t, "1234.50", q.Get("am"))
	assert.Equal(t, "INR", q.Get("cu"))
	assert.Equal(t, "PO PO-77", q.Get("tn"))
}

func TestBuildPaymentURIWithoutPO(t *testing.T) {
	uri := buildPaymentURI("trader@okaxis", "X", "", decimal.NewFromInt(10))
	q, err := url.ParseQuery(strings.TrimPrefix(uri, "upi://pay?"))
	require.NoError(t, err)
	assert.Empty(t, q.Get("tn"))
}

func TestGenerateQRPNG(t *testing.T) {
	data, err := generateQRPNG("upi://pay?pa=x@y", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}
