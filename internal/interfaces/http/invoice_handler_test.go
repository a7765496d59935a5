package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavinkharthik/proforma-api/internal/application/dto"
	"github.com/kavinkharthik/proforma-api/internal/application/invoicing"
	"github.com/kavinkharthik/proforma-api/internal/domain"
	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
	"github.com/kavinkharthik/proforma-api/internal/domain/tax"
	"github.com/kavinkharthik/proforma-api/pkg/logger"
)

type stubRenderer struct{ err error }

func (s stubRenderer) Render(context.Context, *entity.InvoiceRequest, tax.Breakdown) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-stub"), nil
}

type stubOverlayer struct{}

func (stubOverlayer) Overlay(context.Context, io.ReadSeeker, *entity.InvoiceRequest, tax.Breakdown) ([]byte, error) {
	return []byte("%PDF-filled"), nil
}

type stubMailer struct {
	err  error
	sent int
}

func (s *stubMailer) Send(context.Context, invoicing.OutboundMail) error {
	if s.err != nil {
		return s.err
	}
	s.sent++
	return nil
}

func testApp(mailer invoicing.Mailer) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := invoicing.NewUseCase(stubRenderer{}, stubOverlayer{}, mailer, nil, log)
	app := fiber.New()
	Router(app, RouterDeps{InvoiceUC: uc})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func validBody() map[string]any {
	return map[string]any{
		"receiverName":  "Buyer",
		"receiverPhone": "9876543210",
		"poNumber":      "PO-1",
		"items": []map[string]any{
			{"particulars": "fabric", "rate": 100, "quantity": 2},
		},
	}
}

func TestGeneratePDFEndpoint(t *testing.T) {
	app := testApp(&stubMailer{})

	b, _ := json.Marshal(validBody())
	req := httptest.NewRequest("POST", "/api/generate-pdf", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "proforma-invoice-PO-1.pdf")
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, []byte("%PDF-stub"), body)
}

func TestGeneratePDFMissingField(t *testing.T) {
	app := testApp(&stubMailer{})

	body := validBody()
	delete(body, "receiverName")
	code, out := postJSON(t, app, "/api/generate-pdf", body)

	assert.Equal(t, fiber.StatusBadRequest, code)
	var er dto.ErrorResponse
	require.NoError(t, json.Unmarshal(out, &er))
	assert.Equal(t, "VALIDATION", er.Code)
	assert.Contains(t, er.Message, "receiverName")
}

func TestGeneratePDFInvalidItemRow(t *testing.T) {
	app := testApp(&stubMailer{})

	body := validBody()
	body["items"] = []map[string]any{
		{"particulars": "ok", "rate": 100, "quantity": 2},
		{"particulars": "bad", "rate": "garbage", "quantity": 2},
	}
	code, out := postJSON(t, app, "/api/generate-pdf", body)

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, string(out), "invalid rate at row 2")
}

func TestGenerateAndEmailEndpoint(t *testing.T) {
	mailer := &stubMailer{}
	app := testApp(mailer)

	body := validBody()
	body["toEmail"] = "buyer@example.com"
	code, out := postJSON(t, app, "/api/generate-and-email-pdf", body)

	assert.Equal(t, fiber.StatusOK, code)
	var resp dto.EmailedResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 1, mailer.sent)
}

func TestGenerateAndEmailWithoutCredentials(t *testing.T) {
	app := testApp(&stubMailer{err: domain.ErrEmailNotConfigured})

	body := validBody()
	body["toEmail"] = "buyer@example.com"
	code, out := postJSON(t, app, "/api/generate-and-email-pdf", body)

	assert.Equal(t, fiber.StatusInternalServerError, code)
	var er dto.ErrorResponse
	require.NoError(t, json.Unmarshal(out, &er))
	assert.Equal(t, "EMAIL_CONFIG", er.Code)
}

func TestFillTemplateAndEmailEndpoint(t *testing.T) {
	mailer := &stubMailer{}
	app := testApp(mailer)

	payload := map[string]any{
		"receiverName":    "Buyer",
		"receiverAddress": "12 Estate Rd",
		"receiverPhone":   "9876543210",
		"receiverEmail":   "buyer@example.com",
		"receiverGstin":   "33AAAAA0000A1Z5",
		"poNumber":        "PO-1",
		"poDate":          "2025-04-01",
		"transportMode":   "Road",
		"deliveryDate":    "2025-04-10",
		"destination":     "Tirupur",
		"toEmail":         "buyer@example.com",
		"items": []map[string]any{
			{"particulars": "fabric", "rate": 100, "quantity": 2},
		},
	}
	payloadJSON, err := json.Marshal(payload)
	require.NoError(t, err)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("template", "form.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-template"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("payload", string(payloadJSON)))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/generate-and-email", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, mailer.sent)
}

func TestFillTemplateAndEmailWithoutTemplate(t *testing.T) {
	app := testApp(&stubMailer{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("payload", "{}"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/generate-and-email", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Template PDF is required")
}
