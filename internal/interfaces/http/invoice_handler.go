package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kavinkharthik/proforma-api/internal/application/dto"
	"github.com/kavinkharthik/proforma-api/internal/application/invoicing"
	"github.com/kavinkharthik/proforma-api/internal/domain"
)

// InvoiceHandler serves the invoice rendering endpoints.
type InvoiceHandler struct {
	uc *invoicing.UseCase
}

func NewInvoiceHandler(uc *invoicing.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// GeneratePDF renders the proforma invoice from scratch and returns it as a
// download.
// POST /api/generate-pdf
func (h *InvoiceHandler) GeneratePDF(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	doc, err := h.uc.Generate(c.Context(), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Bytes)
}

// GenerateAndEmail renders from scratch and emails the document to the
// payload's recipient.
// POST /api/generate-and-email-pdf
func (h *InvoiceHandler) GenerateAndEmail(c *fiber.Ctx) error {
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if _, err := h.uc.GenerateAndEmail(c.Context(), &in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.EmailedResponse{OK: true, Message: "PDF generated and emailed successfully"})
}

// FillTemplateAndEmail is the legacy mode: multipart upload with a "template"
// PDF and a "payload" JSON field; the filled document is emailed, not
// returned.
// POST /api/generate-and-email
func (h *InvoiceHandler) FillTemplateAndEmail(c *fiber.Ctx) error {
	fh, err := c.FormFile("template")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Template PDF is required"})
	}
	template, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "template cannot be read"})
	}
	defer template.Close()

	payload := c.FormValue("payload")
	if payload == "" {
		payload = "{}"
	}
	var in dto.GenerateInvoiceRequest
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid payload JSON"})
	}

	if err := h.uc.FillTemplateAndEmail(c.Context(), template, &in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.EmailedResponse{OK: true})
}

// errorResponse maps domain errors to HTTP statuses. Validation errors keep
// their message so the caller learns the exact offending field or row.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEmptyItems), errors.Is(err, domain.ErrBadImage):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EMAIL_CONFIG", Message: "email credentials not configured"})
	case errors.Is(err, domain.ErrRenderFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
