package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kavinkharthik/proforma-api/internal/application/invoicing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	InvoiceUC *invoicing.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	handler := NewInvoiceHandler(deps.InvoiceUC)
	api.Post("/generate-pdf", handler.GeneratePDF)
	api.Post("/generate-and-email-pdf", handler.GenerateAndEmail)

	// Legacy template-fill mode, kept for existing clients.
	api.Post("/generate-and-email", handler.FillTemplateAndEmail)
}
