package invoicing

import (
	"github.com/kavinkharthik/proforma-api/internal/application/dto"
	"github.com/kavinkharthik/proforma-api/internal/domain"
)

// validateGenerate checks the from-scratch payload: receiver name and phone,
// a non-empty item list, and finite non-negative rate/quantity on every row.
// Errors identify the offending field (and 1-based row for items) so the
// caller can fix the exact input.
func validateGenerate(in *dto.GenerateInvoiceRequest, requireEmail bool) error {
	if in.ReceiverName == "" {
		return domain.MissingField("receiverName")
	}
	if in.ReceiverPhone == "" {
		return domain.MissingField("receiverPhone")
	}
	if in.Items == nil {
		return domain.MissingField("items")
	}
	if requireEmail && in.ToEmail == "" {
		return domain.MissingField("toEmail")
	}
	return validateItems(in.Items)
}

// validateTemplateFill checks the legacy overlay payload. Every field is
// mandatory in this mode; there is no optional degrade.
func validateTemplateFill(in *dto.GenerateInvoiceRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"receiverName", in.ReceiverName},
		{"receiverAddress", in.ReceiverAddress},
		{"receiverPhone", in.ReceiverPhone},
		{"receiverEmail", in.ReceiverEmail},
		{"receiverGstin", in.ReceiverGSTIN},
		{"poNumber", in.PONumber},
		{"poDate", in.PODate},
		{"transportMode", in.TransportMode},
		{"deliveryDate", in.DeliveryDate},
		{"destination", in.Destination},
		{"toEmail", in.ToEmail},
	}
	for _, f := range required {
		if f.value == "" {
			return domain.MissingField(f.name)
		}
	}
	if in.Items == nil {
		return domain.MissingField("items")
	}
	return validateItems(in.Items)
}

func validateItems(items []dto.LineItemRequest) error {
	if len(items) == 0 {
		return domain.ErrEmptyItems
	}
	for i, it := range items {
		if !it.Rate.Valid || it.Rate.Decimal.IsNegative() {
			return domain.InvalidRow("rate", i+1)
		}
		if !it.Quantity.Valid || it.Quantity.Decimal.IsNegative() {
			return domain.InvalidRow("quantity", i+1)
		}
	}
	return nil
}
