// Package tax computes the monetary totals of a proforma invoice: subtotal,
// the three GST components, gross, and the rounding of the grand total to a
// whole rupee.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/kavinkharthik/proforma-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Breakdown holds every computed total of one invoice.
//
// Invariants: Gross = Subtotal + TaxTotal, GrandTotal is Gross rounded half
// away from zero to an integer, RoundedOff = GrandTotal − Gross and its
// magnitude is always below one rupee.
type Breakdown struct {
	Subtotal   decimal.Decimal
	CGST       decimal.Decimal
	SGST       decimal.Decimal
	IGST       decimal.Decimal
	TaxTotal   decimal.Decimal
	Gross      decimal.Decimal
	GrandTotal decimal.Decimal
	RoundedOff decimal.Decimal
}

// Compute derives the Breakdown from the line items and the three GST
// percentages. Rates default to zero upstream when absent; negative rates are
// not rejected here — non-negativity is enforced by request validation before
// this package runs.
func Compute(items []entity.LineItem, cgstRate, sgstRate, igstRate decimal.Decimal) Breakdown {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount())
	}

	cgst := subtotal.Mul(cgstRate).Div(hundred)
	sgst := subtotal.Mul(sgstRate).Div(hundred)
	igst := subtotal.Mul(igstRate).Div(hundred)
	taxTotal := cgst.Add(sgst).Add(igst)

	gross := subtotal.Add(taxTotal)
	grand := gross.Round(0) // half away from zero
	return Breakdown{
		Subtotal:   subtotal,
		CGST:       cgst,
		SGST:       sgst,
		IGST:       igst,
		TaxTotal:   taxTotal,
		Gross:      gross,
		GrandTotal: grand,
		RoundedOff: grand.Sub(gross),
	}
}
