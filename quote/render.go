package quote

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"
)

// Rendering for the outbound message: fixed-point currency strings and the
// same simple HTML tables the email template has always interpolated.
// Currency fields carry no symbol; the template supplies it.

func currency(d decimal.Decimal) string { return d.StringFixed(2) }

// CostTableHTML renders the cost breakdown as a one-row table.
func (r *Result) CostTableHTML() string {
	var sb strings.Builder
	sb.WriteString(`<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;">`)
	sb.WriteString(`<tr><th>Labor</th><th>Prep</th><th>Fees</th><th>Product</th><th>Total</th></tr>`)
	fmt.Fprintf(&sb, `<tr><td>$%s</td><td>$%s</td><td>$%s</td><td>$%s</td><td><strong>$%s</strong></td></tr>`,
		currency(r.Costs.LaborCost),
		currency(r.Costs.PrepCost),
		currency(r.Costs.Fees),
		currency(r.Costs.ProductTotal),
		currency(r.Costs.GrandTotal),
	)
	sb.WriteString(`</table>`)
	return sb.String()
}

// ShoppingListHTML renders the purchase list as item/quantity/unit rows.
func (r *Result) ShoppingListHTML() string {
	var sb strings.Builder
	sb.WriteString(`<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;width:100%;">`)
	sb.WriteString(`<thead><tr style="background:#f2f2f2;"><th>Item</th><th>Quantity</th><th>Unit</th></tr></thead><tbody>`)
	for _, e := range r.ShoppingList {
		fmt.Fprintf(&sb, `<tr><td>%s</td><td>%d</td><td>%s</td></tr>`,
			html.EscapeString(e.Item), e.Quantity, html.EscapeString(e.Unit))
	}
	sb.WriteString(`</tbody></table>`)
	return sb.String()
}

// SupplierOrdersHTML renders the supplier-grouped orders.
func (r *Result) SupplierOrdersHTML() string {
	var sb strings.Builder
	sb.WriteString(`<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;width:100%;">`)
	sb.WriteString(`<thead><tr style="background:#f2f2f2;"><th>Supplier</th><th>Item</th><th>Quantity</th><th>Unit</th></tr></thead><tbody>`)
	for _, o := range r.SupplierOrders {
		fmt.Fprintf(&sb, `<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>`,
			html.EscapeString(o.Supplier), html.EscapeString(o.Item), o.Quantity, html.EscapeString(o.Unit))
	}
	sb.WriteString(`</tbody></table>`)
	return sb.String()
}

// ClientEmail renders the plain-text block sent back to the client.
func (r *Result) ClientEmail() string {
	cocktails := "N/A"
	if len(r.Request.Cocktails) > 0 {
		cocktails = strings.Join(r.Request.Cocktails, ", ")
	}
	return strings.TrimSpace(fmt.Sprintf(`Hi %s,

Thank you for your inquiry — we'd be honoured to serve your event.

Based on your details:
• Guests: %d
• Bar Type: %s
• Cocktails: %s

Here's your quote:

%s

We're happy to jump on a quick call to refine the menu or adjust quantities.

Cheers,
Two Sailors Bartending`,
		r.Request.Name,
		r.Request.Guests,
		r.Request.BarType,
		cocktails,
		r.CostTableHTML(),
	))
}

// AuditJSON dumps the inputs and every derived field as indented JSON for
// debugging the outbound message. Marshalling a Result is deterministic:
// all slices are built in sorted order and no field depends on the clock.
func (r *Result) AuditJSON() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		// Result contains only marshalable types; this is unreachable in
		// practice but the method must not panic.
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(data)
}
