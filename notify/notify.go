// Package notify is the boundary to the outbound-message collaborator: a
// transactional-email provider invoked with a template id and a flat field
// mapping. The engine output is flattened here; delivery itself is opaque.
package notify

import (
	"context"

	"bartending-quote/quote"
)

// Message is one outbound email: an opaque template id plus the fields the
// template interpolates.
type Message struct {
	TemplateID string            `json:"template_id"`
	To         string            `json:"to"`
	Fields     map[string]string `json:"fields"`
}

// Sender dispatches a message to the delivery collaborator. Implementations
// may queue; delivery failures surface to the caller, never to the engine.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// BuildFields flattens a quote result into the field map the message
// template expects. Currency fields carry no symbol; the template adds it.
func BuildFields(r *quote.Result, quoteRef string) map[string]string {
	cocktails := ""
	for i, c := range r.Request.Cocktails {
		if i > 0 {
			cocktails += ", "
		}
		cocktails += c
	}
	return map[string]string{
		"quoteRef": quoteRef,
		"name":     r.Request.Name,
		"email":    r.Request.Email,
		"date":     r.Request.Date,
		"location": r.Request.Location,
		"occasion": r.Request.Occasion,
		"barType":  string(r.Request.BarType),

		"laborCost":   r.Costs.LaborCost.StringFixed(2),
		"prepCost":    r.Costs.PrepCost.StringFixed(2),
		"fees":        r.Costs.Fees.StringFixed(2),
		"productCost": r.Costs.ProductTotal.StringFixed(2),
		"totalCost":   r.Costs.GrandTotal.StringFixed(2),

		"cocktails":            cocktails,
		"clientEmail":          r.ClientEmail(),
		"costTableHTML":        r.CostTableHTML(),
		"shoppingListHTML":     r.ShoppingListHTML(),
		"ordersBySupplierHTML": r.SupplierOrdersHTML(),
		"quoteDetails":         r.AuditJSON(),
	}
}
