// Package quote is the quote engine: a pure pipeline from one booking
// submission plus the reference tables to a cost breakdown, an ingredient
// demand model, a supplier-grouped purchase list, and rendered output for
// the outbound message. Identical inputs always produce identical results;
// nothing here touches the clock, the network, or shared state.
package quote

import (
	"bartending-quote/quote/booking"
	"bartending-quote/quote/costing"
	"bartending-quote/quote/demand"
	"bartending-quote/quote/shopping"
	"bartending-quote/refdata"
)

// DemandLine is one flattened demand-map entry for audit output.
type DemandLine struct {
	Ingredient string  `json:"ingredient"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
}

// Result is the complete output of one engine invocation.
type Result struct {
	Request booking.Request `json:"request"`
	Plan    demand.Plan     `json:"plan"`

	Demand         []DemandLine             `json:"demand"`
	ShoppingList   []shopping.Entry         `json:"shopping_list"`
	SupplierOrders []shopping.SupplierOrder `json:"supplier_orders"`
	Costs          costing.Breakdown        `json:"costs"`

	// Warnings record every lookup that degraded to a fallback. They are
	// informational; the engine has no fatal error path.
	Warnings []string `json:"warnings,omitempty"`
}

// Engine runs the quote pipeline with a registered set of demand sources.
type Engine struct {
	sources []demand.Source
}

// NewEngine creates an engine with the built-in demand sources.
func NewEngine() *Engine {
	return &Engine{sources: demand.DefaultSources()}
}

// RegisterSource adds a demand source after the built-in ones.
func (e *Engine) RegisterSource(s demand.Source) {
	e.sources = append(e.sources, s)
}

// Compute runs the full pipeline. It never fails: malformed numerics are
// coerced, unknown lookups degrade per category, and every degradation is
// reported in Result.Warnings.
func (e *Engine) Compute(req booking.Request, ref *refdata.Tables) *Result {
	req = req.Sanitize(ref.Pricing.MinimumHours)

	result := &Result{Request: req}
	result.Costs = costing.LaborAndFees(req, ref.Pricing)

	plan, warnings := demand.BuildPlan(req, ref)
	result.Plan = plan
	result.Warnings = append(result.Warnings, warnings...)

	m := demand.NewMap()
	if req.Guests > 0 {
		for _, src := range e.sources {
			result.Warnings = append(result.Warnings, src.Contribute(req, plan, ref, m)...)
		}
	}

	for _, k := range m.Keys() {
		result.Demand = append(result.Demand, DemandLine{
			Ingredient: k.Ingredient,
			Unit:       k.Unit,
			Quantity:   m.Get(k),
		})
	}

	result.ShoppingList = shopping.BuildList(m, ref)
	result.SupplierOrders = shopping.GroupBySupplier(result.ShoppingList, ref.Suppliers)
	result.Warnings = append(result.Warnings,
		result.Costs.PriceProducts(result.ShoppingList, ref.Catalog)...)

	return result
}
