// Package costing computes the labor, fee, and product sides of a quote.
// All currency amounts are decimal; floats never touch money directly.
package costing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"bartending-quote/quote/booking"
	"bartending-quote/quote/shopping"
	"bartending-quote/refdata"
)

// Breakdown is the full cost side of a quote. Every field is recomputed
// fresh per invocation; nothing here has its own lifecycle.
type Breakdown struct {
	BartenderCount  int     `json:"bartender_count"`
	TotalLaborHours float64 `json:"total_labor_hours"`
	PrepHours       float64 `json:"prep_hours"`

	LaborCost    decimal.Decimal `json:"labor_cost"`
	PrepCost     decimal.Decimal `json:"prep_cost"`
	BookingFee   decimal.Decimal `json:"booking_fee"`
	InsuranceFee decimal.Decimal `json:"insurance_fee"`
	TravelFee    decimal.Decimal `json:"travel_fee"`
	Fees         decimal.Decimal `json:"fees"`

	NonProductSubtotal decimal.Decimal `json:"non_product_subtotal"`

	ProductAlcoholPreTax    decimal.Decimal `json:"product_alcohol_pre_tax"`
	ProductNonAlcoholPreTax decimal.Decimal `json:"product_non_alcohol_pre_tax"`
	ProductPreTax           decimal.Decimal `json:"product_pre_tax"`
	Tax                     decimal.Decimal `json:"tax"`
	ProductTotal            decimal.Decimal `json:"product_total"`

	GrandTotal decimal.Decimal `json:"grand_total"`
}

// LaborAndFees computes the non-product side of the quote: staffing,
// service plus setup and teardown hours, prep, and fixed plus travel fees.
func LaborAndFees(req booking.Request, p refdata.PricingTable) Breakdown {
	var b Breakdown

	b.BartenderCount = 1
	if p.StaffingDivisor > 0 {
		b.BartenderCount = int(math.Ceil(float64(req.Guests) / float64(p.StaffingDivisor)))
		if b.BartenderCount < 1 {
			b.BartenderCount = 1
		}
	}

	b.TotalLaborHours = req.ServiceHours + p.SetupHours + p.TeardownHours

	rate := p.OpenBarRate
	prepDefault := p.Prep.DefaultHoursOpen
	if req.BarType == booking.CashBar {
		rate = p.CashBarRate
		prepDefault = p.Prep.DefaultHoursCash
	}

	b.LaborCost = rate.
		Mul(decimal.NewFromInt(int64(b.BartenderCount))).
		Mul(decimal.NewFromFloat(b.TotalLaborHours)).
		Round(2)

	b.PrepHours = math.Min(prepDefault, p.Prep.MaxHours)
	b.PrepCost = decimal.Zero
	if p.Prep.Enabled {
		b.PrepCost = p.Prep.RatePerHour.Mul(decimal.NewFromFloat(b.PrepHours)).Round(2)
	}

	b.BookingFee = p.BookingFee
	b.InsuranceFee = p.InsuranceFee
	b.TravelFee = p.TravelRatePerKm.Mul(decimal.NewFromFloat(req.TravelKm)).Round(2)
	b.Fees = b.BookingFee.Add(b.InsuranceFee).Add(b.TravelFee)

	b.NonProductSubtotal = b.LaborCost.Add(b.PrepCost).Add(b.Fees)
	b.GrandTotal = b.NonProductSubtotal
	return b
}

// PriceProducts prices the shopping list against the catalog and folds the
// result into the breakdown. A nil catalog leaves the product side at zero.
// Missing prices contribute zero cost and a warning, never a failure.
func (b *Breakdown) PriceProducts(entries []shopping.Entry, catalog *refdata.CostCatalog) []string {
	if catalog == nil {
		b.GrandTotal = b.NonProductSubtotal.Add(b.ProductTotal)
		return nil
	}
	var warnings []string

	alcohol := decimal.Zero
	nonAlcohol := decimal.Zero

	for _, e := range entries {
		line, ok := lineCost(e, catalog)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no catalog price for %q, costed at zero", e.Item))
			continue
		}
		if e.Category.IsAlcohol() {
			alcohol = alcohol.Add(line)
		} else {
			nonAlcohol = nonAlcohol.Add(line)
		}
	}

	b.ProductAlcoholPreTax = alcohol
	b.ProductNonAlcoholPreTax = nonAlcohol
	b.ProductPreTax = alcohol.Add(nonAlcohol)
	b.Tax = b.ProductPreTax.Mul(catalog.TaxRate).Round(2)
	b.ProductTotal = b.ProductPreTax.Add(b.Tax)
	b.GrandTotal = b.NonProductSubtotal.Add(b.ProductTotal)
	return warnings
}

// lineCost prices one shopping-list line. Case-priced items buy whole
// cases; white/red wine falls back to the generic wine entry.
func lineCost(e shopping.Entry, catalog *refdata.CostCatalog) (decimal.Decimal, bool) {
	if cp, ok := catalog.Cases[e.Item]; ok && cp.UnitsPerCase > 0 {
		cases := (e.Quantity + cp.UnitsPerCase - 1) / cp.UnitsPerCase
		return cp.CaseCost.Mul(decimal.NewFromInt(int64(cases))).Round(2), true
	}

	price, ok := catalog.UnitPrice(e.Item)
	if !ok && e.Category == shopping.CategoryWine && catalog.GenericWineItem != "" {
		price, ok = catalog.UnitPrice(catalog.GenericWineItem)
	}
	if !ok {
		return decimal.Zero, false
	}
	return price.Mul(decimal.NewFromInt(int64(e.Quantity))).Round(2), true
}
