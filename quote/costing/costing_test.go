package costing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"bartending-quote/quote/booking"
	"bartending-quote/quote/shopping"
	"bartending-quote/refdata"
)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLaborAndFeesOpenBar(t *testing.T) {
	ref := refdata.Default()
	req := booking.Request{
		Guests:       150,
		BarType:      booking.OpenBar,
		ServiceHours: 6,
		TravelKm:     20,
	}

	b := LaborAndFees(req, ref.Pricing)

	if b.BartenderCount != 3 {
		t.Errorf("bartenders = %d, want 3", b.BartenderCount)
	}
	if b.TotalLaborHours != 8 {
		t.Errorf("labor hours = %g, want 6 service + 1 setup + 1 teardown", b.TotalLaborHours)
	}
	if !b.LaborCost.Equal(money("1320")) {
		t.Errorf("labor = %s, want 1320.00", b.LaborCost)
	}
	if b.PrepHours != 4 || !b.PrepCost.Equal(money("140")) {
		t.Errorf("prep = %g h / %s, want 4 h / 140.00", b.PrepHours, b.PrepCost)
	}
	if !b.TravelFee.Equal(money("17")) {
		t.Errorf("travel = %s, want 17.00", b.TravelFee)
	}
	if !b.Fees.Equal(money("267")) {
		t.Errorf("fees = %s, want 150 + 100 + 17", b.Fees)
	}
	if !b.NonProductSubtotal.Equal(money("1727")) {
		t.Errorf("non-product subtotal = %s, want 1727.00", b.NonProductSubtotal)
	}
	if !b.GrandTotal.Equal(b.NonProductSubtotal) {
		t.Errorf("grand total must equal the subtotal before products are priced")
	}
}

func TestLaborAndFeesCashBarUsesCashRates(t *testing.T) {
	ref := refdata.Default()
	req := booking.Request{Guests: 100, BarType: booking.CashBar, ServiceHours: 4}

	b := LaborAndFees(req, ref.Pricing)

	// 45/h cash rate × 2 bartenders × 6 hours.
	if !b.LaborCost.Equal(money("540")) {
		t.Errorf("labor = %s, want 540.00", b.LaborCost)
	}
	if b.PrepHours != 2 || !b.PrepCost.Equal(money("70")) {
		t.Errorf("cash bar prep = %g h / %s, want 2 h / 70.00", b.PrepHours, b.PrepCost)
	}
}

func TestLaborAndFeesMinimumOneBartender(t *testing.T) {
	ref := refdata.Default()
	b := LaborAndFees(booking.Request{Guests: 12, ServiceHours: 3}, ref.Pricing)
	if b.BartenderCount != 1 {
		t.Fatalf("bartenders = %d, want floor of 1", b.BartenderCount)
	}
}

func TestLaborAndFeesPrepDisabled(t *testing.T) {
	ref := refdata.Default()
	ref.Pricing.Prep.Enabled = false
	b := LaborAndFees(booking.Request{Guests: 50, ServiceHours: 4}, ref.Pricing)
	if !b.PrepCost.IsZero() {
		t.Fatalf("prep cost = %s with prep disabled", b.PrepCost)
	}
}

func TestBartenderCountMonotonic(t *testing.T) {
	ref := refdata.Default()
	prev := 0
	for guests := 1; guests <= 400; guests++ {
		b := LaborAndFees(booking.Request{Guests: guests, ServiceHours: 4}, ref.Pricing)
		if b.BartenderCount < prev {
			t.Fatalf("guests=%d: bartender count dropped from %d to %d", guests, prev, b.BartenderCount)
		}
		prev = b.BartenderCount
	}
}

func TestPriceProductsNilCatalog(t *testing.T) {
	ref := refdata.Default()
	b := LaborAndFees(booking.Request{Guests: 50, ServiceHours: 4}, ref.Pricing)

	warnings := b.PriceProducts([]shopping.Entry{
		{Item: "Vodka", Quantity: 2, Unit: "bottles", Category: shopping.CategoryWellSpirit},
	}, nil)

	if warnings != nil {
		t.Fatalf("nil catalog must not warn: %v", warnings)
	}
	if !b.ProductTotal.IsZero() || !b.GrandTotal.Equal(b.NonProductSubtotal) {
		t.Fatalf("nil catalog must leave the product side at zero")
	}
}

func TestPriceProductsCasePricingRoundsUp(t *testing.T) {
	catalog := refdata.Default().Catalog
	var b Breakdown

	b.PriceProducts([]shopping.Entry{
		{Item: "Beer (cans)", Quantity: 30, Unit: "cans", Category: shopping.CategoryBeer},
	}, catalog)

	// 30 cans with 24 per case buys 2 cases.
	if !b.ProductAlcoholPreTax.Equal(money("109.98")) {
		t.Fatalf("beer = %s, want 2 × 54.99", b.ProductAlcoholPreTax)
	}
}

func TestPriceProductsGenericWineFallback(t *testing.T) {
	catalog := refdata.Default().Catalog
	var b Breakdown

	warnings := b.PriceProducts([]shopping.Entry{
		{Item: "White Wine (750ml)", Quantity: 3, Unit: "bottles", Category: shopping.CategoryWine},
	}, catalog)

	if len(warnings) != 0 {
		t.Fatalf("generic wine fallback must not warn: %v", warnings)
	}
	if !b.ProductAlcoholPreTax.Equal(money("47.97")) {
		t.Fatalf("wine = %s, want 3 × 15.99 generic price", b.ProductAlcoholPreTax)
	}
}

func TestPriceProductsMissingPriceWarnsAndContinues(t *testing.T) {
	catalog := refdata.Default().Catalog
	var b Breakdown

	warnings := b.PriceProducts([]shopping.Entry{
		{Item: "Glow Dust", Quantity: 1, Unit: "scoops", Category: shopping.CategoryOther},
		{Item: "Limes", Quantity: 10, Unit: "pcs", Category: shopping.CategoryGarnish},
	}, catalog)

	if len(warnings) != 1 || !strings.Contains(warnings[0], "Glow Dust") {
		t.Fatalf("want one warning naming the unpriced item, got %v", warnings)
	}
	if !b.ProductNonAlcoholPreTax.Equal(money("7.90")) {
		t.Fatalf("limes = %s, want 10 × 0.79", b.ProductNonAlcoholPreTax)
	}
}

func TestPriceProductsSplitsAlcoholAndTax(t *testing.T) {
	ref := refdata.Default()
	b := LaborAndFees(booking.Request{Guests: 50, ServiceHours: 4}, ref.Pricing)

	entries := []shopping.Entry{
		{Item: "Vodka", Quantity: 2, Unit: "bottles", Category: shopping.CategoryWellSpirit},
		{Item: "Coke", Quantity: 3, Unit: "L", Category: shopping.CategoryMixer},
	}
	b.PriceProducts(entries, ref.Catalog)

	if !b.ProductAlcoholPreTax.Equal(money("85.98")) {
		t.Errorf("alcohol = %s, want 2 × 42.99", b.ProductAlcoholPreTax)
	}
	if !b.ProductNonAlcoholPreTax.Equal(money("6.87")) {
		t.Errorf("non-alcohol = %s, want 3 × 2.29", b.ProductNonAlcoholPreTax)
	}
	if !b.ProductPreTax.Equal(money("92.85")) {
		t.Errorf("pre-tax = %s", b.ProductPreTax)
	}
	if !b.Tax.Equal(money("13.93")) {
		t.Errorf("tax = %s, want 15%% of 92.85 rounded", b.Tax)
	}
	if !b.ProductTotal.Equal(b.ProductPreTax.Add(b.Tax)) {
		t.Errorf("product total must be pre-tax plus tax")
	}
	if !b.GrandTotal.Equal(b.NonProductSubtotal.Add(b.ProductTotal)) {
		t.Errorf("grand total identity broken: %s != %s + %s",
			b.GrandTotal, b.NonProductSubtotal, b.ProductTotal)
	}
}
