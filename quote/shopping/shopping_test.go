package shopping

import (
	"testing"

	"bartending-quote/quote/demand"
	"bartending-quote/refdata"
)

func TestClassify(t *testing.T) {
	ref := refdata.Default()
	cases := []struct {
		key  demand.Key
		want Category
	}{
		{demand.Key{Ingredient: demand.ItemWhiteWine, Unit: demand.UnitBottle}, CategoryWine},
		{demand.Key{Ingredient: demand.ItemBeer, Unit: demand.UnitCan}, CategoryBeer},
		{demand.Key{Ingredient: demand.ItemIce, Unit: demand.UnitLbs}, CategoryIce},
		{demand.Key{Ingredient: "Angostura Bitters", Unit: demand.UnitDash}, CategoryBitters},
		{demand.Key{Ingredient: "Vodka", Unit: demand.UnitOz}, CategoryWellSpirit},
		{demand.Key{Ingredient: "Tequila", Unit: demand.UnitOz}, CategorySpirit},
		{demand.Key{Ingredient: "Prosecco (750ml)", Unit: demand.UnitOz}, CategorySpirit},
		{demand.Key{Ingredient: "Lime Juice", Unit: demand.UnitOz}, CategoryMixer},
		{demand.Key{Ingredient: "Simple Syrup", Unit: demand.UnitOz}, CategorySyrup},
		{demand.Key{Ingredient: "Lime Wedge", Unit: demand.UnitEach}, CategoryGarnish},
		{demand.Key{Ingredient: "Cocktail Umbrella", Unit: demand.UnitEach}, CategoryEach},
		{demand.Key{Ingredient: "Mystery Goo", Unit: "vials"}, CategoryOther},
	}
	for _, tc := range cases {
		if got := Classify(tc.key, ref); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestConvertBottleFormats(t *testing.T) {
	ref := refdata.Default()

	// Well spirits buy 1.14 L bottles (38.5 oz).
	e := Convert(demand.Key{Ingredient: "Vodka", Unit: demand.UnitOz}, 89.4, ref)
	if e.Quantity != 3 || e.Unit != "bottles" {
		t.Errorf("vodka: %+v, want 3 bottles", e)
	}
	// Everything else buys 750 mL bottles (25.4 oz).
	e = Convert(demand.Key{Ingredient: "Tequila", Unit: demand.UnitOz}, 99, ref)
	if e.Quantity != 4 {
		t.Errorf("tequila: %+v, want 4 bottles", e)
	}
}

func TestConvertMixersAndSyrups(t *testing.T) {
	ref := refdata.Default()

	e := Convert(demand.Key{Ingredient: "Coke", Unit: demand.UnitOz}, 208.6, ref)
	if e.Quantity != 7 || e.Unit != "L" {
		t.Errorf("coke: %+v, want 7 L", e)
	}
	e = Convert(demand.Key{Ingredient: "Simple Syrup", Unit: demand.UnitOz}, 37.125, ref)
	if e.Quantity != 2 || e.Unit != "1L bottles" {
		t.Errorf("syrup: %+v, want 2 1L bottles", e)
	}
}

func TestConvertGarnishYields(t *testing.T) {
	ref := refdata.Default()

	e := Convert(demand.Key{Ingredient: "Lime Wedge", Unit: demand.UnitEach}, 49.5, ref)
	if e.Item != "Limes" || e.Quantity != 7 || e.Unit != "pcs" {
		t.Errorf("lime wedges: %+v, want 7 Limes pcs", e)
	}
	e = Convert(demand.Key{Ingredient: "Mint Leaves", Unit: demand.UnitEach}, 51, ref)
	if e.Item != "Mint (bunches)" || e.Quantity != 2 {
		t.Errorf("mint: %+v, want 2 bunches", e)
	}
	e = Convert(demand.Key{Ingredient: "Salt Rim", Unit: demand.UnitEach}, 49.5, ref)
	if e.Item != "Rimming Salt" || e.Quantity != 1 {
		t.Errorf("salt rim: %+v, want 1 tub", e)
	}
}

func TestConvertDashAlwaysOneBottle(t *testing.T) {
	ref := refdata.Default()
	e := Convert(demand.Key{Ingredient: "Angostura Bitters", Unit: demand.UnitDash}, 500, ref)
	if e.Quantity != 1 || e.Unit != "bottle" {
		t.Errorf("bitters: %+v, want exactly 1 bottle", e)
	}
}

func TestConvertUnknownPassesThrough(t *testing.T) {
	ref := refdata.Default()
	e := Convert(demand.Key{Ingredient: "Mystery Goo", Unit: "vials"}, 2.3, ref)
	if e.Item != "Mystery Goo" || e.Quantity != 3 || e.Unit != "vials" {
		t.Errorf("unknown demand must pass through rounded up: %+v", e)
	}
}

func TestBuildListAccountsForEveryDemandEntry(t *testing.T) {
	ref := refdata.Default()
	m := demand.NewMap()
	m.Add("Vodka", demand.UnitOz, 10)
	m.Add("Lime Wedge", demand.UnitEach, 5)
	m.Add("Glow Dust", "scoops", 1.5)
	m.Add(demand.ItemIce, demand.UnitLbs, 75)

	entries := BuildList(m, ref)
	if len(entries) != m.Len() {
		t.Fatalf("list has %d entries for %d demand keys", len(entries), m.Len())
	}
	for _, e := range entries {
		if e.Quantity < 1 {
			t.Errorf("%s: quantity %d < 1", e.Item, e.Quantity)
		}
	}
}

// Quantities must never be under-provisioned: quantity × package yield has
// to cover the raw demand for every conversion category.
func TestConvertNeverUnderProvisions(t *testing.T) {
	ref := refdata.Default()
	quantities := []float64{0.1, 1, 24.9, 25.4, 25.5, 38.5, 38.6, 100.01, 513.7}

	check := func(key demand.Key, per float64) {
		for _, q := range quantities {
			e := Convert(key, q, ref)
			if float64(e.Quantity)*per < q {
				t.Errorf("%v qty %g: bought %d × %g oz, under demand", key, q, e.Quantity, per)
			}
		}
	}
	check(demand.Key{Ingredient: "Vodka", Unit: demand.UnitOz}, ref.Yields.Spirits.Bottle114Oz)
	check(demand.Key{Ingredient: "Rye", Unit: demand.UnitOz}, ref.Yields.Spirits.Bottle750Oz)
	check(demand.Key{Ingredient: "Coke", Unit: demand.UnitOz}, ref.Yields.Mixers.LiterOz)
	check(demand.Key{Ingredient: "Simple Syrup", Unit: demand.UnitOz}, ref.Yields.Syrups.BottleOz)
}
