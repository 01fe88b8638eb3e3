// Package shopping converts raw ingredient demand into purchasable package
// counts and groups the result by supplier. Every conversion rounds up:
// under-ordering is the one failure mode the business cannot tolerate.
package shopping

import (
	"math"

	"bartending-quote/quote/demand"
	"bartending-quote/refdata"
)

// Category classifies a demand line for conversion, supplier fallback, and
// the alcohol/non-alcohol cost split.
type Category string

const (
	CategoryWine       Category = "wine"
	CategoryBeer       Category = "beer"
	CategoryIce        Category = "ice"
	CategoryWellSpirit Category = "well_spirit" // bought in 1.14 L bottles
	CategorySpirit     Category = "spirit"      // bought in 750 mL bottles
	CategoryMixer      Category = "mixer"
	CategorySyrup      Category = "syrup"
	CategoryBitters    Category = "bitters"
	CategoryGarnish    Category = "garnish"
	CategoryEach       Category = "each"
	CategoryOther      Category = "other"
)

// IsAlcohol reports whether lines in this category count toward the
// alcohol side of the product-cost split.
func (c Category) IsAlcohol() bool {
	switch c {
	case CategoryWine, CategoryBeer, CategoryWellSpirit, CategorySpirit, CategoryBitters:
		return true
	}
	return false
}

// Entry is one purchasable shopping-list line.
type Entry struct {
	Item     string   `json:"item"`
	Quantity int      `json:"quantity"`
	Unit     string   `json:"unit"`
	Category Category `json:"category"`
}

// classifyRule maps a demand key to a category. Rules are consulted in
// order and the first match wins, replacing the chain of string-equality
// special cases the category membership used to be derived from.
type classifyRule struct {
	matches  func(k demand.Key, ref *refdata.Tables) bool
	category Category
}

var classifyRules = []classifyRule{
	{func(k demand.Key, _ *refdata.Tables) bool { return k.Unit == demand.UnitBottle }, CategoryWine},
	{func(k demand.Key, _ *refdata.Tables) bool { return k.Unit == demand.UnitCan }, CategoryBeer},
	{func(k demand.Key, _ *refdata.Tables) bool { return k.Unit == demand.UnitLbs }, CategoryIce},
	{func(k demand.Key, _ *refdata.Tables) bool { return k.Unit == demand.UnitDash }, CategoryBitters},
	{func(k demand.Key, ref *refdata.Tables) bool {
		return k.Unit == demand.UnitOz && ref.Yields.IsWellSpirit(k.Ingredient)
	}, CategoryWellSpirit},
	{func(k demand.Key, ref *refdata.Tables) bool {
		return k.Unit == demand.UnitOz &&
			(inCategory(ref.Suppliers, "spirits", k.Ingredient) ||
				inCategory(ref.Suppliers, "wine", k.Ingredient))
	}, CategorySpirit},
	{func(k demand.Key, ref *refdata.Tables) bool {
		return k.Unit == demand.UnitOz && inCategory(ref.Suppliers, "mixers", k.Ingredient)
	}, CategoryMixer},
	{func(k demand.Key, ref *refdata.Tables) bool {
		return k.Unit == demand.UnitOz && inCategory(ref.Suppliers, "syrups", k.Ingredient)
	}, CategorySyrup},
	{func(k demand.Key, ref *refdata.Tables) bool {
		_, ok := ref.Yields.Garnish[k.Ingredient]
		return k.Unit == demand.UnitEach && ok
	}, CategoryGarnish},
	{func(k demand.Key, _ *refdata.Tables) bool { return k.Unit == demand.UnitEach }, CategoryEach},
}

// Classify assigns a demand key its conversion category.
func Classify(k demand.Key, ref *refdata.Tables) Category {
	for _, r := range classifyRules {
		if r.matches(k, ref) {
			return r.category
		}
	}
	return CategoryOther
}

// Convert turns one demand line into a purchasable entry. Unrecognized
// lines pass through with their raw unit rather than being dropped, so the
// shopping list accounts for every demand entry.
func Convert(k demand.Key, qty float64, ref *refdata.Tables) Entry {
	cat := Classify(k, ref)
	switch cat {
	case CategoryWine:
		return Entry{Item: k.Ingredient, Quantity: ceil(qty), Unit: "bottles", Category: cat}
	case CategoryBeer:
		return Entry{Item: k.Ingredient, Quantity: ceil(qty), Unit: "cans", Category: cat}
	case CategoryIce:
		return Entry{Item: k.Ingredient, Quantity: ceil(qty), Unit: "lbs", Category: cat}
	case CategoryBitters:
		// Dash-measured usage never empties a bottle; one covers the event.
		return Entry{Item: k.Ingredient, Quantity: 1, Unit: "bottle", Category: cat}
	case CategoryWellSpirit:
		return Entry{Item: k.Ingredient, Quantity: ceilDiv(qty, ref.Yields.Spirits.Bottle114Oz), Unit: "bottles", Category: cat}
	case CategorySpirit:
		return Entry{Item: k.Ingredient, Quantity: ceilDiv(qty, ref.Yields.Spirits.Bottle750Oz), Unit: "bottles", Category: cat}
	case CategoryMixer:
		return Entry{Item: k.Ingredient, Quantity: ceilDiv(qty, ref.Yields.Mixers.LiterOz), Unit: "L", Category: cat}
	case CategorySyrup:
		return Entry{Item: k.Ingredient, Quantity: ceilDiv(qty, ref.Yields.Syrups.BottleOz), Unit: "1L bottles", Category: cat}
	case CategoryGarnish:
		g := ref.Yields.Garnish[k.Ingredient]
		return Entry{Item: g.Item, Quantity: ceilDiv(qty, g.PerUnit), Unit: g.Unit, Category: cat}
	case CategoryEach:
		return Entry{Item: k.Ingredient, Quantity: ceil(qty), Unit: "each", Category: cat}
	default:
		return Entry{Item: k.Ingredient, Quantity: ceil(qty), Unit: k.Unit, Category: CategoryOther}
	}
}

// BuildList converts an entire demand map, one entry per demand key, in
// deterministic key order.
func BuildList(m *demand.Map, ref *refdata.Tables) []Entry {
	entries := make([]Entry, 0, m.Len())
	for _, k := range m.Keys() {
		entries = append(entries, Convert(k, m.Get(k), ref))
	}
	return entries
}

func inCategory(dir refdata.SupplierDirectory, category, item string) bool {
	_, ok := dir.Categories[category][item]
	return ok
}

func ceil(f float64) int { return int(math.Ceil(f)) }

func ceilDiv(qty, per float64) int {
	if per <= 0 {
		return ceil(qty)
	}
	return int(math.Ceil(qty / per))
}
