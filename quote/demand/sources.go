package demand

import (
	"fmt"
	"math"
	"sort"

	"bartending-quote/quote/booking"
	"bartending-quote/refdata"
)

// Demand units shared with the shopping-list converter.
const (
	UnitOz     = "oz"
	UnitEach   = "each"
	UnitDash   = "dash"
	UnitBottle = "bottle"
	UnitCan    = "can"
	UnitLbs    = "lbs"
)

// Item names the sources emit for pre-purchasable goods.
const (
	ItemWhiteWine = "White Wine (750ml)"
	ItemRedWine   = "Red Wine (750ml)"
	ItemBeer      = "Beer (cans)"
	ItemIce       = "Ice"
)

// Source contributes one drink category's ingredient demand to the map.
// Sources run independently and accumulate into the same map; two sources
// may add ounces of the same spirit.
type Source interface {
	// Name identifies the source in audit output.
	Name() string

	// Contribute adds this source's demand for the request and plan.
	// Returned warnings report skipped lookups, never failures.
	Contribute(req booking.Request, plan Plan, ref *refdata.Tables, m *Map) []string
}

// DefaultSources returns every built-in demand source in execution order.
func DefaultSources() []Source {
	return []Source{
		WineSource{},
		BeerSource{},
		HighballSource{},
		SpecialtySource{},
		IceSource{},
	}
}

// WineSource records the white/red bottle demand from the plan.
type WineSource struct{}

func (WineSource) Name() string { return "wine" }

func (WineSource) Contribute(_ booking.Request, plan Plan, _ *refdata.Tables, m *Map) []string {
	m.Add(ItemWhiteWine, UnitBottle, float64(plan.WhiteWineBottles))
	m.Add(ItemRedWine, UnitBottle, float64(plan.RedWineBottles))
	return nil
}

// BeerSource records can demand; one drink is one can.
type BeerSource struct{}

func (BeerSource) Name() string { return "beer" }

func (BeerSource) Contribute(_ booking.Request, plan Plan, _ *refdata.Tables, m *Map) []string {
	m.Add(ItemBeer, UnitCan, float64(plan.BeerCans))
	return nil
}

// HighballSource distributes generic spirit-and-mixer drinks across the
// rail-spirit and mixer ratio tables.
type HighballSource struct{}

func (HighballSource) Name() string { return "highballs" }

func (HighballSource) Contribute(_ booking.Request, plan Plan, ref *refdata.Tables, m *Map) []string {
	if plan.Highballs <= 0 {
		return nil
	}
	spiritOz := ref.Pricing.OzPerHighballSpirit * float64(plan.Highballs)
	for _, name := range sortedKeys(ref.Pricing.RailSpirits) {
		m.Add(name, UnitOz, spiritOz*ref.Pricing.RailSpirits[name])
	}
	mixerOz := ref.Pricing.OzPerHighballMixer * float64(plan.Highballs)
	for _, name := range sortedKeys(ref.Pricing.RailMixers) {
		m.Add(name, UnitOz, mixerOz*ref.Pricing.RailMixers[name])
	}
	return nil
}

// SpecialtySource scales the selected cocktail recipes by an even share of
// the specialty count. Unknown cocktail names are skipped with a warning.
type SpecialtySource struct{}

func (SpecialtySource) Name() string { return "specialty cocktails" }

func (SpecialtySource) Contribute(req booking.Request, plan Plan, ref *refdata.Tables, m *Map) []string {
	if plan.SpecialtyCocktails <= 0 || len(req.Cocktails) == 0 {
		return nil
	}
	var warnings []string

	// Even split across everything selected; a name missing from the
	// recipe book forfeits its share rather than shifting it.
	share := float64(plan.SpecialtyCocktails) / float64(len(req.Cocktails))

	for _, name := range req.Cocktails {
		rec, ok := ref.Recipes[name]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no recipe for cocktail %q, skipped", name))
			continue
		}
		for _, ing := range sortedKeys(rec.Ingredients) {
			measure := rec.Ingredients[ing]
			m.Add(ref.Yields.Alias(ing), measure.Unit, measure.Qty*share)
		}
	}
	return warnings
}

// IceSource adds the per-guest ice demand regardless of bar type.
type IceSource struct{}

func (IceSource) Name() string { return "ice" }

func (IceSource) Contribute(req booking.Request, _ Plan, ref *refdata.Tables, m *Map) []string {
	m.Add(ItemIce, UnitLbs, math.Ceil(ref.Yields.Other.IceLbsPerGuest*float64(req.Guests)))
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
