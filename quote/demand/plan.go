package demand

import (
	"fmt"
	"math"

	"bartending-quote/quote/booking"
	"bartending-quote/refdata"
)

// Plan holds the drink counts derived from guest count and the resolved
// consumption preset. Everything downstream of the preset lookup is an
// integer count of servings.
type Plan struct {
	CrowdKey    string  `json:"crowd_key"`
	TotalDrinks float64 `json:"total_drinks"`

	MixedDrinks int `json:"mixed_drinks"`
	BeerCans    int `json:"beer_cans"`
	WineGlasses int `json:"wine_glasses"`

	SpecialtyCocktails int `json:"specialty_cocktails"`
	Highballs          int `json:"highballs"`

	WineBottles      int `json:"wine_bottles"`
	WhiteWineBottles int `json:"white_wine_bottles"`
	RedWineBottles   int `json:"red_wine_bottles"`
}

// ResolveCrowdKey picks the consumption preset key for a request. An
// explicit key on the request wins; otherwise the key follows from bar
// type and the wants-cocktails flag.
func ResolveCrowdKey(req booking.Request, c refdata.ConsumptionPresets) string {
	if req.CrowdType != "" {
		return req.CrowdType
	}
	if req.BarType == booking.CashBar {
		return c.CashBarKey
	}
	if req.WantsCocktails {
		return c.OpenBarCocktailKey
	}
	return c.DefaultKey
}

// BuildPlan computes the drink counts for a request. With zero guests the
// plan is all zeros. Warnings report preset fallbacks; they never abort.
func BuildPlan(req booking.Request, ref *refdata.Tables) (Plan, []string) {
	var warnings []string

	plan := Plan{CrowdKey: ResolveCrowdKey(req, ref.Consumption)}
	if req.Guests <= 0 {
		return plan, warnings
	}

	split, found := ref.Consumption.Split(plan.CrowdKey)
	if !found {
		warnings = append(warnings, fmt.Sprintf(
			"unknown crowd type %q, using %q", plan.CrowdKey, ref.Consumption.DefaultKey))
		plan.CrowdKey = ref.Consumption.DefaultKey
	}

	perGuest := req.DrinksPerGuest
	if perGuest <= 0 {
		perGuest = ref.Pricing.DrinksPerGuest
	}

	plan.TotalDrinks = float64(req.Guests) * perGuest * (1 + ref.Consumption.Buffer)
	plan.MixedDrinks = int(math.Round(plan.TotalDrinks * split.Cocktails))
	plan.BeerCans = int(math.Round(plan.TotalDrinks * split.Beer))
	plan.WineGlasses = int(math.Round(plan.TotalDrinks * split.Wine))

	if req.WantsCocktails {
		plan.SpecialtyCocktails = int(math.Round(
			float64(plan.MixedDrinks) * ref.Pricing.SpecialtyCocktailFraction))
	}
	plan.Highballs = plan.MixedDrinks - plan.SpecialtyCocktails

	if plan.WineGlasses > 0 {
		plan.WineBottles = int(math.Ceil(
			float64(plan.WineGlasses) / ref.Yields.Wine.GlassesPerBottle))
		// Round white first; red takes the remainder so the two always
		// sum to the bottle total exactly.
		plan.WhiteWineBottles = int(math.Round(
			float64(plan.WineBottles) * ref.Pricing.WhiteWineShare))
		plan.RedWineBottles = plan.WineBottles - plan.WhiteWineBottles
	}

	return plan, warnings
}
