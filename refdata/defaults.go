package refdata

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Crowd-type keys shipped with the built-in presets.
const (
	CrowdStandardLeanBeer = "standard_lean_beer"
	CrowdCocktailForward  = "cocktail_forward"
	CrowdCashBarLight     = "cash_bar_light"
)

// Default returns the built-in reference tables. They mirror the tables the
// business maintains as JSON and let the CLI and tests run without files.
func Default() *Tables {
	t := &Tables{
		Pricing: PricingTable{
			OpenBarRate:     decimal.NewFromInt(55),
			CashBarRate:     decimal.NewFromInt(45),
			BookingFee:      decimal.NewFromInt(150),
			InsuranceFee:    decimal.NewFromInt(100),
			TravelRatePerKm: decimal.NewFromFloat(0.85),
			Prep: PrepPolicy{
				Enabled:          true,
				RatePerHour:      decimal.NewFromInt(35),
				DefaultHoursOpen: 4,
				DefaultHoursCash: 2,
				MaxHours:         6,
			},
		},
		Consumption: ConsumptionPresets{
			Buffer: 0.10,
			Presets: map[string]DrinkSplit{
				CrowdStandardLeanBeer: {Cocktails: 0.30, Beer: 0.45, Wine: 0.25},
				CrowdCocktailForward:  {Cocktails: 0.50, Beer: 0.25, Wine: 0.25},
				CrowdCashBarLight:     {Cocktails: 0.20, Beer: 0.50, Wine: 0.30},
			},
		},
		Suppliers: defaultSuppliers(),
		Recipes:   defaultRecipes(),
		Catalog:   defaultCatalog(),
	}
	t.Yields = defaultYields()
	t.ApplyDefaults()
	return t
}

// ApplyDefaults fills every policy constant left at its zero value, so a
// partial JSON table still yields a fully specified configuration.
func (t *Tables) ApplyDefaults() {
	p := &t.Pricing
	if p.MinimumHours == 0 {
		p.MinimumHours = 3
	}
	if p.StaffingDivisor == 0 {
		p.StaffingDivisor = 60
	}
	if p.SetupHours == 0 {
		p.SetupHours = 1
	}
	if p.TeardownHours == 0 {
		p.TeardownHours = 1
	}
	if p.DrinksPerGuest == 0 {
		p.DrinksPerGuest = 3
	}
	if p.SpecialtyCocktailFraction == 0 {
		p.SpecialtyCocktailFraction = 0.4
	}
	if p.WhiteWineShare == 0 {
		p.WhiteWineShare = 0.6
	}
	if len(p.RailSpirits) == 0 {
		p.RailSpirits = map[string]float64{
			"Vodka":     0.40,
			"White Rum": 0.30,
			"Gin":       0.20,
			"Rye":       0.10,
		}
	}
	if len(p.RailMixers) == 0 {
		p.RailMixers = map[string]float64{
			"Coke":            0.35,
			"Soda Water":      0.30,
			"Tonic Water":     0.20,
			"Cranberry Juice": 0.15,
		}
	}
	if p.OzPerHighballSpirit == 0 {
		p.OzPerHighballSpirit = 1.5
	}
	if p.OzPerHighballMixer == 0 {
		p.OzPerHighballMixer = 4
	}

	c := &t.Consumption
	if c.DefaultKey == "" {
		c.DefaultKey = CrowdStandardLeanBeer
	}
	if c.OpenBarCocktailKey == "" {
		c.OpenBarCocktailKey = CrowdCocktailForward
	}
	if c.CashBarKey == "" {
		c.CashBarKey = CrowdCashBarLight
	}

	y := &t.Yields
	if y.Spirits.Bottle114Oz == 0 {
		y.Spirits.Bottle114Oz = 38.5
	}
	if y.Spirits.Bottle750Oz == 0 {
		y.Spirits.Bottle750Oz = 25.4
	}
	if len(y.Spirits.WellSpirits) == 0 {
		y.Spirits.WellSpirits = []string{"Vodka", "Gin", "White Rum", "Dark Rum"}
	}
	if y.Wine.GlassesPerBottle == 0 {
		y.Wine.GlassesPerBottle = 5
	}
	if y.Mixers.LiterOz == 0 {
		y.Mixers.LiterOz = 33.8
	}
	if y.Syrups.BottleOz == 0 {
		y.Syrups.BottleOz = 33.8
	}
	if y.Other.IceLbsPerGuest == 0 {
		y.Other.IceLbsPerGuest = 1.5
	}
	if len(y.Garnish) == 0 {
		y.Garnish = defaultGarnishYields()
	}
	if len(y.Aliases) == 0 {
		y.Aliases = map[string]string{
			"Bourbon":  "Rye",
			"Prosecco": "Prosecco (750ml)",
		}
	}

	s := &t.Suppliers
	if s.Fallbacks.Winery == "" {
		s.Fallbacks.Winery = "Lost Bell Winery"
	}
	if s.Fallbacks.Produce == "" {
		s.Fallbacks.Produce = "Costco"
	}
	if s.Fallbacks.LiquorControl == "" {
		s.Fallbacks.LiquorControl = "NSLC"
	}

	if t.Catalog != nil && t.Catalog.GenericWineItem == "" {
		t.Catalog.GenericWineItem = "Wine (750ml)"
	}
}

func defaultYields() YieldTable {
	var y YieldTable
	y.Garnish = defaultGarnishYields()
	return y
}

func defaultGarnishYields() map[string]GarnishYield {
	return map[string]GarnishYield{
		"Lime Wedge":    {Item: "Limes", PerUnit: 8, Unit: "pcs"},
		"Lime Wheels":   {Item: "Limes", PerUnit: 7, Unit: "pcs"},
		"Lemon Wheels":  {Item: "Lemons", PerUnit: 12, Unit: "pcs"},
		"Orange Wheels": {Item: "Oranges", PerUnit: 12, Unit: "pcs"},
		"Orange Slice":  {Item: "Oranges", PerUnit: 12, Unit: "pcs"},
		"Raspberry":     {Item: "Raspberries", PerUnit: 36, Unit: "boxes"},
		"Mint Leaves":   {Item: "Mint (bunches)", PerUnit: 50, Unit: "bunches"},
		"Salt Rim":      {Item: "Rimming Salt", PerUnit: 100, Unit: "tubs"},
	}
}

func defaultSuppliers() SupplierDirectory {
	return SupplierDirectory{
		Categories: map[string]map[string]string{
			"spirits": {
				"Vodka":          "NSLC",
				"Gin":            "NSLC",
				"White Rum":      "NSLC",
				"Dark Rum":       "NSLC",
				"Tequila":        "NSLC",
				"Triple Sec":     "NSLC",
				"Coffee Liqueur": "NSLC",
				"Rye":            "NSLC",
				"Aperol":         "NSLC",
			},
			"wine": {
				"White Wine (750ml)": "Lost Bell Winery",
				"Red Wine (750ml)":   "Lost Bell Winery",
				"Wine (750ml)":       "Lost Bell Winery",
				"Prosecco (750ml)":   "NSLC",
			},
			"beer": {
				"Beer (cans)": "NSLC",
			},
			"mixers": {
				"Lime Juice":      "Costco",
				"Lemon Juice":     "Costco",
				"Soda Water":      "Costco",
				"Tonic Water":     "Costco",
				"Coke":            "Costco",
				"Cranberry Juice": "Costco",
				"Espresso":        "Costco",
			},
			"syrups": {
				"Simple Syrup": "Barjus",
			},
			"produce": {
				"Limes":          "Costco",
				"Lemons":         "Costco",
				"Oranges":        "Costco",
				"Raspberries":    "Costco",
				"Mint (bunches)": "Barjus",
			},
			"other": {
				"Ice":               "Costco",
				"Rimming Salt":      "Costco",
				"Angostura Bitters": "NSLC",
			},
		},
	}
}

func defaultRecipes() RecipeBook {
	return RecipeBook{
		"Margarita": {Ingredients: map[string]Measure{
			"Tequila":      {Qty: 2, Unit: "oz"},
			"Triple Sec":   {Qty: 1, Unit: "oz"},
			"Lime Juice":   {Qty: 1, Unit: "oz"},
			"Simple Syrup": {Qty: 0.5, Unit: "oz"},
			"Lime Wedge":   {Qty: 1, Unit: "each"},
			"Salt Rim":     {Qty: 1, Unit: "each"},
		}},
		"Old Fashioned": {Ingredients: map[string]Measure{
			"Bourbon":           {Qty: 2, Unit: "oz"},
			"Simple Syrup":      {Qty: 0.25, Unit: "oz"},
			"Angostura Bitters": {Qty: 2, Unit: "dash"},
			"Orange Slice":      {Qty: 1, Unit: "each"},
		}},
		"Mojito": {Ingredients: map[string]Measure{
			"White Rum":    {Qty: 2, Unit: "oz"},
			"Lime Juice":   {Qty: 1, Unit: "oz"},
			"Simple Syrup": {Qty: 0.75, Unit: "oz"},
			"Soda Water":   {Qty: 2, Unit: "oz"},
			"Mint Leaves":  {Qty: 8, Unit: "each"},
			"Lime Wheels":  {Qty: 1, Unit: "each"},
		}},
		"Daiquiri": {Ingredients: map[string]Measure{
			"White Rum":    {Qty: 2, Unit: "oz"},
			"Lime Juice":   {Qty: 1, Unit: "oz"},
			"Simple Syrup": {Qty: 0.75, Unit: "oz"},
			"Lime Wheels":  {Qty: 1, Unit: "each"},
		}},
		"Aperol Spritz": {Ingredients: map[string]Measure{
			"Aperol":       {Qty: 2, Unit: "oz"},
			"Prosecco":     {Qty: 3, Unit: "oz"},
			"Soda Water":   {Qty: 1, Unit: "oz"},
			"Orange Slice": {Qty: 1, Unit: "each"},
		}},
		"Espresso Martini": {Ingredients: map[string]Measure{
			"Vodka":          {Qty: 1.5, Unit: "oz"},
			"Coffee Liqueur": {Qty: 1, Unit: "oz"},
			"Espresso":       {Qty: 1, Unit: "oz"},
			"Simple Syrup":   {Qty: 0.25, Unit: "oz"},
		}},
		"Whiskey Sour": {Ingredients: map[string]Measure{
			"Rye":               {Qty: 2, Unit: "oz"},
			"Lemon Juice":       {Qty: 1, Unit: "oz"},
			"Simple Syrup":      {Qty: 0.75, Unit: "oz"},
			"Angostura Bitters": {Qty: 1, Unit: "dash"},
			"Lemon Wheels":      {Qty: 1, Unit: "each"},
		}},
		"Gin Smash": {Ingredients: map[string]Measure{
			"Gin":          {Qty: 2, Unit: "oz"},
			"Lemon Juice":  {Qty: 1, Unit: "oz"},
			"Simple Syrup": {Qty: 0.75, Unit: "oz"},
			"Mint Leaves":  {Qty: 6, Unit: "each"},
		}},
	}
}

func defaultCatalog() *CostCatalog {
	return &CostCatalog{
		TaxRate:         decimal.NewFromFloat(0.15),
		GenericWineItem: "Wine (750ml)",
		Prices: map[string]decimal.Decimal{
			"Vodka":             decimal.NewFromFloat(42.99),
			"Gin":               decimal.NewFromFloat(44.99),
			"White Rum":         decimal.NewFromFloat(41.99),
			"Dark Rum":          decimal.NewFromFloat(43.49),
			"Tequila":           decimal.NewFromFloat(38.99),
			"Triple Sec":        decimal.NewFromFloat(24.99),
			"Coffee Liqueur":    decimal.NewFromFloat(29.99),
			"Rye":               decimal.NewFromFloat(32.99),
			"Aperol":            decimal.NewFromFloat(27.99),
			"Prosecco (750ml)":  decimal.NewFromFloat(18.99),
			"Wine (750ml)":      decimal.NewFromFloat(15.99),
			"Angostura Bitters": decimal.NewFromFloat(14.99),
			"Lime Juice":        decimal.NewFromFloat(4.49),
			"Lemon Juice":       decimal.NewFromFloat(4.49),
			"Soda Water":        decimal.NewFromFloat(1.99),
			"Tonic Water":       decimal.NewFromFloat(2.49),
			"Coke":              decimal.NewFromFloat(2.29),
			"Cranberry Juice":   decimal.NewFromFloat(3.99),
			"Espresso":          decimal.NewFromFloat(6.99),
			"Simple Syrup":      decimal.NewFromFloat(7.99),
			"Limes":             decimal.NewFromFloat(0.79),
			"Lemons":            decimal.NewFromFloat(0.89),
			"Oranges":           decimal.NewFromFloat(1.09),
			"Raspberries":       decimal.NewFromFloat(4.99),
			"Mint (bunches)":    decimal.NewFromFloat(2.49),
			"Rimming Salt":      decimal.NewFromFloat(8.99),
			"Ice":               decimal.NewFromFloat(0.40),
		},
		Cases: map[string]CasePrice{
			"Beer (cans)": {UnitsPerCase: 24, CaseCost: decimal.NewFromFloat(54.99)},
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
