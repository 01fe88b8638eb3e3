// Package refdata holds the read-only reference tables the quote engine
// consumes: pricing policy, consumption presets, the supplier directory,
// package yields, the recipe book, and the optional cost catalog.
package refdata

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tables bundles every reference table for a single engine invocation.
// The engine never mutates these.
type Tables struct {
	Pricing     PricingTable       `json:"pricing"`
	Consumption ConsumptionPresets `json:"consumption"`
	Suppliers   SupplierDirectory  `json:"suppliers"`
	Yields      YieldTable         `json:"yields"`
	Recipes     RecipeBook         `json:"recipes"`

	// Catalog is optional. A nil catalog disables product costing.
	Catalog *CostCatalog `json:"catalog,omitempty"`
}

// PricingTable holds labor rates, fixed fees, and drink-mix policy constants.
type PricingTable struct {
	OpenBarRate decimal.Decimal `json:"open_bar_rate"`
	CashBarRate decimal.Decimal `json:"cash_bar_rate"`

	MinimumHours    float64 `json:"minimum_hours"`
	StaffingDivisor int     `json:"staffing_divisor"` // guests per bartender
	SetupHours      float64 `json:"setup_hours"`
	TeardownHours   float64 `json:"teardown_hours"`

	Prep PrepPolicy `json:"prep"`

	BookingFee      decimal.Decimal `json:"booking_fee"`
	InsuranceFee    decimal.Decimal `json:"insurance_fee"`
	TravelRatePerKm decimal.Decimal `json:"travel_rate_per_km"`

	DrinksPerGuest            float64 `json:"drinks_per_guest"`
	SpecialtyCocktailFraction float64 `json:"specialty_cocktail_fraction"`
	WhiteWineShare            float64 `json:"white_wine_share"`

	// Rail splits need not sum to exactly 1; each share is independent.
	RailSpirits map[string]float64 `json:"rail_spirits"`
	RailMixers  map[string]float64 `json:"rail_mixers"`

	OzPerHighballSpirit float64 `json:"oz_per_highball_spirit"`
	OzPerHighballMixer  float64 `json:"oz_per_highball_mixer"`
}

// PrepPolicy controls prep-time billing.
type PrepPolicy struct {
	Enabled          bool            `json:"enabled"`
	RatePerHour      decimal.Decimal `json:"rate_per_hour"`
	DefaultHoursOpen float64         `json:"default_hours_open_bar"`
	DefaultHoursCash float64         `json:"default_hours_cash_bar"`
	MaxHours         float64         `json:"max_hours"`
}

// DrinkSplit is the fractional split of total drinks for one crowd type.
type DrinkSplit struct {
	Cocktails float64 `json:"cocktails"`
	Beer      float64 `json:"beer"`
	Wine      float64 `json:"wine"`
}

// ConsumptionPresets maps crowd-type keys to drink splits.
type ConsumptionPresets struct {
	Buffer  float64               `json:"buffer"` // over-provision fraction
	Presets map[string]DrinkSplit `json:"presets"`

	// Resolution keys used when a request carries no crowd type.
	DefaultKey         string `json:"default_key"`
	OpenBarCocktailKey string `json:"open_bar_cocktail_key"`
	CashBarKey         string `json:"cash_bar_key"`
}

// Split returns the preset for key, falling back to the default preset.
// The second return reports whether the key resolved directly.
func (c ConsumptionPresets) Split(key string) (DrinkSplit, bool) {
	if s, ok := c.Presets[key]; ok {
		return s, true
	}
	return c.Presets[c.DefaultKey], false
}

// SupplierDirectory maps purchasable items to supplier names, partitioned
// by category, plus the fallback suppliers used when no exact match exists.
type SupplierDirectory struct {
	Categories map[string]map[string]string `json:"categories"`
	Fallbacks  SupplierFallbacks            `json:"fallbacks"`
}

// SupplierFallbacks names the default supplier per heuristic bucket.
type SupplierFallbacks struct {
	Winery        string `json:"winery"`
	Produce       string `json:"produce"`
	LiquorControl string `json:"liquor_control"`
}

// Lookup scans categories in sorted order for an exact item match.
func (d SupplierDirectory) Lookup(item string) (string, bool) {
	for _, cat := range sortedKeys(d.Categories) {
		if supplier, ok := d.Categories[cat][item]; ok {
			return supplier, true
		}
	}
	return "", false
}

// GarnishYield converts a per-drink garnish into a purchasable produce item.
type GarnishYield struct {
	Item    string  `json:"item"`     // e.g. "Limes"
	PerUnit float64 `json:"per_unit"` // e.g. 8 wedges per lime
	Unit    string  `json:"unit"`     // e.g. "pcs"
}

// YieldTable holds package sizes and per-unit yields.
type YieldTable struct {
	Spirits struct {
		Bottle114Oz float64  `json:"bottle_1_14l_oz"`
		Bottle750Oz float64  `json:"bottle_750ml_oz"`
		WellSpirits []string `json:"well_spirits"` // purchased in 1.14 L format
	} `json:"spirits"`

	Wine struct {
		GlassesPerBottle float64 `json:"glasses_per_bottle"`
	} `json:"wine"`

	Mixers struct {
		LiterOz float64 `json:"liter_oz"`
	} `json:"mixers"`

	Syrups struct {
		BottleOz float64 `json:"bottle_oz"`
	} `json:"syrups"`

	Garnish map[string]GarnishYield `json:"garnish"`

	Other struct {
		IceLbsPerGuest float64 `json:"ice_lbs_per_guest"`
	} `json:"other"`

	// Aliases normalizes recipe ingredient names before purchasing and
	// pricing lookups, e.g. Bourbon is bought as Rye.
	Aliases map[string]string `json:"aliases"`
}

// Alias returns the purchasing name for an ingredient.
func (y YieldTable) Alias(name string) string {
	if a, ok := y.Aliases[name]; ok {
		return a
	}
	return name
}

// IsWellSpirit reports whether name is bought in the 1.14 L format.
func (y YieldTable) IsWellSpirit(name string) bool {
	for _, s := range y.Spirits.WellSpirits {
		if s == name {
			return true
		}
	}
	return false
}

// Measure is a per-drink ingredient quantity.
type Measure struct {
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"` // "oz" | "each" | "dash"
}

// Recipe is one cocktail's ingredient list.
type Recipe struct {
	Ingredients map[string]Measure `json:"ingredients"`
}

// RecipeBook maps cocktail names to recipes.
type RecipeBook map[string]Recipe

// CasePrice prices an item sold by the case.
type CasePrice struct {
	UnitsPerCase int             `json:"units_per_case"`
	CaseCost     decimal.Decimal `json:"case_cost"`
}

// CostCatalog maps purchasable items to unit costs. Missing entries cost
// zero; the engine never fails on an absent price.
type CostCatalog struct {
	Prices  map[string]decimal.Decimal `json:"prices"`
	Cases   map[string]CasePrice       `json:"cases"`
	TaxRate decimal.Decimal            `json:"tax_rate"`

	// GenericWineItem prices white/red variants that lack their own entry.
	GenericWineItem string `json:"generic_wine_item"`
}

// UnitPrice resolves the unit price for item, falling back to the generic
// wine entry for wine variants.
func (c *CostCatalog) UnitPrice(item string) (decimal.Decimal, bool) {
	if c == nil {
		return decimal.Zero, false
	}
	if p, ok := c.Prices[item]; ok {
		return p, true
	}
	return decimal.Zero, false
}

// Validate checks the invariants the engine depends on. ApplyDefaults
// should run first so optional fields are populated.
func (t *Tables) Validate() error {
	if t.Pricing.StaffingDivisor <= 0 {
		return fmt.Errorf("pricing: staffing_divisor must be positive, got %d", t.Pricing.StaffingDivisor)
	}
	if t.Pricing.DrinksPerGuest <= 0 {
		return fmt.Errorf("pricing: drinks_per_guest must be positive, got %g", t.Pricing.DrinksPerGuest)
	}
	if f := t.Pricing.SpecialtyCocktailFraction; f < 0 || f > 1 {
		return fmt.Errorf("pricing: specialty_cocktail_fraction out of range: %g", f)
	}
	if f := t.Pricing.WhiteWineShare; f < 0 || f > 1 {
		return fmt.Errorf("pricing: white_wine_share out of range: %g", f)
	}
	for name, share := range t.Pricing.RailSpirits {
		if share < 0 {
			return fmt.Errorf("pricing: rail spirit %q has negative share", name)
		}
	}
	if len(t.Consumption.Presets) == 0 {
		return fmt.Errorf("consumption: no presets defined")
	}
	if _, ok := t.Consumption.Presets[t.Consumption.DefaultKey]; !ok {
		return fmt.Errorf("consumption: default key %q has no preset", t.Consumption.DefaultKey)
	}
	for key, split := range t.Consumption.Presets {
		if split.Cocktails < 0 || split.Beer < 0 || split.Wine < 0 {
			return fmt.Errorf("consumption: preset %q has a negative fraction", key)
		}
	}
	if t.Yields.Spirits.Bottle114Oz <= 0 || t.Yields.Spirits.Bottle750Oz <= 0 {
		return fmt.Errorf("yields: bottle sizes must be positive")
	}
	if t.Yields.Wine.GlassesPerBottle <= 0 {
		return fmt.Errorf("yields: glasses_per_bottle must be positive")
	}
	if t.Yields.Mixers.LiterOz <= 0 || t.Yields.Syrups.BottleOz <= 0 {
		return fmt.Errorf("yields: mixer and syrup package sizes must be positive")
	}
	for name, g := range t.Yields.Garnish {
		if g.PerUnit <= 0 {
			return fmt.Errorf("yields: garnish %q has non-positive per_unit", name)
		}
	}
	for name, rec := range t.Recipes {
		if len(rec.Ingredients) == 0 {
			return fmt.Errorf("recipes: %q has no ingredients", name)
		}
	}
	if t.Catalog != nil && t.Catalog.TaxRate.IsNegative() {
		return fmt.Errorf("catalog: tax_rate must be non-negative")
	}
	return nil
}
