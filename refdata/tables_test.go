package refdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTablesValidate(t *testing.T) {
	tables := Default()
	if err := tables.Validate(); err != nil {
		t.Fatalf("built-in tables failed validation: %v", err)
	}
	if tables.Catalog == nil {
		t.Fatalf("built-in tables should include a catalog")
	}
}

func TestSplitFallsBackToDefaultKey(t *testing.T) {
	tables := Default()

	if _, found := tables.Consumption.Split("no_such_crowd"); found {
		t.Fatalf("unknown key reported as found")
	}
	split, found := tables.Consumption.Split(CrowdCocktailForward)
	if !found {
		t.Fatalf("known key not found")
	}
	if split.Cocktails <= 0 {
		t.Fatalf("cocktail-forward preset has no cocktail share")
	}
}

func TestAliasNormalizesPurchasingNames(t *testing.T) {
	y := Default().Yields
	if got := y.Alias("Bourbon"); got != "Rye" {
		t.Errorf("Alias(Bourbon) = %q, want Rye", got)
	}
	if got := y.Alias("Prosecco"); got != "Prosecco (750ml)" {
		t.Errorf("Alias(Prosecco) = %q, want Prosecco (750ml)", got)
	}
	if got := y.Alias("Vodka"); got != "Vodka" {
		t.Errorf("Alias(Vodka) = %q, want pass-through", got)
	}
}

func TestSupplierLookupScansCategories(t *testing.T) {
	dir := Default().Suppliers
	if got, ok := dir.Lookup("Vodka"); !ok || got != "NSLC" {
		t.Errorf("Lookup(Vodka) = %q, %v", got, ok)
	}
	if _, ok := dir.Lookup("Nonexistent Item"); ok {
		t.Errorf("Lookup found an item that is not in any category")
	}
}

func TestLoadMissingDirUsesBuiltins(t *testing.T) {
	tables, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load with empty dir: %v", err)
	}
	if tables.Pricing.StaffingDivisor != 60 {
		t.Errorf("staffing divisor = %d, want built-in 60", tables.Pricing.StaffingDivisor)
	}
	if len(tables.Recipes) == 0 {
		t.Errorf("expected built-in recipes")
	}
}

func TestLoadReplacesTableWholesale(t *testing.T) {
	dir := t.TempDir()
	recipes := `{"House Punch":{"ingredients":{"Dark Rum":{"qty":2,"unit":"oz"}}}}`
	if err := os.WriteFile(filepath.Join(dir, "recipes.json"), []byte(recipes), 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tables.Recipes) != 1 {
		t.Fatalf("recipe file should replace built-ins, got %d recipes", len(tables.Recipes))
	}
	if _, ok := tables.Recipes["House Punch"]; !ok {
		t.Fatalf("loaded recipe missing")
	}
	// Untouched tables keep the built-ins.
	if len(tables.Consumption.Presets) != 3 {
		t.Errorf("consumption presets = %d, want built-in 3", len(tables.Consumption.Presets))
	}
}

func TestLoadAppliesDefaultsToPartialPricing(t *testing.T) {
	dir := t.TempDir()
	pricing := `{"open_bar_rate":70,"cash_bar_rate":50}`
	if err := os.WriteFile(filepath.Join(dir, "pricing.json"), []byte(pricing), 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tables.Pricing.OpenBarRate.IntPart() != 70 {
		t.Errorf("open bar rate not loaded")
	}
	if tables.Pricing.StaffingDivisor != 60 {
		t.Errorf("staffing divisor default not applied, got %d", tables.Pricing.StaffingDivisor)
	}
	if tables.Pricing.SpecialtyCocktailFraction != 0.4 {
		t.Errorf("specialty fraction default not applied, got %g", tables.Pricing.SpecialtyCocktailFraction)
	}
}

func TestLoadRejectsBrokenJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "yields.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateCatchesBadPresets(t *testing.T) {
	tables := Default()
	tables.Consumption.Presets[CrowdStandardLeanBeer] = DrinkSplit{Cocktails: -0.1}
	if err := tables.Validate(); err == nil {
		t.Fatalf("negative fraction passed validation")
	}
}
