package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names expected inside a reference-data directory.
const (
	pricingFile     = "pricing.json"
	consumptionFile = "consumption.json"
	suppliersFile   = "suppliers.json"
	yieldsFile      = "yields.json"
	recipesFile     = "recipes.json"
	catalogFile     = "catalog.json"
)

// Load reads the reference tables from a directory of JSON files. A present
// file replaces the corresponding built-in table wholesale; an absent file
// keeps the built-in one. catalog.json is optional and its absence disables
// product costing. The result is defaulted and validated.
func Load(dir string) (*Tables, error) {
	t := Default()

	var pricing PricingTable
	if ok, err := loadInto(filepath.Join(dir, pricingFile), &pricing); err != nil {
		return nil, err
	} else if ok {
		t.Pricing = pricing
	}

	var consumption ConsumptionPresets
	if ok, err := loadInto(filepath.Join(dir, consumptionFile), &consumption); err != nil {
		return nil, err
	} else if ok {
		t.Consumption = consumption
	}

	var suppliers SupplierDirectory
	if ok, err := loadInto(filepath.Join(dir, suppliersFile), &suppliers); err != nil {
		return nil, err
	} else if ok {
		t.Suppliers = suppliers
	}

	var yields YieldTable
	if ok, err := loadInto(filepath.Join(dir, yieldsFile), &yields); err != nil {
		return nil, err
	} else if ok {
		t.Yields = yields
	}

	var recipes RecipeBook
	if ok, err := loadInto(filepath.Join(dir, recipesFile), &recipes); err != nil {
		return nil, err
	} else if ok {
		t.Recipes = recipes
	}

	var catalog CostCatalog
	if ok, err := loadInto(filepath.Join(dir, catalogFile), &catalog); err != nil {
		return nil, err
	} else if ok {
		t.Catalog = &catalog
	}

	t.ApplyDefaults()
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("reference data in %s: %w", dir, err)
	}
	return t, nil
}

// loadInto decodes path into v. The first return reports whether the file
// existed.
func loadInto(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}
