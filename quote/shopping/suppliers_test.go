package shopping

import (
	"testing"

	"bartending-quote/refdata"
)

func TestResolveSupplierExactMatchWins(t *testing.T) {
	dir := refdata.Default().Suppliers
	e := Entry{Item: "Vodka", Category: CategoryWellSpirit}
	if got := ResolveSupplier(e, dir); got != "NSLC" {
		t.Fatalf("supplier = %q, want NSLC", got)
	}
}

func TestResolveSupplierCategoryFallbacks(t *testing.T) {
	dir := refdata.Default().Suppliers

	cases := []struct {
		entry Entry
		want  string
	}{
		{Entry{Item: "Unlisted Wine (750ml)", Category: CategoryWine}, "Lost Bell Winery"},
		{Entry{Item: "Kumquats", Category: CategoryGarnish}, "Costco"},
		{Entry{Item: "Peach Bitters", Category: CategoryBitters}, "NSLC"},
		{Entry{Item: "Glow Dust", Category: CategoryOther}, FallbackSupplier},
	}
	for _, tc := range cases {
		if got := ResolveSupplier(tc.entry, dir); got != tc.want {
			t.Errorf("%s: supplier = %q, want %q", tc.entry.Item, got, tc.want)
		}
	}
}

func TestGroupBySupplierAggregatesTriples(t *testing.T) {
	dir := refdata.Default().Suppliers
	entries := []Entry{
		{Item: "Limes", Quantity: 7, Unit: "pcs", Category: CategoryGarnish},
		{Item: "Vodka", Quantity: 3, Unit: "bottles", Category: CategoryWellSpirit},
		{Item: "Limes", Quantity: 4, Unit: "pcs", Category: CategoryGarnish},
	}

	orders := GroupBySupplier(entries, dir)

	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2 after aggregation", len(orders))
	}
	seen := make(map[[3]string]bool)
	for _, o := range orders {
		k := [3]string{o.Supplier, o.Item, o.Unit}
		if seen[k] {
			t.Fatalf("duplicate (supplier,item,unit) triple: %v", k)
		}
		seen[k] = true
		if o.Item == "Limes" && o.Quantity != 11 {
			t.Errorf("limes quantity = %d, want 7+4", o.Quantity)
		}
	}
}

func TestGroupBySupplierKeepsUnitsSeparate(t *testing.T) {
	dir := refdata.Default().Suppliers
	entries := []Entry{
		{Item: "Limes", Quantity: 7, Unit: "pcs", Category: CategoryGarnish},
		{Item: "Limes", Quantity: 2, Unit: "bags", Category: CategoryOther},
	}
	orders := GroupBySupplier(entries, dir)
	if len(orders) != 2 {
		t.Fatalf("different units must not merge, got %d orders", len(orders))
	}
}
