package shopping

import "bartending-quote/refdata"

// SupplierOrder is one procurement line, aggregated by the
// (supplier, item, unit) triple.
type SupplierOrder struct {
	Supplier string `json:"supplier"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// FallbackSupplier is the bucket for items no rule can place.
const FallbackSupplier = "Other"

// ResolveSupplier finds the supplier for one entry: exact directory match
// first, then the directory's category fallbacks, then the literal
// "Other" bucket.
func ResolveSupplier(e Entry, dir refdata.SupplierDirectory) string {
	if supplier, ok := dir.Lookup(e.Item); ok {
		return supplier
	}
	fb := dir.Fallbacks
	switch e.Category {
	case CategoryWine:
		if fb.Winery != "" {
			return fb.Winery
		}
	case CategoryGarnish:
		if fb.Produce != "" {
			return fb.Produce
		}
	case CategoryBitters:
		if fb.LiquorControl != "" {
			return fb.LiquorControl
		}
	}
	return FallbackSupplier
}

// GroupBySupplier regroups the shopping list by vendor. Entries sharing a
// (supplier, item, unit) triple sum into a single line; order follows the
// first appearance of each triple, which is deterministic because the
// shopping list itself is.
func GroupBySupplier(entries []Entry, dir refdata.SupplierDirectory) []SupplierOrder {
	type orderKey struct{ supplier, item, unit string }
	index := make(map[orderKey]int)
	orders := make([]SupplierOrder, 0, len(entries))

	for _, e := range entries {
		supplier := ResolveSupplier(e, dir)
		k := orderKey{supplier, e.Item, e.Unit}
		if i, ok := index[k]; ok {
			orders[i].Quantity += e.Quantity
			continue
		}
		index[k] = len(orders)
		orders = append(orders, SupplierOrder{
			Supplier: supplier,
			Item:     e.Item,
			Quantity: e.Quantity,
			Unit:     e.Unit,
		})
	}
	return orders
}
