// Package demand derives raw ingredient demand from a booking. The demand
// map is keyed by a composite (ingredient, unit) value so "Lime Wheels"
// counted in each can never collide with an ounce-measured ingredient of
// the same name.
package demand

import "sort"

// Key identifies one accumulated demand line.
type Key struct {
	Ingredient string
	Unit       string // "oz" | "each" | "dash" | "bottle" | "can" | "lbs"
}

// String renders the key the way the purchase tables spell it.
func (k Key) String() string { return k.Ingredient + " (" + k.Unit + ")" }

// Map accumulates non-negative demand quantities. It is purely additive:
// contributions sum, never overwrite, and nothing is ever subtracted.
type Map struct {
	entries map[Key]float64
}

// NewMap returns an empty demand map.
func NewMap() *Map {
	return &Map{entries: make(map[Key]float64)}
}

// Add accumulates qty under (ingredient, unit). Non-positive quantities
// are ignored so the map invariant (every quantity > 0) holds.
func (m *Map) Add(ingredient, unit string, qty float64) {
	if qty <= 0 {
		return
	}
	m.entries[Key{Ingredient: ingredient, Unit: unit}] += qty
}

// Get returns the accumulated quantity for k, zero when absent.
func (m *Map) Get(k Key) float64 { return m.entries[k] }

// Len returns the number of distinct (ingredient, unit) lines.
func (m *Map) Len() int { return len(m.entries) }

// Keys returns every key in a deterministic order.
func (m *Map) Keys() []Key {
	keys := make([]Key, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Ingredient != keys[j].Ingredient {
			return keys[i].Ingredient < keys[j].Ingredient
		}
		return keys[i].Unit < keys[j].Unit
	})
	return keys
}
