// Package geo computes the one-way travel distance for a booking from a
// geocoded event address.
package geo

import "math"

const earthRadiusKm = 6371.0

// Point is a geocoded location, as resolved by the address-autocomplete
// collaborator.
type Point struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
}

// HomeBase is the fixed origin travel fees are measured from.
var HomeBase = Point{Lat: 44.6488, Lng: -63.5752, FormattedAddress: "Halifax, NS"}

// DistanceKm returns the great-circle distance between two points.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TravelKm returns the one-way distance from home base to the event.
func TravelKm(event Point) float64 {
	return DistanceKm(HomeBase, event)
}
