// Package booking defines the event-booking submission the quote engine
// consumes. Numeric fields arrive already parsed; Sanitize coerces anything
// malformed-but-well-typed into a safe value so the engine never fails.
package booking

import (
	"math"
	"strings"
)

// BarType selects the labor rate and the default crowd preset.
type BarType string

const (
	OpenBar BarType = "Open Bar"
	CashBar BarType = "Cash Bar"
)

// ParseBarType normalizes free-form bar-type text. Anything unrecognized
// is treated as an open bar, the more generous default.
func ParseBarType(s string) BarType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash bar", "cash", "cash_bar":
		return CashBar
	default:
		return OpenBar
	}
}

// Request is an immutable snapshot of one form submission.
type Request struct {
	// Event parameters the engine interprets.
	Guests         int      `json:"guests"`
	BarType        BarType  `json:"bar_type"`
	WantsCocktails bool     `json:"wants_cocktails"`
	Cocktails      []string `json:"cocktails"`
	ServiceHours   float64  `json:"service_hours"`
	CrowdType      string   `json:"crowd_type,omitempty"`
	DrinksPerGuest float64  `json:"drinks_per_guest,omitempty"`
	TravelKm       float64  `json:"travel_km"`

	// Contact and event metadata, echoed back untouched.
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Date            string `json:"date,omitempty"`
	Occasion        string `json:"occasion,omitempty"`
	Location        string `json:"location,omitempty"`
	Budget          string `json:"budget,omitempty"`
	LiquorProvider  string `json:"liquor_provider,omitempty"`
	CupPreference   string `json:"cup_preference,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
	ReferralSource  string `json:"referral_source,omitempty"`
}

// Sanitize returns a copy with every numeric field coerced into the range
// the engine assumes: non-finite and negative values become zero, and a
// missing service-hours value falls back to minHours.
func (r Request) Sanitize(minHours float64) Request {
	r.Guests = clampInt(r.Guests)
	r.ServiceHours = clampFloat(r.ServiceHours)
	if r.ServiceHours == 0 {
		r.ServiceHours = minHours
	}
	r.DrinksPerGuest = clampFloat(r.DrinksPerGuest)
	r.TravelKm = clampFloat(r.TravelKm)
	if r.BarType != CashBar {
		r.BarType = OpenBar
	}
	return r
}

func clampInt(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func clampFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
