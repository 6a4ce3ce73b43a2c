// Package advice derives the tip and deal strings attached to every
// acquisition result. Tips are deterministic and priority-ordered; deals
// are intentionally shuffled so repeat visitors see variety.
package advice

import (
	"fmt"
	"math/rand"
	"strings"

	"car-rentals-api/internal/models"
)

const maxTips = 5

// maxRoundTripTips caps the round-trip category so lower-priority
// location advice still surfaces within the tip budget.
const maxRoundTripTips = 2

const oneWayFeeTip = "Check for one-way rental fees if applicable"

var genericTips = []string{
	"Book 2+ weeks ahead for best rates",
	"Check insurance coverage before renting",
	"Fill gas before return to avoid high fees",
	"Take photos of the car before driving off",
	"Inspect the car thoroughly before accepting",
	"Compare prices across multiple companies",
	"Check for one-way rental fees if applicable",
	"Consider prepaying for fuel if gas prices are high",
	"Verify if your credit card offers rental insurance",
	"Bring a credit card, as many rentals don't accept debit",
}

var roundTripTips = []string{
	"Round-trip rentals typically offer better daily rates",
	"Check for unlimited mileage on round-trip rentals",
	"For multi-day trips, weekly rates are often cheaper than daily",
	"Look for special round-trip weekend rates",
	"Return to the same location for best pricing",
}

var (
	beachKeywords    = []string{"miami", "beach", "florida", "hawaii", "california"}
	mountainKeywords = []string{"mountain", "ski", "denver", "colorado", "vermont"}
	urbanKeywords    = []string{"new york", "chicago", "boston", "philadelphia", "san francisco"}
)

var beachTips = []string{
	"Request a car with good AC for hot weather",
	"Consider a convertible for beach driving",
	"Ask about water/sand damage policies",
}

var mountainTips = []string{
	"Consider getting a 4WD vehicle for mountain roads",
	"Check if snow chains or winter tires are needed",
	"Verify the vehicle has sufficient cargo space for gear",
}

var urbanTips = []string{
	"Opt for a compact car for easier parking in city areas",
	"Consider using public transit instead in dense areas",
	"Check if your hotel charges for parking",
}

// Tips assembles at most five tips for a trip, highest priority first:
// round-trip advice (capped) or the one-way fee warning, then
// long-distance, then location-themed, then generic. Exact duplicates are
// dropped; first-seen order is preserved.
func Tips(trip models.Trip, route models.RouteInfo) []string {
	var all []string
	if trip.RoundTrip {
		all = append(all, roundTripTips[:maxRoundTripTips]...)
	} else {
		all = append(all, oneWayFeeTip)
	}
	all = append(all, longDistanceTips(route)...)
	all = append(all, locationTips(trip)...)
	all = append(all, genericTips...)

	seen := make(map[string]bool, maxTips)
	tips := make([]string, 0, maxTips)
	for _, tip := range all {
		if seen[tip] {
			continue
		}
		seen[tip] = true
		tips = append(tips, tip)
		if len(tips) >= maxTips {
			break
		}
	}
	return tips
}

func longDistanceTips(route models.RouteInfo) []string {
	var tips []string
	if route.DistanceMiles > 500 {
		tips = append(tips, "Check the vehicle's comfort for long drives")
	}
	if route.DistanceMiles > 1000 {
		tips = append(tips,
			"Plan your route with regular rest stops every 2-3 hours",
			"Consider reserving hotels along your route in advance")
	}
	if route.DistanceMiles > 1500 {
		tips = append(tips,
			"Verify if there are mileage limits on your rental",
			"Pack emergency supplies for long interstate drives")
	}
	if route.DriveTimeHours > 10 {
		tips = append(tips, fmt.Sprintf("Plan for a %d day journey with overnight stops", int(route.DriveTimeHours/8)))
	}
	return tips
}

func locationTips(trip models.Trip) []string {
	fromKey := strings.ToLower(trip.Origin.String())
	toKey := strings.ToLower(trip.Destination.String())

	var tips []string
	if matchesAny(fromKey, toKey, beachKeywords) {
		tips = append(tips, beachTips...)
	}
	if matchesAny(fromKey, toKey, mountainKeywords) {
		tips = append(tips, mountainTips...)
	}
	if matchesAny(fromKey, toKey, urbanKeywords) {
		tips = append(tips, urbanTips...)
	}
	return tips
}

func matchesAny(fromKey, toKey string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(fromKey, kw) || strings.Contains(toKey, kw) {
			return true
		}
	}
	return false
}

var standardDeals = []string{
	"Weekend special: 15% off weekly rentals",
	"Free GPS with 3+ day rentals",
	"No drop-off fees for same-state returns",
}

// Deals collects standard, distance-tier and location-specific deals,
// shuffles them and returns between three and five. Unlike tips and
// synthetic pricing, this list is deliberately non-deterministic.
func Deals(trip models.Trip, route models.RouteInfo) []string {
	deals := make([]string, 0, 10)
	deals = append(deals, standardDeals...)

	if route.DistanceMiles > 500 {
		deals = append(deals, "Long-distance special: reduced fees")
	}
	if route.DistanceMiles > 1000 {
		deals = append(deals, "Interstate journey package with roadside assistance")
	}
	if route.DistanceMiles > 1500 {
		deals = append(deals, "Cross-country special: unlimited mileage included")
	}

	fromKey := trip.Origin.String()
	toKey := trip.Destination.String()
	if strings.Contains(fromKey, "New York") || strings.Contains(toKey, "New York") {
		deals = append(deals, "NYC special: Tunnel/bridge fee coverage")
	}
	if strings.Contains(fromKey, "Las Vegas") || strings.Contains(toKey, "Las Vegas") {
		deals = append(deals, "Vegas special: Free upgrade to luxury car")
	}
	if strings.Contains(trip.Origin.State, "Florida") || strings.Contains(trip.Destination.State, "Florida") {
		deals = append(deals, "Florida sunshine package: Convertible upgrade $10/day")
	}
	if trip.Origin.State == trip.Destination.State {
		deals = append(deals, fmt.Sprintf("%s resident special: 10%% off with ID", trip.Origin.State))
	}

	rand.Shuffle(len(deals), func(i, j int) {
		deals[i], deals[j] = deals[j], deals[i]
	})

	if len(deals) > 5 {
		deals = deals[:5]
	}
	return deals
}
