package advice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-rentals-api/internal/models"
)

func adviceTrip(origin, destination models.Location, roundTrip bool) models.Trip {
	return models.Trip{
		Origin:      origin,
		Destination: destination,
		PickupDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:  time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		RoundTrip:   roundTrip,
	}
}

func TestTipsAreDeterministic(t *testing.T) {
	trip := adviceTrip(
		models.Location{City: "New York", State: "New York"},
		models.Location{City: "Los Angeles", State: "California"},
		false)
	route := models.RouteInfo{DistanceMiles: 2600, DriveTimeHours: 40.0}

	assert.Equal(t, Tips(trip, route), Tips(trip, route))
}

func TestTipsRoundTripPriority(t *testing.T) {
	trip := adviceTrip(
		models.Location{City: "Miami", State: "Florida"},
		models.Location{City: "Miami", State: "Florida"},
		true)
	route := models.RouteInfo{DistanceMiles: 100, DriveTimeHours: 1.5}

	tips := Tips(trip, route)
	require.Len(t, tips, 5)

	// Capped round-trip advice leads, location advice still surfaces.
	assert.Equal(t, roundTripTips[:2], tips[:2])
	assert.Equal(t, beachTips, tips[2:])
}

func TestTipsLongDistanceBeforeLocation(t *testing.T) {
	trip := adviceTrip(
		models.Location{City: "New York", State: "New York"},
		models.Location{City: "Los Angeles", State: "California"},
		false)
	route := models.RouteInfo{DistanceMiles: 2600, DriveTimeHours: 40.0}

	tips := Tips(trip, route)
	require.Len(t, tips, 5)
	assert.Equal(t, oneWayFeeTip, tips[0])
	assert.Equal(t, "Check the vehicle's comfort for long drives", tips[1])
	assert.Contains(t, tips, "Plan your route with regular rest stops every 2-3 hours")
	assert.Contains(t, tips, "Verify if there are mileage limits on your rental")
}

func TestTipsLocationThemed(t *testing.T) {
	trip := adviceTrip(
		models.Location{City: "Orlando", State: "Florida"},
		models.Location{City: "Miami", State: "Florida"},
		false)
	route := models.RouteInfo{DistanceMiles: 230, DriveTimeHours: 3.5}

	tips := Tips(trip, route)
	require.Len(t, tips, 5)
	assert.Equal(t, oneWayFeeTip, tips[0])
	assert.Equal(t, beachTips, tips[1:4])
	assert.Equal(t, genericTips[0], tips[4])
}

func TestTipsGenericFallback(t *testing.T) {
	trip := adviceTrip(
		models.Location{City: "Columbus", State: "Ohio"},
		models.Location{City: "Indianapolis", State: "Indiana"},
		false)
	route := models.RouteInfo{DistanceMiles: 175, DriveTimeHours: 2.7}

	tips := Tips(trip, route)
	require.Len(t, tips, 5)
	assert.Equal(t, oneWayFeeTip, tips[0])
	assert.Equal(t, genericTips[:4], tips[1:])
}

func TestDealsCount(t *testing.T) {
	trip := adviceTrip(
		models.Location{City: "Columbus", State: "Ohio"},
		models.Location{City: "Indianapolis", State: "Indiana"},
		false)
	route := models.RouteInfo{DistanceMiles: 175}

	deals := Deals(trip, route)
	assert.GreaterOrEqual(t, len(deals), 3)
	assert.LessOrEqual(t, len(deals), 5)
}

func TestDealsSameStateResident(t *testing.T) {
	trip := adviceTrip(
		models.Location{City: "Orlando", State: "Florida"},
		models.Location{City: "Miami", State: "Florida"},
		false)
	route := models.RouteInfo{DistanceMiles: 230}

	deals := Deals(trip, route)
	require.Len(t, deals, 5)
	assert.Contains(t, deals, "Florida sunshine package: Convertible upgrade $10/day")
	assert.Contains(t, deals, "Florida resident special: 10% off with ID")
}

func TestDealsLongDistanceTiers(t *testing.T) {
	trip := adviceTrip(
		models.Location{City: "Chicago", State: "Illinois"},
		models.Location{City: "Phoenix", State: "Arizona"},
		false)
	route := models.RouteInfo{DistanceMiles: 1800}

	deals := Deals(trip, route)
	assert.Len(t, deals, 5)

	// The pool holds all three distance tiers plus the standard deals;
	// the shuffle keeps five of six, so at least two tiers survive.
	tierCount := 0
	for _, deal := range deals {
		switch deal {
		case "Long-distance special: reduced fees",
			"Interstate journey package with roadside assistance",
			"Cross-country special: unlimited mileage included":
			tierCount++
		}
	}
	assert.GreaterOrEqual(t, tierCount, 2)
}
