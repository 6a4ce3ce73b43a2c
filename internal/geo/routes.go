package geo

import (
	"strings"

	"car-rentals-api/internal/models"
)

// DefaultRoute is returned when neither the region table nor the city
// overrides match.
const DefaultRoute = "Major Interstates"

type regionRoute struct {
	from    Region
	to      Region
	highway string
}

// Highway direction is not symmetric, so each direction gets its own row.
var regionRoutes = []regionRoute{
	{RegionNortheast, RegionSoutheast, "I-95 S"},
	{RegionSoutheast, RegionNortheast, "I-95 N"},
	{RegionNortheast, RegionMidwest, "I-80 W, I-90 W"},
	{RegionMidwest, RegionNortheast, "I-90 E, I-80 E"},
	{RegionNortheast, RegionWest, "I-80 W"},
	{RegionWest, RegionNortheast, "I-80 E"},
	{RegionMidwest, RegionWest, "I-80 W, I-90 W"},
	{RegionWest, RegionMidwest, "I-90 E, I-80 E"},
	{RegionMidwest, RegionSouthwest, "I-55 S, I-44 W, I-40 W"},
	{RegionSouthwest, RegionMidwest, "I-40 E, I-44 E, I-55 N"},
	{RegionSoutheast, RegionSouthwest, "I-10 W"},
	{RegionSouthwest, RegionSoutheast, "I-10 E"},
	{RegionSouthwest, RegionWest, "I-10 W, I-15 N"},
	{RegionWest, RegionSouthwest, "I-15 S, I-10 E"},
}

type cityRoute struct {
	from    string
	to      string
	highway string
}

// Literal city-pair overrides, matched case-insensitively by substring
// when the region table has no entry (mostly intra-region trips).
var cityRoutes = []cityRoute{
	{"new york", "boston", "I-95 N"},
	{"boston", "new york", "I-95 S"},
	{"los angeles", "san francisco", "I-5 N"},
	{"san francisco", "los angeles", "I-5 S"},
}

// RouteName resolves a human-readable highway description for a trip leg.
// Deterministic: same inputs always produce the same string.
func RouteName(origin, destination models.Location) string {
	fromRegion := RegionOf(origin)
	toRegion := RegionOf(destination)

	for _, rr := range regionRoutes {
		if rr.from == fromRegion && rr.to == toRegion {
			return rr.highway
		}
	}

	fromKey := strings.ToLower(origin.String())
	toKey := strings.ToLower(destination.String())
	for _, cr := range cityRoutes {
		if strings.Contains(fromKey, cr.from) && strings.Contains(toKey, cr.to) {
			return cr.highway
		}
	}

	return DefaultRoute
}
