package geo

import (
	"fmt"
	"strings"

	"car-rentals-api/internal/models"
)

// Region is one of five coarse US buckets used by the distance and route
// heuristics when geocoding is unavailable.
type Region string

const (
	RegionNortheast Region = "northeast"
	RegionSoutheast Region = "southeast"
	RegionMidwest   Region = "midwest"
	RegionSouthwest Region = "southwest"
	RegionWest      Region = "west"
	RegionUnknown   Region = "unknown"
)

type stateRegion struct {
	state  string
	region Region
}

// Classification is by case-insensitive substring against the full
// "City, State" key, first match wins. Order therefore matters: e.g.
// "Washington DC" must hit District of Columbia before Washington state
// would.
var stateRegions = []stateRegion{
	{"district of columbia", RegionNortheast},
	{"new hampshire", RegionNortheast},
	{"massachusetts", RegionNortheast},
	{"rhode island", RegionNortheast},
	{"connecticut", RegionNortheast},
	{"pennsylvania", RegionNortheast},
	{"new jersey", RegionNortheast},
	{"new york", RegionNortheast},
	{"delaware", RegionNortheast},
	{"maryland", RegionNortheast},
	{"vermont", RegionNortheast},
	{"maine", RegionNortheast},

	{"north carolina", RegionSoutheast},
	{"south carolina", RegionSoutheast},
	{"mississippi", RegionSoutheast},
	{"louisiana", RegionSoutheast},
	{"virginia", RegionSoutheast},
	{"tennessee", RegionSoutheast},
	{"kentucky", RegionSoutheast},
	{"arkansas", RegionSoutheast},
	{"georgia", RegionSoutheast},
	{"florida", RegionSoutheast},
	{"alabama", RegionSoutheast},

	{"north dakota", RegionMidwest},
	{"south dakota", RegionMidwest},
	{"minnesota", RegionMidwest},
	{"wisconsin", RegionMidwest},
	{"michigan", RegionMidwest},
	{"illinois", RegionMidwest},
	{"nebraska", RegionMidwest},
	{"missouri", RegionMidwest},
	{"indiana", RegionMidwest},
	{"kansas", RegionMidwest},
	{"ohio", RegionMidwest},
	{"iowa", RegionMidwest},

	{"new mexico", RegionSouthwest},
	{"oklahoma", RegionSouthwest},
	{"arizona", RegionSouthwest},
	{"texas", RegionSouthwest},

	{"california", RegionWest},
	{"washington", RegionWest},
	{"colorado", RegionWest},
	{"montana", RegionWest},
	{"wyoming", RegionWest},
	{"oregon", RegionWest},
	{"nevada", RegionWest},
	{"hawaii", RegionWest},
	{"alaska", RegionWest},
	{"idaho", RegionWest},
	{"utah", RegionWest},
}

// RegionOf classifies a location into a region, or RegionUnknown when no
// state name matches.
func RegionOf(loc models.Location) Region {
	key := strings.ToLower(loc.String())
	for _, sr := range stateRegions {
		if strings.Contains(key, sr.state) {
			return sr.region
		}
	}
	return RegionUnknown
}

// Approximate mileage between region pairs. Lookups are symmetric; pairs
// absent from the table fall back to defaultRegionDistance.
var regionDistances = map[string]int{
	"northeast-northeast": 200,
	"northeast-southeast": 900,
	"northeast-midwest":   800,
	"northeast-southwest": 1600,
	"northeast-west":      2700,
	"southeast-southeast": 300,
	"southeast-midwest":   800,
	"southeast-southwest": 1000,
	"southeast-west":      2400,
	"midwest-midwest":     400,
	"midwest-southwest":   900,
	"midwest-west":        1700,
	"southwest-southwest": 500,
	"southwest-west":      800,
	"west-west":           500,
}

const defaultRegionDistance = 1000

func regionDistance(from, to Region) int {
	if miles, ok := regionDistances[fmt.Sprintf("%s-%s", from, to)]; ok {
		return miles
	}
	if miles, ok := regionDistances[fmt.Sprintf("%s-%s", to, from)]; ok {
		return miles
	}
	return defaultRegionDistance
}
