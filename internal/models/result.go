package models

// Source labels the provenance of an acquisition result. Degraded sources
// are reported honestly rather than hidden.
type Source string

const (
	SourceLiveBrowser Source = "live_browser"
	SourceLiveFetch   Source = "live_fetch"
	SourceSynthetic   Source = "synthetic"
)

// RouteInfo describes the estimated drive between pickup and drop-off.
// For round trips, distance and time cover both legs.
type RouteInfo struct {
	DistanceMiles  int     `json:"distance"`
	DriveTimeHours float64 `json:"drive_time"`
	MainRoute      string  `json:"main_route"`
}

// RentalOption is one offer in the canonical schema, whichever source
// produced it.
type RentalOption struct {
	Company      string   `json:"company"`
	CarType      string   `json:"car_type"`
	PricePerDay  int      `json:"price"`
	TotalPrice   int      `json:"total_price"`
	Features     []string `json:"features"`
	Rating       float64  `json:"rating"`
	SpecialOffer *string  `json:"special_offer"`
	Website      string   `json:"website"`
}

// AcquisitionResult is the read-only snapshot returned to every caller.
// Options always holds between 3 and 5 entries.
type AcquisitionResult struct {
	Source    Source         `json:"source"`
	Options   []RentalOption `json:"options"`
	RouteInfo RouteInfo      `json:"route_info"`
	Deals     []string       `json:"deals"`
	Tips      []string       `json:"tips"`
	URL       string         `json:"url"`
	RoundTrip bool           `json:"is_round_trip"`
}
