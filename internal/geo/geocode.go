package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultGeocoderBaseURL = "https://nominatim.openstreetmap.org"

// Nominatim usage policy requires an identifying User-Agent.
const geocoderUserAgent = "car-rentals-api/1.0"

// Coordinates is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Geocoder resolves free-text locations to coordinates. A nil result with
// a nil error means "no match": callers are expected to fall back, not
// fail. One attempt per call; retry policy belongs to the orchestrator.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (*Coordinates, error)
}

type nominatimGeocoder struct {
	client *resty.Client
}

// NewGeocoder builds a Geocoder against a Nominatim-compatible endpoint.
func NewGeocoder(baseURL string, timeout time.Duration) Geocoder {
	if baseURL == "" {
		baseURL = DefaultGeocoderBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", geocoderUserAgent)
	return &nominatimGeocoder{client: client}
}

type nominatimResult struct {
	Lat float64 `json:"lat,string"`
	Lon float64 `json:"lon,string"`
}

func (g *nominatimGeocoder) Geocode(ctx context.Context, location string) (*Coordinates, error) {
	if location == "" {
		return nil, nil
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      location,
			"format": "json",
			"limit":  "1",
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("geocode request for %q failed: %w", location, err)
	}
	if resp.StatusCode() > 299 {
		return nil, fmt.Errorf("geocode request for %q returned status %s", location, resp.Status())
	}

	var results []nominatimResult
	if err := json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geocode response for %q: %w", location, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &Coordinates{Lat: results[0].Lat, Lon: results[0].Lon}, nil
}
