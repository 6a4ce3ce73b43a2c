// Package searchurl builds provider search URLs of the form
// /cars/<origin>[-to-<dest>]/<pickup>/<return>?sort=price_a.
package searchurl

import (
	"fmt"
	"regexp"
	"strings"

	"car-rentals-api/internal/models"
)

const DefaultBaseURL = "https://www.kayak.com"

// FallbackSlug stands in when a location slugifies to nothing.
const FallbackSlug = "united-states"

const dateLayout = "2006-01-02"

var (
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators = regexp.MustCompile(`[\s-]+`)
)

// Slugify lowercases, strips characters outside [a-z0-9-], collapses
// whitespace runs into single hyphens and trims the ends.
func Slugify(location string) string {
	slug := strings.ToLower(location)
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return FallbackSlug
	}
	return slug
}

// IsValidDateFormat is a format-only check for ISO YYYY-MM-DD strings. It
// accepts impossible calendar dates ("2024-13-01"); calendar validation
// belongs to the request parser.
func IsValidDateFormat(date string) bool {
	return datePattern.MatchString(date)
}

// BuildURL assembles a provider search URL from pre-slugged parts. Dates
// that fail the format check are dropped rather than guessed at.
func BuildURL(baseURL, location, pickup, dropoff string) string {
	if !IsValidDateFormat(pickup) || !IsValidDateFormat(dropoff) {
		return fmt.Sprintf("%s/cars/%s", baseURL, location)
	}
	return fmt.Sprintf("%s/cars/%s/%s/%s?sort=price_a", baseURL, location, pickup, dropoff)
}

// Build derives the search URL for a trip. Round trips carry a single
// location segment; one-way trips use <origin>-to-<destination>.
func Build(baseURL string, trip models.Trip) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	location := Slugify(trip.Origin.String())
	if !trip.RoundTrip {
		location = fmt.Sprintf("%s-to-%s", location, Slugify(trip.Destination.String()))
	}

	url := BuildURL(baseURL, location, trip.PickupDate.Format(dateLayout), trip.ReturnDate.Format(dateLayout))
	if trip.CarSize != models.CarSizeAny && trip.CarSize != "" {
		url += "&carsize=" + strings.ToLower(string(trip.CarSize))
	}
	return url
}
