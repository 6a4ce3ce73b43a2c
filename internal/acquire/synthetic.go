package acquire

import (
	"fmt"
	"sort"

	"car-rentals-api/internal/directory"
	"car-rentals-api/internal/models"
	"car-rentals-api/internal/seeded"
)

const baseDailyRate = 40

var syntheticCompanies = []string{"Enterprise", "Hertz", "Avis", "Budget", "National"}

var carTypes = []string{"Economy", "Compact", "Mid-size", "Full-size", "SUV", "Luxury"}

var carFeatures = map[string][]string{
	"Economy":   {"4 doors", "Good MPG", "Compact size"},
	"Compact":   {"4 doors", "Good MPG", "Easy parking"},
	"Mid-size":  {"4 doors", "Comfortable", "Moderate MPG"},
	"Full-size": {"4 doors", "Spacious", "Moderate MPG"},
	"SUV":       {"5 doors", "Cargo space", "All-weather"},
	"Luxury":    {"Premium interior", "High performance", "Advanced features"},
}

var roundTripOffers = []string{
	"Round-trip special: Free tank of gas",
	"Round-trip discount: No drop-off fees",
	"Round-trip bonus: Free vehicle upgrade",
	"Round-trip perk: Free GPS navigation",
	"Round-trip promo: 10% off weekly rates",
}

var oneWayOffers = []string{
	"Free additional driver",
	"10% discount for AAA members",
	"Free GPS navigation",
	"Free cancellation",
	"Free upgrade when available",
}

// tripSeed keys every derived value so two queries for the same trip
// produce the same synthetic fleet while different trips diverge.
func tripSeed(trip models.Trip) string {
	seed := fmt.Sprintf("%s-%s-%s", trip.Origin, trip.Destination, trip.PickupDate.Format("2006-01-02"))
	if trip.RoundTrip {
		seed += "-roundtrip"
	}
	return seed
}

// distanceFactor scales daily rates by trip length. Thresholds are
// strictly greater-than: exactly 500 miles stays at the lower tier.
func distanceFactor(miles int, roundTrip bool) float64 {
	factor := 1.0
	switch {
	case miles > 1500:
		factor = 1.6
	case miles > 1000:
		factor = 1.4
	case miles > 500:
		factor = 1.2
	}
	if roundTrip {
		factor *= 0.85
	}
	return factor
}

// syntheticOptions generates the guaranteed-terminal fleet: a pure
// function of the trip and route, so it cannot fail and never disagrees
// with itself between calls.
func syntheticOptions(trip models.Trip, route models.RouteInfo, companies directory.Companies) []models.RentalOption {
	seed := tripSeed(trip)
	factor := distanceFactor(route.DistanceMiles, trip.RoundTrip)
	days := trip.RentalDays()

	options := make([]models.RentalOption, 0, len(syntheticCompanies))
	for _, company := range syntheticCompanies {
		carType := string(trip.CarSize)
		typeIndex := carTypeIndex(carType)
		if trip.CarSize == models.CarSizeAny || typeIndex < 0 {
			typeIndex = seeded.Value(fmt.Sprintf("%s-%s-type", seed, company), 0, len(carTypes)-1)
			carType = carTypes[typeIndex]
		}

		carBaseRate := baseDailyRate + 10*typeIndex
		variation := seeded.Value(fmt.Sprintf("%s-%s-var", seed, company), -5, 5)
		rate := int(float64(carBaseRate)*factor) + variation

		rating := float64(seeded.Value(fmt.Sprintf("%s-%s-rating", seed, company), 35, 50)) / 10

		var specialOffer *string
		if seeded.Value(fmt.Sprintf("%s-%s-special", seed, company), 0, 9) < 3 {
			offers := oneWayOffers
			if trip.RoundTrip {
				offers = roundTripOffers
			}
			offer := seeded.Pick(fmt.Sprintf("%s-%s-special-type", seed, company), offers)
			specialOffer = &offer
		}

		options = append(options, models.RentalOption{
			Company:      company,
			CarType:      carType,
			PricePerDay:  rate,
			TotalPrice:   rate * days,
			Features:     carFeatures[carType],
			Rating:       rating,
			SpecialOffer: specialOffer,
			Website:      companies.WebsiteFor(company),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].PricePerDay < options[j].PricePerDay
	})

	return options
}

func carTypeIndex(carType string) int {
	for i, t := range carTypes {
		if t == carType {
			return i
		}
	}
	return -1
}
