package stats

import (
	"fmt"
	"math"

	"car-rentals-api/internal/models"
)

// Summary aggregates daily-rate statistics across one result's options.
type Summary struct {
	LowestDailyPrice    int            `json:"lowest_daily_price"`
	AverageDailyPrice   float64        `json:"average_daily_price"`
	HighestDailyPrice   int            `json:"highest_daily_price"`
	CheapestCompanies   []string       `json:"cheapest_companies"`
	StandardDeviation   float64        `json:"standard_deviation,omitempty"`
	PriceDistribution   map[string]int `json:"price_distribution"`
	CarTypeDistribution map[string]int `json:"car_type_distribution"`
}

// Derive computes the summary over a set of options, bucketing the price
// distribution into bands of bucketSize dollars.
func Derive(options []models.RentalOption, bucketSize int) *Summary {
	if len(options) == 0 {
		return nil
	}
	if bucketSize <= 0 {
		bucketSize = 10
	}

	summary := &Summary{
		PriceDistribution:   make(map[string]int),
		CarTypeDistribution: make(map[string]int),
	}

	lowest := options[0].PricePerDay
	highest := options[0].PricePerDay
	sum := 0

	for _, option := range options {
		if option.PricePerDay < lowest {
			lowest = option.PricePerDay
		}
		if option.PricePerDay > highest {
			highest = option.PricePerDay
		}
		sum += option.PricePerDay

		bucketStart := (option.PricePerDay / bucketSize) * bucketSize
		bucketEnd := bucketStart + bucketSize - 1
		bucketKey := fmt.Sprintf("$%d-$%d", bucketStart, bucketEnd)
		summary.PriceDistribution[bucketKey]++

		summary.CarTypeDistribution[option.CarType]++
	}

	summary.LowestDailyPrice = lowest
	summary.HighestDailyPrice = highest

	average := float64(sum) / float64(len(options))
	summary.AverageDailyPrice = math.Round(average*10) / 10

	for _, option := range options {
		if option.PricePerDay == lowest {
			summary.CheapestCompanies = append(summary.CheapestCompanies, option.Company)
		}
	}

	if len(options) > 1 {
		variance := 0.0
		for _, option := range options {
			variance += math.Pow(float64(option.PricePerDay)-average, 2)
		}
		variance /= float64(len(options))
		summary.StandardDeviation = math.Sqrt(variance)
	}

	return summary
}
