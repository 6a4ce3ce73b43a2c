package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"car-rentals-api/internal"
	"car-rentals-api/internal/directory"
	"car-rentals-api/internal/models"
	"car-rentals-api/internal/stats"
)

const (
	defaultRentalDays   = 3
	priceBucketSize     = 10
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type SearchResponse struct {
	Result     *models.AcquisitionResult `json:"result"`
	Statistics *stats.Summary            `json:"statistics,omitempty"`
}

// Search runs the acquisition chain for the trip described by the query
// parameters and records the outcome in the search history.
func Search(cache *internal.ResultCache, repo internal.SearchHistoryRepository) func(c *gin.Context) {
	return func(c *gin.Context) {
		trip, err := parseTrip(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := cache.Acquire(c.Request.Context(), trip)
		if err != nil {
			var validationErr *models.ValidationError
			if errors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
				return
			}
			log.Printf("error while acquiring rental options: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
			return
		}

		if err := repo.Insert(internal.NewSearchRecord(trip, result)); err != nil {
			log.Printf("failed to record search history: %v", err)
		}

		c.JSON(http.StatusOK, SearchResponse{
			Result:     result,
			Statistics: stats.Derive(result.Options, priceBucketSize),
		})
	}
}

// History returns the most recent searches, newest first.
func History(repo internal.SearchHistoryRepository) func(c *gin.Context) {
	return func(c *gin.Context) {
		limit := defaultHistoryLimit
		if limitStr := c.Query("limit"); limitStr != "" {
			l, err := strconv.Atoi(limitStr)
			if err != nil || l < 1 || l > maxHistoryLimit {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
				return
			}
			limit = l
		}

		records, err := repo.Recent(limit)
		if err != nil {
			log.Printf("error while fetching search history: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"searches": records})
	}
}

// Locations returns the pickup/drop-off catalogue grouped by state.
func Locations() func(c *gin.Context) {
	return func(c *gin.Context) {
		states, err := directory.GetStateCities()
		if err != nil {
			log.Printf("error while loading city catalogue: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"states": states})
	}
}

func parseTrip(c *gin.Context) (models.Trip, error) {
	roundTrip := false
	if roundTripStr := c.Query("round_trip"); roundTripStr != "" {
		parsed, err := strconv.ParseBool(roundTripStr)
		if err != nil {
			return models.Trip{}, &models.ValidationError{Message: "round_trip must be true or false"}
		}
		roundTrip = parsed
	}

	origin, err := models.ParseLocation(c.Query("from"))
	if err != nil {
		return models.Trip{}, err
	}

	destination := origin
	if !roundTrip {
		destination, err = models.ParseLocation(c.Query("to"))
		if err != nil {
			return models.Trip{}, err
		}
	}

	pickup, err := parseDate(c.Query("pickup"), time.Now().AddDate(0, 0, 1))
	if err != nil {
		return models.Trip{}, err
	}
	dropoff, err := parseDate(c.Query("dropoff"), pickup.AddDate(0, 0, defaultRentalDays))
	if err != nil {
		return models.Trip{}, err
	}

	return models.Trip{
		Origin:      origin,
		Destination: destination,
		PickupDate:  pickup,
		ReturnDate:  dropoff,
		RoundTrip:   roundTrip,
		CarSize:     models.CarSize(c.DefaultQuery("car_size", string(models.CarSizeAny))),
	}, nil
}

// parseDate is calendar-aware: "2024-13-01" is rejected here even though
// it matches the date shape accepted in provider URLs.
func parseDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback.Truncate(24 * time.Hour), nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &models.ValidationError{Message: "dates must be valid and in YYYY-MM-DD format"}
	}
	return parsed, nil
}
