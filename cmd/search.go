package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	jsoniter "github.com/json-iterator/go"
	_ "github.com/mattn/go-sqlite3"

	"car-rentals-api/internal"
	"car-rentals-api/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SearchParams carries the command-line form of a trip before parsing.
type SearchParams struct {
	From      string
	To        string
	Pickup    string
	Dropoff   string
	RoundTrip bool
	CarSize   string
}

// Search runs a single acquisition from the command line and prints the
// result as JSON. The search is recorded in history like any API request.
func Search(dbPath string, params SearchParams) error {

	_, acquirer, repo, err := bootstrap(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("failed to close repository: %v", err)
		}
	}()

	trip, err := paramsToTrip(params)
	if err != nil {
		return err
	}

	result, err := acquirer.Acquire(context.Background(), trip)
	if err != nil {
		return fmt.Errorf("acquisition failed: %w", err)
	}

	if err := repo.Insert(internal.NewSearchRecord(trip, result)); err != nil {
		log.Printf("failed to record search history: %v", err)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	fmt.Println(string(output))

	return nil
}

func paramsToTrip(params SearchParams) (models.Trip, error) {
	origin, err := models.ParseLocation(params.From)
	if err != nil {
		return models.Trip{}, err
	}

	destination := origin
	if !params.RoundTrip {
		destination, err = models.ParseLocation(params.To)
		if err != nil {
			return models.Trip{}, err
		}
	}

	pickup := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	if params.Pickup != "" {
		pickup, err = time.Parse("2006-01-02", params.Pickup)
		if err != nil {
			return models.Trip{}, &models.ValidationError{Message: "pickup date must be valid and in YYYY-MM-DD format"}
		}
	}

	dropoff := pickup.AddDate(0, 0, 3)
	if params.Dropoff != "" {
		dropoff, err = time.Parse("2006-01-02", params.Dropoff)
		if err != nil {
			return models.Trip{}, &models.ValidationError{Message: "dropoff date must be valid and in YYYY-MM-DD format"}
		}
	}

	carSize := models.CarSizeAny
	if params.CarSize != "" {
		carSize = models.CarSize(params.CarSize)
	}

	return models.Trip{
		Origin:      origin,
		Destination: destination,
		PickupDate:  pickup,
		ReturnDate:  dropoff,
		RoundTrip:   params.RoundTrip,
		CarSize:     carSize,
	}, nil
}
