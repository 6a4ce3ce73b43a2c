package internal

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/kofalt/go-memoize"

	"car-rentals-api/internal/acquire"
	"car-rentals-api/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ResultCache memoizes acquisition results for one server session, keyed
// by a hash of the trip payload. No cross-request synchronization is
// needed beyond what the memoizer provides.
type ResultCache struct {
	acquirer *acquire.Acquirer
	memo     *memoize.Memoizer
}

func NewResultCache(acquirer *acquire.Acquirer, ttl time.Duration) *ResultCache {
	return &ResultCache{
		acquirer: acquirer,
		memo:     memoize.NewMemoizer(ttl, 2*ttl),
	}
}

// Acquire returns the cached result for an identical trip when one is
// fresh, otherwise runs the acquisition chain and caches the outcome.
// Errors are not cached, so a rejected trip does not poison the key.
func (c *ResultCache) Acquire(ctx context.Context, trip models.Trip) (*models.AcquisitionResult, error) {
	key, err := cacheKey(trip)
	if err != nil {
		return c.acquirer.Acquire(ctx, trip)
	}

	value, err, _ := c.memo.Memoize(key, func() (interface{}, error) {
		return c.acquirer.Acquire(ctx, trip)
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.AcquisitionResult), nil
}

func cacheKey(trip models.Trip) (string, error) {
	payload, err := json.Marshal(struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
		Pickup      string `json:"pickup"`
		Return      string `json:"return"`
		RoundTrip   bool   `json:"round_trip"`
		CarSize     string `json:"car_size"`
	}{
		Origin:      trip.Origin.String(),
		Destination: trip.Destination.String(),
		Pickup:      trip.PickupDate.Format("2006-01-02"),
		Return:      trip.ReturnDate.Format("2006-01-02"),
		RoundTrip:   trip.RoundTrip,
		CarSize:     string(trip.CarSize),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("acquire_%x", md5.Sum(payload)), nil
}
