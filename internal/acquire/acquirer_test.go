package acquire

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-rentals-api/internal/geo"
	"car-rentals-api/internal/models"
	"car-rentals-api/internal/scrape"
)

type fakeGeocoder struct {
	coords map[string]*geo.Coordinates
}

func (f *fakeGeocoder) Geocode(_ context.Context, location string) (*geo.Coordinates, error) {
	return f.coords[location], nil
}

type fakeBrowser struct {
	markup string
	err    error
	calls  int
}

func (f *fakeBrowser) BrowseMarkup(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.markup, f.err
}

type fakeFetcher struct {
	markup string
	err    error
	calls  int
}

func (f *fakeFetcher) FetchMarkup(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.markup, f.err
}

var _ scrape.BrowserClient = (*fakeBrowser)(nil)
var _ scrape.FetchClient = (*fakeFetcher)(nil)

func resultsMarkup(numCards int) string {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < numCards; i++ {
		fmt.Fprintf(&sb, `<div class="c1LbP">
			<div class="J0g6-name">Hertz</div>
			<div class="zV27-price">$%d/day</div>
			<div class="KheO1">Economy</div>
			<div class="car-features">4 doors</div>
		</div>`, 45+i)
	}
	sb.WriteString("</body></html>")
	return sb.String()
}

func testEstimator() *geo.Estimator {
	return geo.NewEstimator(&fakeGeocoder{coords: map[string]*geo.Coordinates{
		"New York, New York":    {Lat: 40.7128, Lon: -74.0060},
		"Boston, Massachusetts": {Lat: 42.3601, Lon: -71.0589},
	}})
}

func testAcquirer(t *testing.T, browser scrape.BrowserClient, fetcher scrape.FetchClient) *Acquirer {
	companies := testCompanies(t)
	extractor := scrape.NewExtractor(scrape.KayakSelectors, companies)
	return New(browser, fetcher, testEstimator(), extractor, companies, "")
}

func TestAcquirePrefersBrowserStage(t *testing.T) {
	browser := &fakeBrowser{markup: resultsMarkup(4)}
	fetcher := &fakeFetcher{markup: resultsMarkup(4)}

	result, err := testAcquirer(t, browser, fetcher).Acquire(context.Background(), testTrip(false))
	require.NoError(t, err)

	assert.Equal(t, models.SourceLiveBrowser, result.Source)
	assert.Len(t, result.Options, 4)
	assert.Zero(t, fetcher.calls)
}

func TestAcquireFallsBackToFetch(t *testing.T) {
	browser := &fakeBrowser{err: errors.New("chrome not reachable")}
	fetcher := &fakeFetcher{markup: resultsMarkup(3)}

	result, err := testAcquirer(t, browser, fetcher).Acquire(context.Background(), testTrip(false))
	require.NoError(t, err)

	assert.Equal(t, models.SourceLiveFetch, result.Source)
	assert.Len(t, result.Options, 3)
	assert.Equal(t, 1, browser.calls)
}

func TestAcquireFallsBackToSynthetic(t *testing.T) {
	browser := &fakeBrowser{err: errors.New("chrome not reachable")}
	fetcher := &fakeFetcher{err: errors.New("HTTP status 403")}

	result, err := testAcquirer(t, browser, fetcher).Acquire(context.Background(), testTrip(false))
	require.NoError(t, err)

	assert.Equal(t, models.SourceSynthetic, result.Source)
	assert.Len(t, result.Options, 5)
	assert.NotEmpty(t, result.Tips)
	assert.NotEmpty(t, result.Deals)
}

func TestAcquireTreatsThinResultsAsFailure(t *testing.T) {
	// Two cards is below the acceptance bar even though extraction works.
	browser := &fakeBrowser{markup: resultsMarkup(2)}

	result, err := testAcquirer(t, browser, nil).Acquire(context.Background(), testTrip(false))
	require.NoError(t, err)

	assert.Equal(t, models.SourceSynthetic, result.Source)
	assert.Len(t, result.Options, 5)
}

func TestAcquireWithoutLiveStages(t *testing.T) {
	result, err := testAcquirer(t, nil, nil).Acquire(context.Background(), testTrip(false))
	require.NoError(t, err)

	assert.Equal(t, models.SourceSynthetic, result.Source)
	assert.False(t, result.RoundTrip)
	assert.Contains(t, result.URL, "new-york-new-york-to-boston-massachusetts")
}

func TestAcquireNormalizesTotalsAndWebsites(t *testing.T) {
	browser := &fakeBrowser{markup: resultsMarkup(3)}

	trip := testTrip(false)
	result, err := testAcquirer(t, browser, nil).Acquire(context.Background(), trip)
	require.NoError(t, err)

	days := trip.RentalDays()
	require.Equal(t, 3, days)
	for _, option := range result.Options {
		assert.Equal(t, option.PricePerDay*days, option.TotalPrice)
		assert.Equal(t, "https://www.hertz.com/rentacar/reservation/", option.Website)
	}
}

func TestAcquireRejectsSameLocationOneWay(t *testing.T) {
	trip := testTrip(false)
	trip.Destination = trip.Origin

	_, err := testAcquirer(t, nil, nil).Acquire(context.Background(), trip)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAcquireRejectsLongSameDayTrip(t *testing.T) {
	estimator := geo.NewEstimator(&fakeGeocoder{coords: map[string]*geo.Coordinates{
		"New York, New York":      {Lat: 40.7128, Lon: -74.0060},
		"Los Angeles, California": {Lat: 34.0522, Lon: -118.2437},
	}})
	companies := testCompanies(t)
	acquirer := New(nil, nil, estimator, scrape.NewExtractor(scrape.KayakSelectors, companies), companies, "")

	trip := testTrip(false)
	trip.Destination = models.Location{City: "Los Angeles", State: "California"}
	trip.ReturnDate = trip.PickupDate

	_, err := acquirer.Acquire(context.Background(), trip)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "same-day")
}

func TestAcquireShortSameDayTripIsAllowed(t *testing.T) {
	trip := testTrip(false)
	trip.ReturnDate = trip.PickupDate

	result, err := testAcquirer(t, nil, nil).Acquire(context.Background(), trip)
	require.NoError(t, err)

	// Same-day rentals still bill a full day.
	for _, option := range result.Options {
		assert.Equal(t, option.PricePerDay, option.TotalPrice)
	}
}

func TestAcquireRoundTrip(t *testing.T) {
	result, err := testAcquirer(t, nil, nil).Acquire(context.Background(), testTrip(true))
	require.NoError(t, err)

	assert.True(t, result.RoundTrip)
	assert.NotContains(t, result.URL, "-to-")
	assert.Contains(t, result.RouteInfo.MainRoute, "outbound")
	assert.Contains(t, result.RouteInfo.MainRoute, "return")
}

func TestMiamiRoundTripScenario(t *testing.T) {
	// Both legs geocode to the same point so the distance stays zero and
	// no long-distance deal can crowd the pool past the truncation cap.
	estimator := geo.NewEstimator(&fakeGeocoder{coords: map[string]*geo.Coordinates{
		"Miami, Florida": {Lat: 25.7617, Lon: -80.1918},
	}})
	companies := testCompanies(t)
	acquirer := New(nil, nil,
		estimator,
		scrape.NewExtractor(scrape.KayakSelectors, companies),
		companies, "")

	miami := models.Location{City: "Miami", State: "Florida"}
	trip := models.Trip{
		Origin:      miami,
		Destination: miami,
		PickupDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:  time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		RoundTrip:   true,
		CarSize:     models.CarSizeAny,
	}

	result, err := acquirer.Acquire(context.Background(), trip)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(result.Options), 3)
	require.LessOrEqual(t, len(result.Options), 5)
	for _, option := range result.Options {
		assert.Equal(t, option.PricePerDay*4, option.TotalPrice)
	}

	assert.Zero(t, result.RouteInfo.DistanceMiles)
	assert.Contains(t, result.Tips, "Consider a convertible for beach driving")
	assert.Contains(t, result.Deals, "Florida resident special: 10% off with ID")
}

func TestCrossCountryOneWayScenario(t *testing.T) {
	companies := testCompanies(t)
	acquirer := New(nil, nil,
		geo.NewEstimator(&fakeGeocoder{}),
		scrape.NewExtractor(scrape.KayakSelectors, companies),
		companies, "")

	trip := models.Trip{
		Origin:      models.Location{City: "New York City", State: "New York"},
		Destination: models.Location{City: "Los Angeles", State: "California"},
		PickupDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:  time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		CarSize:     models.CarSizeAny,
	}

	result, err := acquirer.Acquire(context.Background(), trip)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.RouteInfo.DistanceMiles, 2300)
	assert.LessOrEqual(t, result.RouteInfo.DistanceMiles, 2700)
	assert.Contains(t, result.Tips, "Check for one-way rental fees if applicable")
	assert.Contains(t, result.Tips, "Check the vehicle's comfort for long drives")
}
