// Package acquire runs the source-fallback chain that turns a trip into a
// canonical result: browser automation first, plain fetch second, seeded
// synthetic generation as the terminal stage that cannot fail.
package acquire

import (
	"context"
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"car-rentals-api/internal/advice"
	"car-rentals-api/internal/directory"
	"car-rentals-api/internal/geo"
	"car-rentals-api/internal/models"
	"car-rentals-api/internal/scrape"
	"car-rentals-api/internal/searchurl"
)

// minLiveOptions is the acceptance bar for a live extraction; fewer cards
// means the page structure changed or only partially rendered.
const minLiveOptions = 3

// sameDayMaxMiles bounds one-way trips that may return the car the same
// day they picked it up.
const sameDayMaxMiles = 300

var acquisitionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "car_rentals_acquisitions_total",
		Help: "Completed acquisitions, partitioned by the source that produced the options.",
	},
	[]string{"source"},
)

func init() {
	prometheus.MustRegister(acquisitionsTotal)
}

// Acquirer coordinates the fallback chain. Browser and fetcher are
// optional: a nil collaborator means that stage is not configured and is
// skipped outright.
type Acquirer struct {
	browser   scrape.BrowserClient
	fetcher   scrape.FetchClient
	estimator *geo.Estimator
	extractor *scrape.Extractor
	companies directory.Companies
	baseURL   string
}

func New(
	browser scrape.BrowserClient,
	fetcher scrape.FetchClient,
	estimator *geo.Estimator,
	extractor *scrape.Extractor,
	companies directory.Companies,
	baseURL string,
) *Acquirer {
	if baseURL == "" {
		baseURL = searchurl.DefaultBaseURL
	}
	return &Acquirer{
		browser:   browser,
		fetcher:   fetcher,
		estimator: estimator,
		extractor: extractor,
		companies: companies,
		baseURL:   baseURL,
	}
}

// Acquire runs the full pipeline for one trip. Only malformed input is an
// error; every live-source failure is logged and absorbed by the next
// stage, so a valid trip always yields 3-5 options.
func (a *Acquirer) Acquire(ctx context.Context, trip models.Trip) (*models.AcquisitionResult, error) {
	if err := trip.Validate(); err != nil {
		return nil, err
	}

	route := a.estimator.Estimate(ctx, trip.Origin, trip.Destination, trip.RoundTrip)

	if !trip.RoundTrip && trip.ReturnDate.Equal(trip.PickupDate) && route.DistanceMiles > sameDayMaxMiles {
		return nil, &models.ValidationError{
			Message: fmt.Sprintf("same-day drop-off is only available for trips up to %d miles; this route is about %d miles", sameDayMaxMiles, route.DistanceMiles),
		}
	}

	url := searchurl.Build(a.baseURL, trip)

	options, source := a.acquireOptions(ctx, url)
	if len(options) < minLiveOptions {
		options = syntheticOptions(trip, route, a.companies)
		source = models.SourceSynthetic
	}

	// Post-processing normalization applies to every source: the day
	// count is authoritative for totals, and every option must link
	// somewhere.
	days := trip.RentalDays()
	for i := range options {
		options[i].TotalPrice = options[i].PricePerDay * days
		if options[i].Website == "" {
			options[i].Website = a.companies.WebsiteFor(options[i].Company)
		}
	}

	acquisitionsTotal.WithLabelValues(string(source)).Inc()

	return &models.AcquisitionResult{
		Source:    source,
		Options:   options,
		RouteInfo: route,
		Deals:     advice.Deals(trip, route),
		Tips:      advice.Tips(trip, route),
		URL:       url,
		RoundTrip: trip.RoundTrip,
	}, nil
}

// acquireOptions walks the live stages in priority order, one attempt
// each. An insufficient result (fewer than minLiveOptions cards) advances
// the chain exactly like a hard failure does.
func (a *Acquirer) acquireOptions(ctx context.Context, url string) ([]models.RentalOption, models.Source) {
	if a.browser != nil {
		markup, err := a.browser.BrowseMarkup(ctx, url)
		if err != nil {
			log.Printf("browser stage failed, falling back: %v", err)
		} else if options := a.extractor.Extract(markup); len(options) >= minLiveOptions {
			return options, models.SourceLiveBrowser
		} else {
			log.Printf("browser stage extracted %d options, need %d, falling back", len(options), minLiveOptions)
		}
	}

	if a.fetcher != nil {
		markup, err := a.fetcher.FetchMarkup(ctx, url)
		if err != nil {
			log.Printf("fetch stage failed, falling back: %v", err)
		} else if options := a.extractor.Extract(markup); len(options) >= minLiveOptions {
			return options, models.SourceLiveFetch
		} else {
			log.Printf("fetch stage extracted %d options, need %d, falling back", len(options), minLiveOptions)
		}
	}

	return nil, models.SourceSynthetic
}
