package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/godx"

	"car-rentals-api/internal"
	"car-rentals-api/internal/acquire"
	"car-rentals-api/internal/directory"
	"car-rentals-api/internal/geo"
	"car-rentals-api/internal/scrape"
)

// bootstrap initialises shared resources used by both the API server and
// the one-shot search command: configuration, the migrated database, and
// a fully wired acquisition chain.
func bootstrap(dbPath string) (*internal.Config, *acquire.Acquirer, internal.SearchHistoryRepository, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	godx.GitVersion()
	godx.EnvironmentVars()
	godx.UserInfo()

	cfg := internal.ConfigFromEnv()

	db, err := internal.Connect(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := internal.Migrate("migrations", dbPath); err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("failed to migrate SQL: %w", err)
	}

	repo := internal.NewSearchHistoryRepository(db)

	companies, err := directory.GetCompaniesMap()
	if err != nil {
		_ = repo.Close()
		return nil, nil, nil, fmt.Errorf("failed to load company directory: %w", err)
	}

	var browser scrape.BrowserClient
	if cfg.EnableBrowser {
		browser = scrape.NewBrowserClient(cfg.BrowserTimeout, scrape.KayakSelectors.Card)
	}

	var fetcher scrape.FetchClient
	if cfg.EnableFetch {
		fetcher = scrape.NewFetchClient(cfg.FetchTimeout)
	}

	estimator := geo.NewEstimator(geo.NewGeocoder(cfg.GeocoderBaseURL, cfg.GeocoderTimeout))
	extractor := scrape.NewExtractor(scrape.KayakSelectors, companies)

	acquirer := acquire.New(browser, fetcher, estimator, extractor, companies, cfg.ProviderBaseURL)

	return cfg, acquirer, repo, nil
}
