// Package scrape acquires and parses third-party rental markup. The two
// clients (plain fetch and browser automation) satisfy small interfaces so
// the orchestrator can run against test doubles.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Some providers serve an empty shell to non-browser user agents, so the
// plain fetcher identifies as one.
const fetchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// HTTPStatusError is returned when the remote server responds with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	Status     string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("http status response from %s: %s", e.URL, e.Status)
}

// FetchClient retrieves raw markup without JavaScript rendering.
type FetchClient interface {
	FetchMarkup(ctx context.Context, url string) (string, error)
}

type httpFetcher struct {
	client *http.Client
}

func NewFetchClient(timeout time.Duration) FetchClient {
	return &httpFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *httpFetcher) FetchMarkup(ctx context.Context, url string) (string, error) {
	log.Printf("GET %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch from %s: %w", url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close body: %v", err)
		}
	}()

	if resp.StatusCode > 299 {
		return "", &HTTPStatusError{URL: url, Status: resp.Status, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
