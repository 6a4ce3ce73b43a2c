package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMarkup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fetchUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "text/html", r.Header.Get("Accept"))

		switch r.URL.Path {
		case "/cars/ok":
			_, _ = w.Write([]byte("<html><body>results</body></html>"))
		case "/cars/blocked":
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	fetcher := NewFetchClient(5 * time.Second)

	t.Run("returns markup", func(t *testing.T) {
		markup, err := fetcher.FetchMarkup(context.Background(), server.URL+"/cars/ok")
		require.NoError(t, err)
		assert.Contains(t, markup, "results")
	})

	t.Run("non-2xx surfaces as HTTPStatusError", func(t *testing.T) {
		_, err := fetcher.FetchMarkup(context.Background(), server.URL+"/cars/blocked")

		var statusErr *HTTPStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	})

	t.Run("context cancellation aborts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.FetchMarkup(ctx, server.URL+"/cars/ok")
		assert.Error(t, err)
	})
}
