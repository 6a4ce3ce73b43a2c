package scrape

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// BrowserClient retrieves markup after JavaScript rendering.
type BrowserClient interface {
	BrowseMarkup(ctx context.Context, url string) (string, error)
}

type chromeBrowser struct {
	timeout      time.Duration
	waitSelector string
}

// NewBrowserClient builds a headless-Chrome client. waitSelector, when
// non-empty, is the element the page must render before markup is
// captured; rendering continues on a best-effort basis if it never shows.
func NewBrowserClient(timeout time.Duration, waitSelector string) BrowserClient {
	return &chromeBrowser{
		timeout:      timeout,
		waitSelector: waitSelector,
	}
}

func (b *chromeBrowser) BrowseMarkup(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(fetchUserAgent),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	runCtx, cancelTimeout := context.WithTimeout(browserCtx, b.timeout)
	defer cancelTimeout()

	log.Printf("browsing %s", url)
	if err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(4*time.Second), // give JS time to render
	); err != nil {
		return "", fmt.Errorf("navigation to %s failed: %w", url, err)
	}

	if b.waitSelector != "" {
		if err := chromedp.Run(runCtx, chromedp.WaitVisible(b.waitSelector, chromedp.ByQuery)); err != nil {
			log.Printf("timed out waiting for %q, capturing markup anyway: %v", b.waitSelector, err)
		}
	}

	var markup string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &markup, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("markup capture from %s failed: %w", url, err)
	}
	return markup, nil
}
