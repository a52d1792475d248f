package scrape

import (
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Several of the restaurant sites reject plain client identifiers, so every
// request carries this browser-like header set.
const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLanguage = "fi-FI,fi;q=0.9,en;q=0.8"
)

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 15 * time.Second

// Fetcher retrieves and parses a single HTML page. A nil document means the
// page could not be fetched; implementations log the cause and never return
// an error to the caller.
type Fetcher interface {
	Fetch(url string) *goquery.Document
}

// Client is the production Fetcher: one best-effort GET per call, no
// retries.
type Client struct {
	http *http.Client
}

// NewClient creates a Client with the given per-request timeout. A zero or
// negative timeout falls back to DefaultFetchTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the parsed document for url, or nil if the request failed,
// timed out, or answered with a non-2xx status. A missing page degrades to
// an empty menu upstream.
func (c *Client) Fetch(url string) *goquery.Document {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.Printf("WARN: Failed to build request for %s: %v", url, err)
		return nil
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("WARN: Fetch failed for %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("WARN: Fetch failed for %s: HTTP %s", url, resp.Status)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("WARN: Failed to parse HTML from %s: %v", url, err)
		return nil
	}
	return doc
}
