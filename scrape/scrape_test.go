package scrape

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// Fixed dates used across the adapter tests: the first week of February
// 2026 starts with Monday the 2nd.
var (
	testThursday = time.Date(2026, 2, 5, 11, 30, 0, 0, time.UTC)
	testSaturday = time.Date(2026, 2, 7, 11, 30, 0, 0, time.UTC)
)

// parseDoc builds a goquery document from a fixture string.
func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// fakeFetcher serves fixture documents by URL and counts calls, so tests
// can verify which pages were requested and how many times.
type fakeFetcher struct {
	calls   int
	lastURL string
	docs    map[string]*goquery.Document
}

func (f *fakeFetcher) Fetch(url string) *goquery.Document {
	f.calls++
	f.lastURL = url
	return f.docs[url]
}

// serviceAt builds a Service pinned to a fixed clock.
func serviceAt(f Fetcher, at time.Time) *Service {
	s := NewService(f)
	s.now = func() time.Time { return at }
	return s
}

// foods extracts just the dish names for compact assertions.
func foods(items []MenuItem) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.Food)
	}
	return out
}
