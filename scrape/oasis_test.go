package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oasisLunchListHTML = `
<div>
  <h3 class="lunch-day-title">Torstai 5.2.</h3>
  <ul class="lunch-list">
    <li class="lunch-item">Hernekeitto ja pannukakku</li>
    <li class="lunch-item">Broileria ja riisiä</li>
    <li class="lunch-item">ok</li>
  </ul>
  <h3 class="lunch-day-title">Perjantai 6.2.</h3>
  <ul class="lunch-list">
    <li class="lunch-item">Uunilohta</li>
  </ul>
</div>`

// TestOasisParse_LunchDayTitles covers the primary strategy: only the list
// under today's heading is read, and short fragments are dropped.
func TestOasisParse_LunchDayTitles(t *testing.T) {
	doc := parseDoc(t, oasisLunchListHTML)

	parsed := Oasis{}.Parse(doc, Thursday)

	assert.Equal(t, []string{
		"Hernekeitto ja pannukakku",
		"Broileria ja riisiä",
	}, foods(parsed.Items))
}

// TestOasisParse_BoundaryExcludesNextDay verifies Friday's list never leaks
// into Thursday's result.
func TestOasisParse_BoundaryExcludesNextDay(t *testing.T) {
	doc := parseDoc(t, oasisLunchListHTML)

	parsed := Oasis{}.Parse(doc, Thursday)

	assert.NotContains(t, foods(parsed.Items), "Uunilohta")
}

const oasisFallbackHTML = `
<div>
  <h3>Torstai</h3>
  <div>Lounaslistaviikko 6 Päivän keitto: Hernekeittoa Tarjoillaan leipää ja levitettä</div>
  <h3>Perjantai</h3>
  <div>Päivän keitto: Kalakeittoa ja ruisleipää</div>
</div>`

// TestOasisParse_FallbackHeadings covers the weeks when the page drops the
// lunch-day-title markup: plain h3 headings with free-form blocks, split on
// the known delimiter phrases, skipping the week banner.
func TestOasisParse_FallbackHeadings(t *testing.T) {
	doc := parseDoc(t, oasisFallbackHTML)

	parsed := Oasis{}.Parse(doc, Thursday)

	assert.Equal(t, []string{
		"Päivän keitto: Hernekeittoa",
		"Tarjoillaan leipää ja levitettä",
	}, foods(parsed.Items))
}

func TestOasisParse_FallbackRequiresExactHeading(t *testing.T) {
	doc := parseDoc(t, `
<div>
  <h3>Torstain tarjoukset</h3>
  <div>Päivän keitto: Hernekeittoa ja muuta hyvää</div>
</div>`)

	parsed := Oasis{}.Parse(doc, Thursday)

	assert.Empty(t, parsed.Items)
}

func TestOasisParse_EmptyDocument(t *testing.T) {
	doc := parseDoc(t, "<html><body></body></html>")

	parsed := Oasis{}.Parse(doc, Thursday)

	require.Empty(t, parsed.Items)
}
