package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mortonWeekHTML = `
<ul>
  <li class="fdm-section-header"><h3>Torstaisin</h3></li>
  <li class="fdm-item">
    <div class="fdm-item-title">Morton burgeri</div>
    <div class="fdm-item-price">14,50</div>
    <div class="fdm-item-content">talon majoneesi, laktoositon ranskalaiset</div>
  </li>
  <li class="fdm-item">
    <div class="fdm-item-title">Lasten lounas</div>
    <div class="fdm-item-content">pienempi annos päivän ruoasta</div>
  </li>
  <li class="fdm-item">
    <div class="fdm-item-title">Juomatarjoukset</div>
  </li>
  <li class="fdm-item">
    <div class="fdm-item-title">Halloumisalaatti</div>
  </li>
  <li class="fdm-section-header"><h3>Perjantaisin</h3></li>
  <li class="fdm-item">
    <div class="fdm-item-title">Paistettua kalaa</div>
  </li>
</ul>`

// TestMortonParse_SectionWalk verifies the adessive day match, the
// title/description composition, dietary-tag stripping, the excluded
// permanent rows, and the fixed lunch price.
func TestMortonParse_SectionWalk(t *testing.T) {
	doc := parseDoc(t, mortonWeekHTML)

	parsed := Morton{}.Parse(doc, Thursday)

	require.Len(t, parsed.Items, 2)
	assert.Equal(t, MenuItem{
		Food:  "Morton burgeri - talon majoneesi, ranskalaiset",
		Price: "14,50 €",
	}, parsed.Items[0])
	assert.Equal(t, MenuItem{Food: "Halloumisalaatti", Price: "14,50 €"}, parsed.Items[1])
}

func TestMortonParse_BoundaryExcludesNextSection(t *testing.T) {
	doc := parseDoc(t, mortonWeekHTML)

	parsed := Morton{}.Parse(doc, Thursday)

	assert.NotContains(t, foods(parsed.Items), "Paistettua kalaa")
}

func TestMortonParse_ExcludesChildrensLunchAndDrinkOffers(t *testing.T) {
	doc := parseDoc(t, mortonWeekHTML)

	for _, food := range foods(Morton{}.Parse(doc, Thursday).Items) {
		assert.NotContains(t, food, "Lasten lounas")
		assert.NotContains(t, food, "Juomatarjoukset")
	}
}

// TestMortonParse_WeekendReturnsNothing verifies the weekend guard runs
// before any selector work.
func TestMortonParse_WeekendReturnsNothing(t *testing.T) {
	doc := parseDoc(t, mortonWeekHTML)

	parsed := Morton{}.Parse(doc, Saturday)

	assert.Empty(t, parsed.Items)
}
