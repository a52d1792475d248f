package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Pompier scrapes Pompier Albertinkatu. Each day is an accordion panel:
// the button label carries the weekday and date, and the panel body is one
// text blob with prices embedded inline. Only the matching day's panel is
// read, so no separate stop condition is needed; the blob is split into
// dish/price pairs on the price pattern.
type Pompier struct{}

func (Pompier) Info() Info {
	return Info{
		Name:      "Pompier Albertinkatu",
		Address:   "Albertinkatu 29, 00180 Helsinki",
		Source:    "pompier.fi",
		URL:       "https://pompier.fi/albertinkatu/albertinkatu-menu/",
		Hours:     "Ma-Pe 10:45-14:00",
		PriceInfo: "Lounas 14,50 € / Kaikki 19 €",
	}
}

func (Pompier) Parse(doc *goquery.Document, day Day) Parsed {
	today := day.lower()
	var items []MenuItem

	doc.Find("div.fl-accordion-item").EachWithBreak(func(_ int, panel *goquery.Selection) bool {
		label := panel.Find(".fl-accordion-button-label").First()
		content := panel.Find(".fl-accordion-content").First()
		if label.Length() == 0 || content.Length() == 0 {
			return true
		}
		if !strings.Contains(strings.ToLower(label.Text()), today) {
			return true
		}
		items = splitPrices(collapseSpace(content.Text()))
		return false
	})

	return Parsed{Items: items}
}
