package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Halo scrapes HALO Food & Events. Day headings are paragraphs like
// "Torstai 5.2.". The weekday name alone is not enough because the page
// mentions weekdays in prose too, so both the anchor and the stop condition
// require a date pattern in the same paragraph.
type Halo struct{}

func (Halo) Info() Info {
	return Info{
		Name:      "HALO Food & Events",
		Address:   "Ruoholahdenkatu 21, 00180 Helsinki",
		Source:    "halorestaurant.fi",
		URL:       "https://halorestaurant.fi/lounas/",
		Hours:     "Ma-Pe 11:00-13:30",
		PriceInfo: "14 € / Love it 14,70 € / Keitto 12,90 €",
	}
}

func (Halo) Parse(doc *goquery.Document, day Day) Parsed {
	today := day.lower()
	var items []MenuItem
	capture := false

	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := collapseSpace(p.Text())
		if text == "" {
			return true
		}
		lower := strings.ToLower(text)

		if !capture {
			if strings.Contains(lower, today) && dateRe.MatchString(text) {
				capture = true
			}
			return true
		}

		// A different weekday with a date ("Perjantai 6.2.") starts the
		// next day's list.
		if dateRe.MatchString(text) {
			for wd := Monday; wd <= Friday; wd++ {
				if wd != day && strings.Contains(lower, wd.lower()) {
					return false
				}
			}
		}

		if longerThan(text, 5) {
			items = append(items, MenuItem{Food: text})
		}
		return true
	})

	return Parsed{Items: items}
}
