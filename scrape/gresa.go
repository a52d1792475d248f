package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Gresa scrapes Gresa on nordrest.fi. The whole week is one flat run of p
// tags: a paragraph holding exactly the weekday name, then one paragraph
// per dish until the next weekday paragraph. Every dish is repeated as an
// English translation; those lines are dropped.
type Gresa struct{}

func (Gresa) Info() Info {
	return Info{
		Name:      "Gresa",
		Address:   "Itämerenkatu 1, 00180 Helsinki",
		Source:    "nordrest.fi",
		URL:       "https://nordrest.fi/restaurang/gresa/",
		Hours:     "Ma-Pe 10:45-13:45",
		PriceInfo: "Lounas 13,70 €",
	}
}

// gresaEnglishHints mark the English translation lines on the page.
var gresaEnglishHints = []string{" and ", " with ", "served with", "potato mash", "fried "}

// gresaMaxItems caps capture per day so a malformed page cannot swallow the
// rest of the week.
const gresaMaxItems = 6

func (Gresa) Parse(doc *goquery.Document, day Day) Parsed {
	today := day.lower()
	var items []MenuItem
	capture := false

	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := collapseSpace(p.Text())
		lower := strings.ToLower(text)

		if !capture {
			// The anchor must be an exact weekday match; "Torstai" appears
			// in too many unrelated paragraphs to match on substrings here.
			if lower == today {
				capture = true
			}
			return true
		}

		if isOtherWeekday(lower, day) {
			return false
		}
		if !longerThan(text, 2) || containsAny(lower, gresaEnglishHints...) {
			return true
		}

		items = append(items, MenuItem{Food: text})
		return len(items) < gresaMaxItems
	})

	return Parsed{Items: items}
}
