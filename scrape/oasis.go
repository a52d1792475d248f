package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Oasis scrapes Ravintola Oasis on nordrest.fi. The lunch list normally
// uses h3.lunch-day-title headings, each followed by a ul.lunch-list of
// dishes. Some weeks the page is published as plain h3 day headings with
// free-form div blocks instead, so a fallback strategy covers that shape.
type Oasis struct{}

func (Oasis) Info() Info {
	return Info{
		Name:      "Ravintola Oasis",
		Address:   "Mechelininkatu 1a, 00180 Helsinki",
		Source:    "nordrest.fi",
		URL:       "https://nordrest.fi/restaurang/ravintola-oasis/",
		Hours:     "Ma-Pe lounas",
		PriceInfo: "Lounas 14 €",
	}
}

// oasisSplitRe anchors the fallback split on the phrases the page glues
// together into one text block.
var oasisSplitRe = regexp.MustCompile(`Päivän keitto:|Tarjoillaan `)

func (Oasis) Parse(doc *goquery.Document, day Day) Parsed {
	today := day.lower()
	var items []MenuItem

	doc.Find("h3.lunch-day-title").EachWithBreak(func(_ int, h3 *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(h3.Text()), today) {
			return true
		}
		ul := h3.NextAllFiltered("ul.lunch-list").First()
		ul.Find("li.lunch-item").Each(func(_ int, li *goquery.Selection) {
			if text := collapseSpace(li.Text()); longerThan(text, 3) {
				items = append(items, MenuItem{Food: text})
			}
		})
		return false
	})

	if len(items) > 0 {
		return Parsed{Items: items}
	}

	// Fallback: a plain h3 named exactly after the weekday, followed by
	// sibling blocks until the next weekday heading. The week banner line
	// ("Lounaslistaviikko ...") is not a dish.
	doc.Find("h3").EachWithBreak(func(_ int, h3 *goquery.Selection) bool {
		if strings.ToLower(collapseSpace(h3.Text())) != today {
			return true
		}
		for sib := h3.Next(); sib.Length() > 0; sib = sib.Next() {
			text := collapseSpace(sib.Text())
			if isOtherWeekday(strings.ToLower(text), day) {
				break
			}
			if !sib.Is("div") || !longerThan(text, 10) {
				continue
			}
			for _, part := range splitBefore(oasisSplitRe, text) {
				part = strings.TrimSpace(part)
				if longerThan(part, 5) && !strings.HasPrefix(part, "Lounaslistaviikko") {
					items = append(items, MenuItem{Food: part})
				}
			}
		}
		return false
	})

	return Parsed{Items: items}
}
