package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Pantry scrapes The Pantry Ruoholahti. An upper-case h3 names the day,
// h4 sub-headings name the category ("PÄIVÄN KASVIS", "PÄIVÄN KALA",
// "PÄIVÄN LIHA") and the next paragraph after each category describes the
// dish. Prices are not printed per dish; they follow the category tier.
type Pantry struct{}

func (Pantry) Info() Info {
	return Info{
		Name:      "The Pantry Ruoholahti",
		Address:   "Itämerenkatu 3, 00180 Helsinki",
		Source:    "thepantry.fi",
		URL:       "https://thepantry.fi/ruoholahti/",
		Hours:     "Ma-Pe 11:00-13:30",
		PriceInfo: "Kasvis 14 € / Kala-Liha 15 €",
	}
}

const (
	pantryVeggiePrice = "14 €"
	pantryMainPrice   = "15 €"
)

func (Pantry) Parse(doc *goquery.Document, day Day) Parsed {
	today := day.upper()
	var items []MenuItem
	foundToday := false

	// The "next paragraph" lookup crosses sibling boundaries on this page,
	// so the walk is index-based over all headings and paragraphs in
	// document order.
	var tags []*goquery.Selection
	doc.Find("h3, h4, p").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, s)
	})

loop:
	for i, tag := range tags {
		text := collapseSpace(tag.Text())
		upper := strings.ToUpper(text)

		if tag.Is("h3") {
			if strings.Contains(upper, today) {
				foundToday = true
				continue
			}
			if foundToday {
				for wd := Monday; wd <= Friday; wd++ {
					if wd != day && strings.Contains(upper, wd.upper()) {
						break loop
					}
				}
			}
			continue
		}

		if foundToday && tag.Is("h4") {
			category := text
			price := pantryMainPrice
			if strings.Contains(strings.ToUpper(category), "KASVIS") {
				price = pantryVeggiePrice
			}
			for _, next := range tags[i+1:] {
				if !next.Is("p") {
					continue
				}
				if food := collapseSpace(next.Text()); longerThan(food, 3) {
					items = append(items, MenuItem{
						Food:  category + ": " + food,
						Price: price,
					})
				}
				break
			}
		}
	}

	return Parsed{Items: items}
}
