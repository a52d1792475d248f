package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Salve has no scrapeable lunch page of its own, so it comes from the
// lounaat.info aggregator, which lists every restaurant near Ruoholahdenkatu
// 21 with today's menu only. The adapter filters the listing down to the
// entry whose name contains "Salve" before reading its items; each item is
// a price/dish/info triple of paragraphs.
type Salve struct{}

func (Salve) Info() Info {
	return Info{
		Name:    "Salve",
		Address: "Hietalahdenranta 5, 00120 Helsinki",
		Source:  "lounaat.info",
		URL:     "https://ravintolasalve.fi",
		MenuURL: "https://www.lounaat.info/ruoholahdenkatu-21-helsinki",
		Hours:   "Ma-Pe 11:00-14:00",
		// Salve publishes no flat lunch price; PriceInfo stays empty and
		// prices come per item from the aggregator.
	}
}

func (Salve) Parse(doc *goquery.Document, _ Day) Parsed {
	var parsed Parsed

	doc.Find(".menu").EachWithBreak(func(_ int, entry *goquery.Selection) bool {
		name := entry.Find(".item-header h3 a").First()
		if name.Length() == 0 || !strings.Contains(strings.ToLower(name.Text()), "salve") {
			return true
		}

		entry.Find(".item-body .menu-item").Each(func(_ int, li *goquery.Selection) {
			price := strings.TrimSpace(li.Find("p.price").First().Text())
			dish := strings.TrimSpace(li.Find("p.dish").First().Text())
			info := collapseSpace(li.Find("p.info").First().Text())

			food := strings.TrimSpace(dish + " " + info)
			if longerThan(food, 3) {
				parsed.Items = append(parsed.Items, MenuItem{Food: food, Price: price})
			}
		})

		// The aggregator shows current opening hours; prefer them over the
		// hard-coded fallback when present.
		if hours := strings.TrimSpace(entry.Find(".item-header p.lunch").First().Text()); hours != "" {
			parsed.Hours = hours
		}
		return false
	})

	return parsed
}
