package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Morton scrapes Konttiravintola Morton. The menu is one flat list where
// li.fdm-section-header carries the day in adessive form ("Torstaisin")
// and the following li siblings are dishes with separate title, price and
// description sub-elements. Morton publishes weekday lunches only, so the
// request is skipped entirely on weekends.
type Morton struct{}

func (Morton) Info() Info {
	return Info{
		Name:         "Konttiravintola Morton",
		Address:      "Ruoholahdenranta 8, 00180 Helsinki",
		Source:       "morton.fi",
		URL:          "https://morton.fi/lounas/",
		Hours:        "Ma-Pe 11:00-14:00",
		PriceInfo:    "Lounas 14,50 €",
		WeekdaysOnly: true,
	}
}

// mortonLunchPrice applies to every dish; the per-item price element on the
// page holds drink offers and other noise, so it is ignored.
const mortonLunchPrice = "14,50 €"

// mortonExcluded drops the permanent non-lunch rows from the list.
var mortonExcluded = []string{"Lasten lounas", "Juomatarjoukset"}

// mortonDietRe strips the dietary tags Morton appends to descriptions.
var mortonDietRe = regexp.MustCompile(
	`laktoositon|gluteeniton|vähälaktoosinen|saatavana vegaanisena|saatavana laktoosittomana|saatavana gluteenittomana \+\d+€`,
)

func (Morton) Parse(doc *goquery.Document, day Day) Parsed {
	if day.Weekend() {
		return Parsed{}
	}
	today := day.adessive()
	var items []MenuItem

	doc.Find("li.fdm-section-header").EachWithBreak(func(_ int, header *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(header.Text()), today) {
			return true
		}
		for sib := header.Next(); sib.Length() > 0; sib = sib.Next() {
			if !sib.Is("li") {
				continue
			}
			if sib.HasClass("fdm-section-header") {
				break
			}

			title := strings.TrimSpace(sib.Find(".fdm-item-title").First().Text())
			desc := strings.TrimSpace(sib.Find(".fdm-item-content").First().Text())
			if title == "" || containsAny(title, mortonExcluded...) {
				continue
			}

			food := title
			if desc != "" {
				food = title + " - " + desc
			}
			food = collapseSpace(mortonDietRe.ReplaceAllString(food, ""))
			items = append(items, MenuItem{Food: food, Price: mortonLunchPrice})
		}
		return false
	})

	return Parsed{Items: items}
}
