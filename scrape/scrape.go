// Package scrape extracts today's lunch menus from seven restaurants around
// Ruoholahdenkatu 21, each with its own undocumented HTML layout, and
// assembles them into one aggregate payload. Every source gets its own
// Adapter that knows how to locate "today" inside that site's markup; the
// Service runs them uniformly and tolerates per-source failure.
package scrape

import "github.com/PuerkitoBio/goquery"

// MenuItem is a single dish. Price is empty unless the source lists one
// inline or the adapter assigns a fixed tier.
type MenuItem struct {
	Food  string `json:"food"`
	Price string `json:"price"`
}

// Restaurant is one restaurant's result for today. It is always fully
// populated: when scraping fails, the static fields stay and Menu is an
// empty slice. A restaurant is never omitted from the payload.
type Restaurant struct {
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Source    string     `json:"source"`
	Menu      []MenuItem `json:"menu"`
	URL       string     `json:"url"`
	Hours     string     `json:"hours"`
	PriceInfo string     `json:"price_info"`
}

// Payload is the aggregate result of scraping every source once.
type Payload struct {
	Restaurants []Restaurant `json:"restaurants"`
	Date        string       `json:"date"`
	Weekday     string       `json:"weekday"`
	FetchTime   string       `json:"fetch_time"`
	Message     string       `json:"message,omitempty"`
}

// Info is the hard-coded metadata for one source. Addresses, opening hours
// and price levels change far less often than menu content, so scraping
// them would add fragility without value.
type Info struct {
	Name      string
	Address   string
	Source    string // domain label of the site the menu comes from
	URL       string // restaurant page shown to users
	MenuURL   string // page actually fetched; empty means URL
	Hours     string
	PriceInfo string

	// WeekdaysOnly sources publish no weekend data at all, so the request
	// is skipped entirely on Saturday and Sunday.
	WeekdaysOnly bool
}

func (in Info) menuURL() string {
	if in.MenuURL != "" {
		return in.MenuURL
	}
	return in.URL
}

// placeholder is the empty-menu result used whenever fetching or parsing
// fails.
func (in Info) placeholder() Restaurant {
	return Restaurant{
		Name:      in.Name,
		Address:   in.Address,
		Source:    in.Source,
		Menu:      []MenuItem{},
		URL:       in.URL,
		Hours:     in.Hours,
		PriceInfo: in.PriceInfo,
	}
}

// Parsed is what an adapter extracts from a fetched document.
type Parsed struct {
	Items []MenuItem

	// Hours overrides Info.Hours when the source publishes opening hours
	// (only the lounaat.info aggregator does).
	Hours string
}

// Adapter locates today's menu inside one source's markup. Parse must treat
// the document as hostile: missing nodes yield an empty item list, and any
// panic is recovered by the Service into a placeholder result.
type Adapter interface {
	Info() Info
	Parse(doc *goquery.Document, day Day) Parsed
}
