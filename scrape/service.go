package scrape

import (
	"log"
	"time"
)

// WeekendMessage replaces restaurant data on Saturdays and Sundays, when
// none of the sources serve lunch.
const WeekendMessage = "Viikonloppuna ei lounaslistoja saatavilla. Tule takaisin maanantaina!"

// Adapters returns the seven source adapters in their fixed serving order.
func Adapters() []Adapter {
	return []Adapter{
		Oasis{},
		Gresa{},
		Halo{},
		Morton{},
		Pantry{},
		Pompier{},
		Salve{},
	}
}

// Service runs every adapter against a shared Fetcher and assembles the
// aggregate payload. It holds no mutable state between calls; each FetchAll
// is a pure function of the fetched documents and the current date.
type Service struct {
	fetcher  Fetcher
	adapters []Adapter
	now      func() time.Time
}

// NewService creates a Service over the default adapter set.
func NewService(f Fetcher) *Service {
	return &Service{
		fetcher:  f,
		adapters: Adapters(),
		now:      time.Now,
	}
}

// FetchAll scrapes today's menu from every source sequentially. On
// weekends it returns immediately with an empty restaurant list and
// WeekendMessage, without a single HTTP request. On weekdays Message stays
// empty no matter how many sources fail: a failing source keeps its place
// in the list as a placeholder with an empty menu.
func (s *Service) FetchAll() Payload {
	now := s.now()
	day := DayOf(now)

	payload := Payload{
		Restaurants: []Restaurant{},
		Date:        now.Format("02.01.2006"),
		Weekday:     day.Name(),
		FetchTime:   now.Format("15:04"),
	}

	if day.Weekend() {
		payload.Message = WeekendMessage
		return payload
	}

	for _, a := range s.adapters {
		payload.Restaurants = append(payload.Restaurants, s.scrapeOne(a, day))
	}
	return payload
}

// scrapeOne runs a single adapter, degrading every failure mode (skipped
// request, missing page, parse panic) to the placeholder result.
func (s *Service) scrapeOne(a Adapter, day Day) (res Restaurant) {
	info := a.Info()
	res = info.placeholder()

	if info.WeekdaysOnly && day.Weekend() {
		return res
	}

	doc := s.fetcher.Fetch(info.menuURL())
	if doc == nil {
		return res
	}

	// One malformed page must never take down the whole payload.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: %s parse failed: %v", info.Name, r)
			res = info.placeholder()
		}
	}()

	parsed := a.Parse(doc, day)
	if parsed.Hours != "" {
		res.Hours = parsed.Hours
	}
	if len(parsed.Items) == 0 {
		log.Printf("INFO: %s: no menu found for %s", info.Name, day.Name())
		return res
	}

	res.Menu = parsed.Items
	return res
}
