// Package cache holds the one process-wide response slot. Scraping all
// seven sources sequentially is slow, so the assembled payload is reused
// for a TTL, and refreshes are serialized with singleflight so that
// concurrent misses share a single scrape instead of racing.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/evirtanen/lunchfeed/scrape"
)

// DefaultTTL is how long a payload is served before a rescrape.
const DefaultTTL = 30 * time.Minute

// Store is a single-slot TTL cache over a load function.
type Store struct {
	load func() scrape.Payload
	ttl  time.Duration
	now  func() time.Time
	sf   singleflight.Group

	mu        sync.Mutex
	payload   *scrape.Payload
	refreshed time.Time
}

// New creates a Store over load. A zero or negative ttl falls back to
// DefaultTTL.
func New(load func() scrape.Payload, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		load: load,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the cached payload, loading a fresh one when the slot is
// empty or older than the TTL. The slot lock is not held during the load;
// singleflight keeps duplicate loads from stacking up instead.
func (s *Store) Get() scrape.Payload {
	s.mu.Lock()
	if s.payload != nil && s.now().Sub(s.refreshed) < s.ttl {
		p := *s.payload
		s.mu.Unlock()
		return p
	}
	s.mu.Unlock()

	v, _, _ := s.sf.Do("payload", func() (any, error) {
		// Re-check under the flight: a caller that lost the race to a
		// just-finished refresh should reuse it, not scrape again.
		s.mu.Lock()
		if s.payload != nil && s.now().Sub(s.refreshed) < s.ttl {
			p := *s.payload
			s.mu.Unlock()
			return p, nil
		}
		s.mu.Unlock()

		p := s.load()
		s.mu.Lock()
		s.payload = &p
		s.refreshed = s.now()
		s.mu.Unlock()
		return p, nil
	})
	return v.(scrape.Payload)
}

// Invalidate empties the slot so the next Get loads fresh data.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.payload = nil
	s.mu.Unlock()
}
