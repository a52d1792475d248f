package scrape

import (
	"strings"
	"time"
)

// Day is a weekday with Monday as zero, matching the order the restaurant
// sites print their lunch lists in.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Finnish weekday names as the sites display them.
var dayNames = [7]string{
	"Maanantai", "Tiistai", "Keskiviikko", "Torstai", "Perjantai", "Lauantai", "Sunnuntai",
}

// Morton labels its menu sections with the adessive form ("torstaisin",
// roughly "on Thursdays") instead of the plain weekday name.
var dayAdessives = [5]string{
	"maanantaisin", "tiistaisin", "keskiviikkoisin", "torstaisin", "perjantaisin",
}

// DayOf maps a clock time to a Day. time.Weekday counts from Sunday; the
// lunch lists count from Monday.
func DayOf(t time.Time) Day {
	return Day((int(t.Weekday()) + 6) % 7)
}

// Name returns the Finnish display name, e.g. "Torstai".
func (d Day) Name() string { return dayNames[d] }

// Weekend reports whether d is Saturday or Sunday.
func (d Day) Weekend() bool { return d >= Saturday }

// lower returns the lowercased Finnish name used for case-insensitive
// matching inside adapters.
func (d Day) lower() string { return strings.ToLower(dayNames[d]) }

// upper returns the uppercased Finnish name; Pantry prints its day headings
// in caps.
func (d Day) upper() string { return strings.ToUpper(dayNames[d]) }

// adessive returns the "-sin" form for Monday through Friday. Morton is the
// only source using it, and only for weekdays.
func (d Day) adessive() string { return dayAdessives[d] }

// isOtherWeekday reports whether text equals the lowercased name of a
// Monday..Friday day other than d. Adapters use it as the capture boundary:
// the next weekday heading ends today's section.
func isOtherWeekday(text string, d Day) bool {
	for wd := Monday; wd <= Friday; wd++ {
		if wd != d && text == wd.lower() {
			return true
		}
	}
	return false
}
