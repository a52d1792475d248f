package scrape

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Inline "13,70 €" style price tag, as embedded in running text by
	// Pompier and printed by several other sources.
	priceRe = regexp.MustCompile(`\d+[,.]\d{2}\s*€`)

	// Bare day-of-month pattern ("5.2") that HALO attaches to its weekday
	// headings. Required to tell a day heading apart from prose that merely
	// mentions a weekday.
	dateRe = regexp.MustCompile(`\d+\.\d+`)
)

// collapseSpace trims s and squeezes internal whitespace runs down to
// single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// containsAny reports whether s contains any of subs. Matching is
// case-sensitive; callers lowercase both sides when they need folding.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// longerThan reports whether s has more than n runes. Fragments at or below
// the threshold are discarded as noise.
func longerThan(s string, n int) bool {
	return utf8.RuneCountInString(s) > n
}

// splitBefore splits s at the start of every match of re, keeping the
// matched text, so each part after the first begins with a match. Go's
// regexp has no lookahead, so the split works on match positions.
func splitBefore(re *regexp.Regexp, s string) []string {
	locs := re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return []string{s}
	}

	var parts []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			parts = append(parts, s[prev:loc[0]])
		}
		prev = loc[0]
	}
	return append(parts, s[prev:])
}

// splitPrices splits running text on inline price tags and pairs each dish
// with the price that follows it. A trailing dish without a price keeps an
// empty price; fragments of three runes or fewer are dropped.
func splitPrices(text string) []MenuItem {
	var items []MenuItem

	prev := 0
	for _, loc := range priceRe.FindAllStringIndex(text, -1) {
		food := strings.TrimSpace(text[prev:loc[0]])
		if longerThan(food, 3) {
			items = append(items, MenuItem{
				Food:  food,
				Price: strings.TrimSpace(text[loc[0]:loc[1]]),
			})
		}
		prev = loc[1]
	}

	if tail := strings.TrimSpace(text[prev:]); longerThan(tail, 3) {
		items = append(items, MenuItem{Food: tail})
	}
	return items
}
