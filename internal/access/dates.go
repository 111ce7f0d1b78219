package access

import "time"

// DefaultDateLayouts are the accepted expiry date formats, tried in priority
// order: ISO, day-first, US slash, year-first slash. The first layout that
// parses wins, which makes ambiguous inputs like "01/02/2030" deterministic.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseExpiryDate parses an expiry string against the ordered layout list.
// Returns ErrInvalidDateFormat when no layout matches.
func ParseExpiryDate(s string, layouts []string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

// dateOnly truncates a time to its calendar date so expiry comparisons
// ignore the time of day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
