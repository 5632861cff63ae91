package util

import (
	"time"
)

// NotAvailable is rendered in place of missing identifiers and dates.
const NotAvailable = "N/A"

const (
	displayDateLayout = "1/2/2006"
	displayTimeLayout = "03:04 PM"
)

// DisplayDate renders t the way the dashboard shows dates (M/D/YYYY) in loc.
func DisplayDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return NotAvailable
	}
	return t.In(orUTC(loc)).Format(displayDateLayout)
}

// DisplayTime renders t as a two-digit hour and minute clock time in loc.
func DisplayTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return NotAvailable
	}
	return t.In(orUTC(loc)).Format(displayTimeLayout)
}

// ParseDisplayDate parses a string produced by DisplayDate back into a date at
// local midnight in loc.
func ParseDisplayDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(displayDateLayout, s, orUTC(loc))
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
