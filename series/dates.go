package series

import (
	"fmt"
	"time"
)

// dateFormats are attempted in order when parsing observed date labels.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// ParseDate parses a date label with the tolerant format list.
func ParseDate(label string) (time.Time, bool) {
	t, _, ok := parseDateLayout(label)

	return t, ok
}

func parseDateLayout(label string) (time.Time, string, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, label); err == nil {
			return t, layout, true
		}
	}

	return time.Time{}, "", false
}

// FutureDates returns n display labels stepping one calendar day at a
// time from lastDate, in the same layout as lastDate. When lastDate
// cannot be parsed, ordinal labels ("t+1", "t+2", ...) are returned so
// a display always has something to print.
func FutureDates(lastDate string, n int) []string {
	if n <= 0 {
		return []string{}
	}

	labels := make([]string, n)
	t, layout, ok := parseDateLayout(lastDate)
	if !ok {
		for i := range labels {
			labels[i] = fmt.Sprintf("t+%d", i+1)
		}

		return labels
	}

	for i := range labels {
		labels[i] = t.AddDate(0, 0, i+1).Format(layout)
	}

	return labels
}

// FutureDates returns n labels following the series' last observed
// date. An undated series yields ordinal labels.
func (s *Series) FutureDates(n int) []string {
	return FutureDates(s.LastDate(), n)
}
