package validation

import (
	"fmt"
	"strconv"
	"time"
)

// clockLayouts are the ISO 8601 time-of-day forms accepted after the date,
// tried in order. Layouts without a zone parse as UTC. Fractional seconds are
// accepted after the seconds field even though the layouts do not name them.
var clockLayouts = []string{
	"15:04:05Z07:00",
	"15:04:05Z0700",
	"15:04:05Z07",
	"15:04:05",
	"15:04Z07:00",
	"15:04Z0700",
	"15:04Z07",
	"15:04",
	"150405Z07:00",
	"150405Z0700",
	"150405Z07",
	"150405",
	"1504Z07:00",
	"1504Z0700",
	"1504Z07",
	"1504",
	"15Z07:00",
	"15Z0700",
	"15Z07",
	"15",
}

// ParseTimestamp parses an ISO 8601 date or date-time. Calendar dates
// (2006-01-02, 20060102) and ISO week dates (2006-W01-1, 2006W011, 2006-W01)
// are accepted, optionally followed by "T" or a space and a time of day with
// hour, minute or second precision. Timestamps without an offset are taken as
// UTC.
func ParseTimestamp(s string) (time.Time, error) {
	date, n, ok := parseDate(s)
	if !ok {
		return time.Time{}, fmt.Errorf("not an ISO 8601 timestamp: %q", s)
	}
	rest := s[n:]
	if rest == "" {
		return date, nil
	}
	if (rest[0] != 'T' && rest[0] != ' ') || len(rest) == 1 {
		return time.Time{}, fmt.Errorf("not an ISO 8601 timestamp: %q", s)
	}
	for _, layout := range clockLayouts {
		clock, err := time.Parse(layout, rest[1:])
		if err != nil {
			continue
		}
		return time.Date(date.Year(), date.Month(), date.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), clock.Location()), nil
	}
	return time.Time{}, fmt.Errorf("not an ISO 8601 timestamp: %q", s)
}

// parseDate reads the date at the start of s and reports how many bytes it
// consumed. The returned date is midnight UTC.
func parseDate(s string) (time.Time, int, bool) {
	if len(s) < 7 || !allDigits(s[:4]) {
		return time.Time{}, 0, false
	}
	switch {
	case s[4] == '-' && s[5] == 'W':
		if len(s) < 8 {
			return time.Time{}, 0, false
		}
		// 2006-W01-1 or 2006-W01
		if len(s) >= 10 && s[8] == '-' {
			return weekDate(s[:4], s[6:8], s[9:10], 10)
		}
		return weekDate(s[:4], s[6:8], "1", 8)
	case s[4] == 'W':
		// 2006W011 or 2006W01
		if len(s) >= 8 && allDigits(s[7:8]) {
			return weekDate(s[:4], s[5:7], s[7:8], 8)
		}
		return weekDate(s[:4], s[5:7], "1", 7)
	case s[4] == '-':
		if len(s) < 10 {
			return time.Time{}, 0, false
		}
		ts, err := time.Parse(time.DateOnly, s[:10])
		return ts, 10, err == nil
	default:
		if len(s) < 8 || !allDigits(s[:8]) {
			return time.Time{}, 0, false
		}
		ts, err := time.Parse("20060102", s[:8])
		return ts, 8, err == nil
	}
}

// weekDate resolves an ISO week date. Week 1 is the week holding January 4th
// and weeks start on Monday (day 1).
func weekDate(year, week, day string, n int) (time.Time, int, bool) {
	if !allDigits(year) || !allDigits(week) || !allDigits(day) {
		return time.Time{}, 0, false
	}
	y, _ := strconv.Atoi(year)
	w, _ := strconv.Atoi(week)
	d, _ := strconv.Atoi(day)
	if _, last := time.Date(y, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek(); w < 1 || w > last || d < 1 || d > 7 {
		return time.Time{}, 0, false
	}
	jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	monday := jan4.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, (w-1)*7+d-1), n, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
