// ABOUTME: Calendar date parsing and range validation for query parameters.
// ABOUTME: All dates are ISO-8601 calendar dates (YYYY-MM-DD).
package garmin

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted by every query.
const DateLayout = "2006-01-02"

// defaultRangeDays is the trailing window used when no activity or weight
// range is given.
const defaultRangeDays = 30

// ParseDate parses an ISO calendar date. An empty string defaults to today.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format(DateLayout), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", validationErr("invalid date %q, want YYYY-MM-DD", s)
	}
	return t.Format(DateLayout), nil
}

// ParseRange parses a start/end date pair. Both empty defaults to the
// trailing 30 days ending today. A start without an end is a single-day
// range. Start after end fails validation.
func ParseRange(start, end string) (string, string, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	if start == "" && end == "" {
		now := time.Now()
		return now.AddDate(0, 0, -defaultRangeDays).Format(DateLayout),
			now.Format(DateLayout), nil
	}
	if start == "" {
		return "", "", validationErr("date range requires a start date")
	}
	if end == "" {
		end = start
	}

	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return "", "", validationErr("invalid start date %q, want YYYY-MM-DD", start)
	}
	to, err := time.Parse(DateLayout, end)
	if err != nil {
		return "", "", validationErr("invalid end date %q, want YYYY-MM-DD", end)
	}
	if from.After(to) {
		return "", "", validationErr("start date %s is after end date %s", start, end)
	}
	return from.Format(DateLayout), to.Format(DateLayout), nil
}
