package report

import (
	"time"

	"github.com/hisashi-abk/cafe-analytics/internal/domain/shared"
)

// DateLayout is the wire format for calendar dates in query
// parameters and report payloads.
const DateLayout = "2006-01-02"

// Granularity selects the reporting window size.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseDate parses a calendar date in DateLayout. Reports covering a
// whole day key off calendar dates, so time of day is discarded.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, shared.ErrInvalidDateFormat
	}
	return t, nil
}

// ParseOptionalDate parses an optional date filter bound. Empty or
// unparseable input yields nil, which leaves the bound open. Filter
// bounds are best-effort: a malformed bound is dropped rather than
// rejected.
func ParseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// DayBounds returns the anchor date itself as both bounds.
func DayBounds(anchor time.Time) (time.Time, time.Time) {
	d := truncateToDate(anchor)
	return d, d
}

// WeekBounds returns the Monday-through-Sunday week containing the
// anchor date.
func WeekBounds(anchor time.Time) (time.Time, time.Time) {
	d := truncateToDate(anchor)
	// Weekday is Sunday-based; shift so Monday is day zero.
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last calendar day of the month
// containing the anchor date.
func MonthBounds(anchor time.Time) (time.Time, time.Time) {
	d := truncateToDate(anchor)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	// Day 28 plus four days always lands in the next month
	// regardless of month length or leap years.
	nextMonth := start.AddDate(0, 0, 27+4)
	firstOfNext := time.Date(nextMonth.Year(), nextMonth.Month(), 1, 0, 0, 0, 0, d.Location())
	return start, firstOfNext.AddDate(0, 0, -1)
}

// PeriodBounds resolves the inclusive date window for the given
// granularity around the anchor date.
func PeriodBounds(g Granularity, anchor time.Time) (time.Time, time.Time) {
	switch g {
	case GranularityWeekly:
		return WeekBounds(anchor)
	case GranularityMonthly:
		return MonthBounds(anchor)
	default:
		return DayBounds(anchor)
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
