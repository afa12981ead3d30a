package domain

import (
	"fmt"
	"time"
)

// Reporting periods accepted by the dashboard.
const (
	PeriodQuarterly = "quarterly"
	PeriodAnnual    = "annual"
	PeriodToDate    = "to_date"
)

// epochFloor is the lower bound for to_date ranges; no records predate it.
var epochFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// QuarterOf maps a calendar date to its fiscal quarter.
// Q1 is January through March; the label reads "2024Q3".
func QuarterOf(d time.Time) (label string, year int, quarter int) {
	year = d.Year()
	quarter = (int(d.Month())-1)/3 + 1

	return fmt.Sprintf("%dQ%d", year, quarter), year, quarter
}

// DateRangeFor resolves a reporting period to an inclusive date range.
// A zero year or quarter falls back to the current date's.
func DateRangeFor(period string, year, quarter int) (start, end time.Time) {
	return dateRangeAt(period, year, quarter, time.Now().UTC())
}

func dateRangeAt(period string, year, quarter int, today time.Time) (start, end time.Time) {
	switch period {
	case PeriodQuarterly:
		if year == 0 || quarter == 0 {
			_, year, quarter = QuarterOf(today)
		}
		start = time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		if quarter == 4 {
			// December 31 directly; rolling over to month 13 day 0 is
			// where off-by-one bugs live.
			end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		} else {
			end = time.Date(year, time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		}
	case PeriodAnnual:
		if year == 0 {
			year = today.Year()
		}
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	default: // to_date
		start = epochFloor
		end = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	}

	return start, end
}
