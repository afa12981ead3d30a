package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		day     time.Time
		label   string
		year    int
		quarter int
	}{
		{date(2024, time.January, 1), "2024Q1", 2024, 1},
		{date(2024, time.March, 31), "2024Q1", 2024, 1},
		{date(2024, time.April, 1), "2024Q2", 2024, 2},
		{date(2024, time.June, 30), "2024Q2", 2024, 2},
		{date(2024, time.July, 15), "2024Q3", 2024, 3},
		{date(2024, time.October, 1), "2024Q4", 2024, 4},
		{date(2024, time.December, 31), "2024Q4", 2024, 4},
		{date(2025, time.January, 1), "2025Q1", 2025, 1},
	}

	for _, tt := range tests {
		label, year, quarter := QuarterOf(tt.day)
		assert.Equal(t, tt.label, label)
		assert.Equal(t, tt.year, year)
		assert.Equal(t, tt.quarter, quarter)
	}
}

func TestQuarterOf_MonotonicWithinYear(t *testing.T) {
	prev := 0
	for d := date(2023, time.January, 1); d.Year() == 2023; d = d.AddDate(0, 0, 1) {
		_, _, q := QuarterOf(d)
		assert.GreaterOrEqual(t, q, 1)
		assert.LessOrEqual(t, q, 4)
		assert.GreaterOrEqual(t, q, prev)
		prev = q
	}

	_, _, q := QuarterOf(date(2024, time.January, 1))
	assert.Equal(t, 1, q)
}

func TestDateRangeFor_Quarterly(t *testing.T) {
	tests := []struct {
		year    int
		quarter int
		start   time.Time
		end     time.Time
	}{
		{2024, 1, date(2024, time.January, 1), date(2024, time.March, 31)},
		{2024, 2, date(2024, time.April, 1), date(2024, time.June, 30)},
		{2024, 3, date(2024, time.July, 1), date(2024, time.September, 30)},
		{2024, 4, date(2024, time.October, 1), date(2024, time.December, 31)},
		// February boundary, leap and non-leap.
		{2023, 1, date(2023, time.January, 1), date(2023, time.March, 31)},
	}

	for _, tt := range tests {
		start, end := DateRangeFor(PeriodQuarterly, tt.year, tt.quarter)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}

func TestDateRangeFor_QuarterlyDefaultsToCurrentQuarter(t *testing.T) {
	today := date(2024, time.August, 14)

	start, end := dateRangeAt(PeriodQuarterly, 0, 0, today)

	assert.Equal(t, date(2024, time.July, 1), start)
	assert.Equal(t, date(2024, time.September, 30), end)
}

func TestDateRangeFor_Annual(t *testing.T) {
	start, end := DateRangeFor(PeriodAnnual, 2023, 0)

	assert.Equal(t, date(2023, time.January, 1), start)
	assert.Equal(t, date(2023, time.December, 31), end)
}

func TestDateRangeFor_AnnualDefaultsToCurrentYear(t *testing.T) {
	today := date(2026, time.February, 2)

	start, end := dateRangeAt(PeriodAnnual, 0, 0, today)

	assert.Equal(t, date(2026, time.January, 1), start)
	assert.Equal(t, date(2026, time.December, 31), end)
}

func TestDateRangeFor_ToDate(t *testing.T) {
	today := date(2025, time.May, 20)

	start, end := dateRangeAt(PeriodToDate, 0, 0, today)

	assert.Equal(t, date(2000, time.January, 1), start)
	assert.Equal(t, today, end)
}

func TestDeriveAmount(t *testing.T) {
	entry := CostEntry{Hours: 3, RatePerHour: 15, Amount: 999}
	entry.DeriveAmount()
	assert.Equal(t, 45.0, entry.Amount)

	// Without both hours and rate, the given amount stands.
	entry = CostEntry{Amount: 50}
	entry.DeriveAmount()
	assert.Equal(t, 50.0, entry.Amount)

	entry = CostEntry{Hours: 3, Amount: 50}
	entry.DeriveAmount()
	assert.Equal(t, 50.0, entry.Amount)
}

func TestStampPeriod(t *testing.T) {
	e := Event{Date: date(2024, time.November, 5)}
	e.StampPeriod()

	assert.Equal(t, "2024Q4", e.Quarter)
	assert.Equal(t, 2024, e.Year)
}
