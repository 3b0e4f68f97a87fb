// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"mortgage-whatif/pkg/constants"
)

const (
	// DateTimeLayout is the output format for projected payoff dates.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// ProjectPayoffDate advances the given start date by the given number of
// months using month-offset arithmetic: months%12 is added to the calendar
// month and months/12 to the year, with a single rollover when the month
// exceeds December. Day-of-month is deliberately ignored; the projection is
// "same point in the month, N months later".
func ProjectPayoffDate(from time.Time, months int) string {
	month := int(from.Month()) + months%constants.MonthsPerYear
	year := from.Year() + months/constants.MonthsPerYear
	if month > constants.MonthsPerYear {
		month -= constants.MonthsPerYear
		year++
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}
