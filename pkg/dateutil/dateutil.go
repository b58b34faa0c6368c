package dateutil

import (
	"time"
)

// MonthsPerYear is the number of payment periods in a year for monthly loans
const MonthsPerYear = 12

// DateLayout is the calendar date form used in batch files and reports
const DateLayout = "2006-01-02"

// SplitMonths splits a month count into whole years and remaining months
func SplitMonths(months int) (years, rem int) {
	return months / MonthsPerYear, months % MonthsPerYear
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// AddMonths adds a number of months to a date, clamping the day to the end
// of the target month (Jan 31 + 1 month = Feb 28/29). time.AddDate would
// normalize Feb 31 into March instead.
func AddMonths(date time.Time, months int) time.Time {
	total := int(date.Month()) - 1 + months
	year := date.Year() + total/MonthsPerYear
	m := total % MonthsPerYear
	if m < 0 {
		m += MonthsPerYear
		year--
	}
	month := time.Month(m + 1)
	day := date.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// DueDates returns n monthly due dates, the first one month after start.
// Each date is computed from start, so a clamped February does not drag
// later months to the 28th.
func DueDates(start time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = AddMonths(start, i+1)
	}
	return dates
}

// ParseDate parses a calendar date in YYYY-MM-DD form
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
