// Package dates provides calendar month arithmetic for schedule labels.
package dates

import "time"

// MonthLayout is the wire format for schedule start months.
const MonthLayout = "2006-01"

// AddMonths advances a (year, month) label by n months, rolling over year
// boundaries. It works on the label directly rather than time.AddDate so
// day-of-month normalization can never shift the result.
func AddMonths(year int, month time.Month, n int) (time.Month, int) {
	total := year*12 + int(month) - 1 + n
	return time.Month(total%12 + 1), total / 12
}

// ParseMonth parses a "YYYY-MM" start month.
func ParseMonth(value string) (time.Time, error) {
	return time.Parse(MonthLayout, value)
}
