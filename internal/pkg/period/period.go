// Package period resolves period selectors (month name, fiscal quarter,
// year, "all") into date scopes and handles working-day arithmetic.
package period

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidPeriod is returned when a selector matches no known period.
var ErrInvalidPeriod = errors.New("invalid period selector")

// SelectorAll selects the entire record set.
const SelectorAll = "all"

// MonthNames is the fixed calendar list selectors are matched against.
// Matching is exact and case-sensitive.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Fiscal quarters: the business year starts in April, so Q4 wraps into
// January-March.
var quarterMonths = map[string][]time.Month{
	"Q1": {time.April, time.May, time.June},
	"Q2": {time.July, time.August, time.September},
	"Q3": {time.October, time.November, time.December},
	"Q4": {time.January, time.February, time.March},
}

// Period is a resolved selector scope.
type Period struct {
	Selector string
	Label    string
	Year     int
	Months   []time.Month
	AllTime  bool
	FullYear bool
}

// Resolve maps a period selector plus a reference year onto a Period.
// Recognized selectors: "all", quarter codes Q1-Q4, the twelve English
// month names, and a literal year.
func Resolve(selector string, referenceYear int) (Period, error) {
	if selector == SelectorAll {
		return Period{
			Selector: selector,
			Label:    "All Time",
			Year:     referenceYear,
			AllTime:  true,
		}, nil
	}

	if months, ok := quarterMonths[selector]; ok {
		return Period{
			Selector: selector,
			Label:    selector,
			Year:     referenceYear,
			Months:   months,
		}, nil
	}

	for i, name := range MonthNames {
		if name == selector {
			return Period{
				Selector: selector,
				Label:    name,
				Year:     referenceYear,
				Months:   []time.Month{time.Month(i + 1)},
			}, nil
		}
	}

	if year, err := strconv.Atoi(selector); err == nil && year >= 1000 && year <= 9999 {
		return Period{
			Selector: selector,
			Label:    selector,
			Year:     year,
			FullYear: true,
		}, nil
	}

	return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, selector)
}

// Scoped reports whether the period narrows the record set at all.
// "all" and year periods pass records through unfiltered.
func (p Period) Scoped() bool {
	return !p.AllTime && !p.FullYear
}

// ContainsMonth reports whether a month label belongs to the period.
// Unscoped periods contain every label.
func (p Period) ContainsMonth(label string) bool {
	if !p.Scoped() {
		return true
	}
	for _, m := range p.Months {
		if MonthName(m) == label {
			return true
		}
	}
	return false
}

// ContainsDate reports whether a calendar date falls inside the period.
// Quarter membership is checked per month against the reference year, so
// Q4 (Jan-Mar) dates are expected in the reference year itself, not the
// year after.
func (p Period) ContainsDate(d time.Time) bool {
	if !p.Scoped() {
		return true
	}
	if d.Year() != p.Year {
		return false
	}
	for _, m := range p.Months {
		if d.Month() == m {
			return true
		}
	}
	return false
}

// Weekdays sums the working days of every month in the period.
// Zero for unscoped periods; callers anchor those to a reference month.
func (p Period) Weekdays() int {
	total := 0
	for _, m := range p.Months {
		total += CountWeekdays(p.Year, m)
	}
	return total
}

// CountWeekdays counts the Monday-Friday days of a calendar month.
// No holiday exclusion; leap years fall out of the calendar itself.
func CountWeekdays(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	count := 0
	for day := 0; day < daysInMonth; day++ {
		switch first.AddDate(0, 0, day).Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

// MonthName returns the canonical label for a calendar month.
func MonthName(m time.Month) string {
	return MonthNames[int(m)-1]
}

// ShortLabel formats a month for trend axes, e.g. "Jan '24".
func ShortLabel(month time.Month, year int) string {
	return fmt.Sprintf("%s '%02d", MonthName(month)[:3], year%100)
}
