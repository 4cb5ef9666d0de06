// Package dateutils provides the date handling used throughout the
// application. Dates are stored and compared as ISO strings (YYYY-MM-DD),
// which sort correctly with plain string comparison.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	DateLayoutISO   = "2006-01-02"
	MonthLayoutISO  = "2006-01"
	DateLayoutSlash = "2006/01/02"
	DateLayoutEU    = "02.01.2006"
)

// CommonFormats is the list of layouts tried when parsing user-entered dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutSlash,
	DateLayoutEU,
	"02-01-2006",
	"02/01/2006",
}

// ParseDate attempts to parse a date string using the common layouts and
// returns the parsed time.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Today returns the current date as an ISO date string
func Today() string {
	return ToISODate(time.Now())
}

// MonthKey returns the YYYY-MM prefix of an ISO date string. Transactions are
// grouped by this key for monthly series and month filters.
func MonthKey(isoDate string) string {
	if len(isoDate) < len(MonthLayoutISO) {
		return isoDate
	}
	return isoDate[:len(MonthLayoutISO)]
}

// IsISODate reports whether s is a valid YYYY-MM-DD date
func IsISODate(s string) bool {
	_, err := time.Parse(DateLayoutISO, s)
	return err == nil
}

// IsMonthKey reports whether s is a valid YYYY-MM month
func IsMonthKey(s string) bool {
	_, err := time.Parse(MonthLayoutISO, s)
	return err == nil
}

// NormalizeISO parses a date in any of the common layouts and returns it as
// an ISO date string.
func NormalizeISO(dateStr string) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}

// DaysAgo returns the ISO date n days before today. Used by the demo seed.
func DaysAgo(n int) string {
	return ToISODate(time.Now().AddDate(0, 0, -n))
}
