package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// USLayout is the MM/DD/YYYY layout used on rental agreements
const USLayout = "01/02/2006"

// Date returns the calendar date y-m-d at midnight UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the calendar date of t at midnight UTC.
// The wall-clock date is kept regardless of t's location.
func StartOfDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// AddDays returns the date n calendar days after date
func AddDays(date time.Time, n int) time.Time {
	return StartOfDay(date).AddDate(0, 0, n)
}

// ISOWeekday returns the ISO weekday number: Monday=1 ... Sunday=7
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatUS formats date as MM/DD/YYYY
func FormatUS(date time.Time) string {
	return date.Format(USLayout)
}

// ParseDate parses a calendar date in one of the accepted layouts.
// Result is normalized to midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		USLayout,
		"2006-01-02",
		"02.01.2006",
		"1/2/2006",
	}

	dateStr = strings.TrimSpace(dateStr)
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q, expected MM/DD/YYYY", dateStr)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
