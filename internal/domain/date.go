// ABOUTME: Calendar date helpers for dream dates
// ABOUTME: Dates are stored as YYYY-MM-DD strings
package domain

import "time"

// DateLayout is the calendar date format of Entry.Date.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidDate reports whether s is a real YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
