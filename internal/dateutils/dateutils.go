// Package dateutils provides common date operations used throughout the
// application.
package dateutils

import (
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application.
const (
	DateLayoutISO = "2006-01-02"
	DateLayoutUS  = "01/02/2006"
)

// Clock supplies the current time. The extraction engine takes a Clock so
// tests can fix "now" and the date-fallback path stays deterministic.
type Clock func() time.Time

// SystemClock returns the wall-clock time.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Today formats the clock's current date in the US MM/DD/YYYY layout,
// the format the extraction engine synthesizes when no date is found.
func Today(clock Clock) string {
	if clock == nil {
		clock = SystemClock
	}
	return clock().Format(DateLayoutUS)
}

var multiSpaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return multiSpaceRe.ReplaceAllString(dateStr, " ")
}
