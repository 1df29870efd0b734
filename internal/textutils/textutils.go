// Package textutils provides text manipulation helpers for recognized
// bill text.
package textutils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	numericPunctRe = regexp.MustCompile(`^[\d\s.,:;/\\#*$€£₹'-]+$`)
)

// NonEmptyLines splits text into lines, trims each, and drops empty ones.
func NonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// IsNumericPunct reports whether a line consists solely of digits,
// whitespace, and numeric or currency punctuation. Such lines carry no
// vendor or description signal.
func IsNumericPunct(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	return numericPunctRe.MatchString(s)
}

// ContainsAny reports whether s contains any of the given substrings.
// Matching is done on the string as passed; callers lower-case beforehand
// for case-insensitive checks.
func ContainsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether s contains every one of the given substrings.
func ContainsAll(s string, substrings []string) bool {
	for _, sub := range substrings {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return len(substrings) > 0
}

// Truncate shortens s to at most max characters. When s exceeds the limit
// the result is max-3 characters followed by "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
