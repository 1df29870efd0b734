package extractor

import (
	"regexp"
	"strings"
)

// Cascade is an ordered sequence of match attempts where the first
// successful match determines the result. The amount and date extractors
// share this combinator instead of duplicating sequential branch logic.
type Cascade []*regexp.Regexp

// FirstMatch applies each pattern in order and returns the first non-empty
// capture. Patterns without a capture group contribute their full match.
func (c Cascade) FirstMatch(text string) (string, bool) {
	for _, re := range c {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := m[0]
		if len(m) > 1 {
			val = m[1]
		}
		val = strings.TrimSpace(val)
		if val != "" {
			return val, true
		}
	}
	return "", false
}

// Matches reports whether any pattern in the cascade matches the text.
func (c Cascade) Matches(text string) bool {
	for _, re := range c {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Text regions. Totals cluster near the end of a bill, dates near the top,
// free-text descriptions in the middle, so each extractor restricts its
// search to the region where its field is positionally likely.

// lastQuarter returns the final quarter of the text by character span.
func lastQuarter(text string) string {
	runes := []rune(text)
	return string(runes[len(runes)*3/4:])
}

// firstThird returns the opening third of the text by character span.
func firstThird(text string) string {
	runes := []rune(text)
	return string(runes[:len(runes)/3])
}

// middleHalf returns the 25%-75% character span of the text.
func middleHalf(text string) string {
	runes := []rune(text)
	return string(runes[len(runes)/4 : len(runes)*3/4])
}
