package extractor

import (
	"regexp"

	"akaul/billsnap/internal/textutils"
)

// Labeled-total patterns, ordered from most to least specific. Each accepts
// an optional currency marker between the label and the number. The capture
// keeps comma grouping as recognized; normalization happens downstream.
var labeledTotalCascade = Cascade{
	regexp.MustCompile(`(?i)grand\s*total\s*[:=]?\s*(?:[$₹€£]|rs\.?|inr)?\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)total\s*amount\s*[:=]?\s*(?:[$₹€£]|rs\.?|inr)?\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)amount\s*due\s*[:=]?\s*(?:[$₹€£]|rs\.?|inr)?\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)balance\s*(?:due)?\s*[:=]?\s*(?:[$₹€£]|rs\.?|inr)?\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)\btotal\b\s*[:=]?\s*(?:[$₹€£]|rs\.?|inr)?\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`),
	regexp.MustCompile(`(?i)\bsum\b\s*[:=]?\s*(?:[$₹€£]|rs\.?|inr)?\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`),
}

// Currency-prefixed decimals, tried when no labeled total matches.
var currencyAmountCascade = Cascade{
	regexp.MustCompile(`[$₹€£]\s*(\d(?:[\d,]*\d)?\.\d{1,2})`),
	regexp.MustCompile(`(?i)(?:rs\.?|inr)\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`),
}

var (
	lineCurrencyDecimalRe = regexp.MustCompile(`[$₹€£]\s*(\d+\.\d{1,2})`)
	bareDecimalRe         = regexp.MustCompile(`\b(\d+\.\d{1,2})\b`)
)

// amountTailLines is how many trailing lines the line-by-line fallback scans.
const amountTailLines = 5

// extractAmount returns a decimal-looking amount string or the empty string.
// The cascade never fabricates a number: labeled totals in the last quarter
// of the text win, then currency-prefixed decimals in the same region, then
// a line-by-line scan of the trailing lines.
func extractAmount(text string) string {
	region := lastQuarter(text)

	if amount, ok := labeledTotalCascade.FirstMatch(region); ok {
		return amount
	}

	if amount, ok := currencyAmountCascade.FirstMatch(region); ok {
		return amount
	}

	lines := textutils.NonEmptyLines(text)
	if len(lines) > amountTailLines {
		lines = lines[len(lines)-amountTailLines:]
	}

	// Prefer a currency-marked decimal on any of the trailing lines
	for _, line := range lines {
		if m := lineCurrencyDecimalRe.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}

	// Otherwise accept the first decimal-looking number
	for _, line := range lines {
		if m := bareDecimalRe.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}

	return ""
}
