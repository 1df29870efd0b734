package extractor

import (
	"regexp"
	"strings"

	"akaul/billsnap/internal/models"
	"akaul/billsnap/internal/textutils"
)

// Labeled description fields, accepted when the captured value is longer
// than three characters.
var labeledDescriptionCascade = Cascade{
	regexp.MustCompile(`(?i)description\s*[:\-]\s*(.+)`),
	regexp.MustCompile(`(?i)\bitem\b\s*[:\-]\s*(.+)`),
	regexp.MustCompile(`(?i)\bmemo\b\s*[:\-]\s*(.+)`),
	regexp.MustCompile(`(?i)\bnote\b\s*[:\-]\s*(.+)`),
	regexp.MustCompile(`(?i)remarks?\s*[:\-]\s*(.+)`),
	regexp.MustCompile(`(?i)details?\s*[:\-]\s*(.+)`),
}

// Lines carrying totals or tax math are arithmetic, not description text.
var totalsKeywords = []string{"total", "subtotal", "sub-total", "tax", "gst", "vat", "discount"}

// extractDescription returns a description for the bill, at most 100
// characters. Labeled fields win; otherwise the middle half of the text is
// scanned for the first substantial free-text line; otherwise a placeholder
// naming the vendor is generated.
func extractDescription(text, vendor string) string {
	if desc, ok := labeledDescriptionCascade.FirstMatch(text); ok {
		desc = textutils.CollapseWhitespace(desc)
		if len([]rune(desc)) > 3 {
			return textutils.Truncate(desc, models.MaxDescriptionLen)
		}
	}

	for _, line := range textutils.NonEmptyLines(middleHalf(text)) {
		if len([]rune(line)) <= 5 {
			continue
		}
		if textutils.IsNumericPunct(line) {
			continue
		}
		if textutils.ContainsAny(strings.ToLower(line), totalsKeywords) {
			continue
		}
		return textutils.Truncate(textutils.CollapseWhitespace(line), models.MaxDescriptionLen)
	}

	return textutils.Truncate("Bill from "+vendor, models.MaxDescriptionLen)
}
