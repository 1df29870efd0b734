package extractor

import (
	"regexp"

	"akaul/billsnap/internal/models"
	"akaul/billsnap/internal/textutils"
)

// vendorScanLines is how many leading lines are considered for the vendor
// name. Vendor names sit at the top of bills; anything deeper is noise.
const vendorScanLines = 5

var (
	dateOnlyRe = regexp.MustCompile(`^\d{1,4}[/\-.]\d{1,2}[/\-.]\d{1,4}$`)
	contactRe  = regexp.MustCompile(`(?i)\b(tel|phone|ph|fax|e-?mail|mob|mobile|website|www)\b|@|https?://`)
)

// identifyVendor returns the vendor name from recognized text: the first of
// the leading non-empty lines that is longer than two characters and is not
// a date, a number block, or a contact-info line. Falls back to the fixed
// placeholder when none of the first five lines qualify.
func identifyVendor(text string) string {
	lines := textutils.NonEmptyLines(text)
	if len(lines) > vendorScanLines {
		lines = lines[:vendorScanLines]
	}

	for _, line := range lines {
		if len([]rune(line)) <= 2 {
			continue
		}
		if dateOnlyRe.MatchString(line) {
			continue
		}
		if textutils.IsNumericPunct(line) {
			continue
		}
		if contactRe.MatchString(line) {
			continue
		}
		return line
	}

	return models.DefaultVendor
}
