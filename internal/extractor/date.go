package extractor

import (
	"regexp"

	"akaul/billsnap/internal/dateutils"
	"akaul/billsnap/internal/textutils"
)

// Date syntax fragments. Numeric dates accept day/month in either order
// with /, -, or . separators and 2-4 digit years; no calendar validation is
// applied, a syntactically matching triplet is accepted verbatim.
const (
	numericDateFrag = `\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`
	isoDateFrag     = `\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2}`
	monthNameFrag   = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`
	monthFirstFrag  = monthNameFrag + `\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{2,4}`
	dayFirstFrag    = `\d{1,2}(?:st|nd|rd|th)?\s+` + monthNameFrag + `,?\s+\d{2,4}`
	anyDateFrag     = `(` + numericDateFrag + `|` + isoDateFrag + `|` + monthFirstFrag + `|` + dayFirstFrag + `)`
	dateLabelFrag   = `(?:invoice\s+date|bill\s+date|receipt\s+date|issued?(?:\s+on)?|date)`
)

// Labeled date patterns are tried before bare ones: a date next to a label
// is far more likely to be the bill date than an arbitrary date in the body.
var labeledDateCascade = Cascade{
	regexp.MustCompile(`(?i)` + dateLabelFrag + `\s*[:\-]?\s*` + anyDateFrag),
}

var bareDateCascade = Cascade{
	regexp.MustCompile(`(?i)\b(` + numericDateFrag + `)\b`),
	regexp.MustCompile(`(?i)\b(` + isoDateFrag + `)\b`),
	regexp.MustCompile(`(?i)\b(` + monthFirstFrag + `)`),
	regexp.MustCompile(`(?i)\b(` + dayFirstFrag + `)`),
}

// dateScanLines is how many leading lines the line-by-line fallback scans.
const dateScanLines = 10

// extractDate returns a date-like substring from the recognized text,
// or the clock's current date in MM/DD/YYYY format when nothing matches.
// Bill dates sit near the top, so the search covers the first third of the
// text, then the first ten lines individually.
func extractDate(text string, clock dateutils.Clock) string {
	region := firstThird(text)

	if date, ok := labeledDateCascade.FirstMatch(region); ok {
		return dateutils.CleanDateString(date)
	}
	if date, ok := bareDateCascade.FirstMatch(region); ok {
		return dateutils.CleanDateString(date)
	}

	lines := textutils.NonEmptyLines(text)
	if len(lines) > dateScanLines {
		lines = lines[:dateScanLines]
	}
	for _, line := range lines {
		if date, ok := labeledDateCascade.FirstMatch(line); ok {
			return dateutils.CleanDateString(date)
		}
	}
	for _, line := range lines {
		if date, ok := bareDateCascade.FirstMatch(line); ok {
			return dateutils.CleanDateString(date)
		}
	}

	return dateutils.Today(clock)
}
