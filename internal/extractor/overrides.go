package extractor

import (
	"regexp"
	"strings"

	"akaul/billsnap/internal/logging"
	"akaul/billsnap/internal/models"
	"akaul/billsnap/internal/textutils"
)

// VendorRule is a predicate-guarded bundle of specialized field values and
// extractors that preempts generic extraction for documents recognized as
// belonging to a known vendor family. Rules are evaluated in registration
// order against the lower-cased full text; the first match wins. Zero-value
// fields leave the generic extractor's output in place.
type VendorRule struct {
	Name        string
	Match       func(lowerText string) bool
	Vendor      string
	Category    string
	Description string

	// Amount, when set, replaces the generic amount cascade. Returning
	// ok=false falls back to the generic cascade.
	Amount func(text string) (string, bool)
}

// Matches reports whether the rule's predicate accepts the lower-cased text.
func (r VendorRule) Matches(lowerText string) bool {
	return r.Match != nil && r.Match(lowerText)
}

// allOf builds a predicate that requires every substring to be present.
func allOf(substrings ...string) func(string) bool {
	return func(lowerText string) bool {
		return textutils.ContainsAll(lowerText, substrings)
	}
}

// amountPattern builds an amount extractor from a single-capture regexp.
func amountPattern(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return m[1], true
		}
		return "", false
	}
}

// DefaultVendorRules returns the built-in override registry. Generic
// heuristics are weak for these document families, so each entry encodes
// family-specific knowledge as data.
func DefaultVendorRules() []VendorRule {
	return []VendorRule{
		{
			// Itemized restaurant receipts: the grand total includes
			// service charge and GST, which the generic labeled cascade
			// would miss in favor of the bare item total.
			Name:        "sukhdev-vaishno-dhaba",
			Match:       allOf("sukhdev", "vaishno", "dhaba"),
			Vendor:      "Sukhdev Vaishno Dhaba",
			Category:    models.CategoryFoodDining,
			Description: "Meal at Sukhdev Vaishno Dhaba",
			Amount: amountPattern(regexp.MustCompile(
				`(?i)grand\s*total\s*[:=]?\s*(?:rs\.?|₹|inr)?\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`)),
		},
		{
			// DMart receipts print the tax-inclusive total under a
			// distinctive label and never carry a usable header line.
			Name:        "dmart",
			Match:       allOf("dmart", "avenue supermarts"),
			Vendor:      "DMart",
			Category:    models.CategoryShopping,
			Description: "Grocery and household purchase at DMart",
			Amount: amountPattern(regexp.MustCompile(
				`(?i)t[o0]tal\s*(?:amount)?\s*[:=]?\s*(?:rs\.?|₹)?\s*(\d(?:[\d,]*\d)?(?:\.\d{1,2})?)`)),
		},
		{
			Name:        "big-bazaar",
			Match:       allOf("big bazaar"),
			Vendor:      "Big Bazaar",
			Category:    models.CategoryShopping,
			Description: "Retail purchase at Big Bazaar",
		},
	}
}

// RulesFromConfig builds override rules from YAML configuration entries,
// appended after the built-in registry. Entries with no match terms are
// skipped; an invalid amount pattern drops only the amount extractor.
func RulesFromConfig(configs []models.VendorRuleConfig, logger logging.Logger) []VendorRule {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var rules []VendorRule
	for _, cfg := range configs {
		if len(cfg.MatchAll) == 0 {
			logger.Warn("Skipping vendor rule without match terms",
				logging.Field{Key: logging.FieldRule, Value: cfg.Name})
			continue
		}

		terms := make([]string, len(cfg.MatchAll))
		for i, t := range cfg.MatchAll {
			terms[i] = strings.ToLower(t)
		}

		rule := VendorRule{
			Name:        cfg.Name,
			Match:       allOf(terms...),
			Vendor:      cfg.Vendor,
			Category:    cfg.Category,
			Description: cfg.Description,
		}

		if cfg.AmountPattern != "" {
			re, err := regexp.Compile(cfg.AmountPattern)
			if err != nil {
				logger.WithError(err).Warn("Skipping invalid amount pattern in vendor rule",
					logging.Field{Key: logging.FieldRule, Value: cfg.Name})
			} else {
				rule.Amount = amountPattern(re)
			}
		}

		rules = append(rules, rule)
	}
	return rules
}
