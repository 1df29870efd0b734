// Package currencyutils provides common currency and decimal operations
// used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyPrefixRe = regexp.MustCompile(`(?i)^(rs\.?|inr|usd|eur|gbp|chf)\s*`)
	currencySymbolRe = regexp.MustCompile(`[€$£¥₹₣\s]`)
)

// ParseAmount parses a string representation of an amount into a decimal
// value. It handles formats like "1,234.56", "1234.56", and "1234,56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a plain
// decimal string. Handles patterns like "$1,234.56", "₹ 1,234.56",
// "Rs. 500", and "1.234,56".
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = currencyPrefixRe.ReplaceAllString(amountStr, "")
	amountStr = currencySymbolRe.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma-grouped format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// FormatAmount formats a decimal amount with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// IsDecimalString reports whether s parses as a decimal amount after
// standardization.
func IsDecimalString(s string) bool {
	_, err := ParseAmount(s)
	return err == nil && strings.TrimSpace(s) != ""
}
