package models

import (
	"strings"

	"akaul/billsnap/internal/extracterror"
)

// Validate checks the save precondition for a bill record: vendor, amount,
// and date must be non-empty. The extraction engine itself never enforces
// this; it is applied by the surface that persists the record.
func Validate(record BillRecord) error {
	var missing []string

	if strings.TrimSpace(record.Vendor) == "" {
		missing = append(missing, "vendor")
	}
	if strings.TrimSpace(record.Amount) == "" {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(record.Date) == "" {
		missing = append(missing, "date")
	}

	if len(missing) > 0 {
		return &extracterror.ValidationError{Fields: missing}
	}
	return nil
}
