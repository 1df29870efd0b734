// Package extracterror defines the error types surfaced around the
// extraction engine. Field extraction itself never fails; these errors
// cover the OCR boundary and the save-time validation of records.
package extracterror

import (
	"fmt"
	"strings"
)

// RecognitionError represents a failure of the external OCR engine.
// It is terminal for the current scan attempt: the extraction engine
// is never invoked and no partial record is produced.
type RecognitionError struct {
	Engine string
	Err    error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("%s: text recognition failed: %v", e.Engine, e.Err)
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}

// InvalidImageError represents an input file that cannot be submitted
// to the OCR engine.
type InvalidImageError struct {
	FilePath string
	Reason   string
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image file '%s': %s", e.FilePath, e.Reason)
}

// ValidationError represents a record that fails the save precondition
// (vendor, amount, and date must be non-empty).
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record is missing required fields: %s", strings.Join(e.Fields, ", "))
}
