package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldComponent  = "component"
	FieldVendor     = "vendor"
	FieldCategory   = "category"
	FieldRule       = "rule"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldLanguage   = "language"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
