// Package models provides the data structures used throughout the application.
package models

// BillRecord is the structured output of the extraction engine.
// All five fields are always populated after extraction; only Amount
// may be the empty string.
type BillRecord struct {
	Vendor      string `csv:"Vendor" yaml:"vendor"`
	Amount      string `csv:"Amount" yaml:"amount"`
	Date        string `csv:"Date" yaml:"date"`
	Category    string `csv:"Category" yaml:"category"`
	Description string `csv:"Description" yaml:"description"`
}

// Category names form a closed set. CategoryOthers is the default when
// no classification signal exists.
const (
	CategoryUtilities      = "Utilities"
	CategoryOfficeSupplies = "Office Supplies"
	CategoryTravel         = "Travel"
	CategoryFoodDining     = "Food & Dining"
	CategoryShopping       = "Shopping"
	CategoryRentLease      = "Rent & Lease"
	CategoryInsurance      = "Insurance"
	CategoryServices       = "Services"
	CategoryOthers         = "Others"
)

// Defaults used by the extraction engine when a field cannot be matched.
const (
	DefaultVendor = "Unknown Vendor"

	// MaxDescriptionLen is the upper bound on the description field.
	MaxDescriptionLen = 100
)

// Categories returns the full category enumeration in declaration order.
// Declaration order matters: the classifier resolves keyword-count ties
// in favor of the earlier category.
func Categories() []string {
	return []string{
		CategoryUtilities,
		CategoryOfficeSupplies,
		CategoryTravel,
		CategoryFoodDining,
		CategoryShopping,
		CategoryRentLease,
		CategoryInsurance,
		CategoryServices,
		CategoryOthers,
	}
}

// IsValidCategory reports whether name is a member of the category enumeration.
func IsValidCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryConfig represents one category entry in the categories YAML file:
// a category name and the lowercase keywords that trigger it.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// VendorRuleConfig represents one vendor override rule in the vendors YAML
// file. A rule matches when every entry of MatchAll appears as a substring
// of the lower-cased recognized text. Empty override fields leave the
// generic extractor's output in place.
type VendorRuleConfig struct {
	Name        string   `yaml:"name"`
	MatchAll    []string `yaml:"match_all"`
	Vendor      string   `yaml:"vendor"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`

	// AmountPattern, when set, is a regular expression with one capture
	// group applied to the full text instead of the generic amount cascade.
	AmountPattern string `yaml:"amount_pattern"`
}

// VendorRulesConfig represents the structure of the vendors YAML file.
type VendorRulesConfig struct {
	Vendors []VendorRuleConfig `yaml:"vendors"`
}
