package extractor

import (
	"strings"

	"akaul/billsnap/internal/models"
)

// Classifier assigns a category by keyword frequency: the category whose
// keywords occur most often as substrings of the lower-cased text wins.
// Ties resolve to the earlier declared category; zero matches yield Others.
//
// The table is injected read-only configuration; the classifier never
// mutates it, so a single Classifier is safe for concurrent use.
type Classifier struct {
	categories []models.CategoryConfig
}

// NewClassifier creates a Classifier over the given keyword table.
// An empty table falls back to the built-in default table.
func NewClassifier(categories []models.CategoryConfig) *Classifier {
	if len(categories) == 0 {
		categories = DefaultCategoryTable()
	}
	return &Classifier{categories: categories}
}

// Classify returns exactly one category name for the text.
func (c *Classifier) Classify(text string) string {
	lower := strings.ToLower(text)

	best := models.CategoryOthers
	bestCount := 0
	for _, category := range c.categories {
		count := 0
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = category.Name
		}
	}

	return best
}

// DefaultCategoryTable returns the built-in category keyword table.
// Keywords are lowercase; declaration order is the tie-break order.
func DefaultCategoryTable() []models.CategoryConfig {
	return []models.CategoryConfig{
		{
			Name: models.CategoryUtilities,
			Keywords: []string{
				"electricity", "electric", "power", "energy", "water",
				"gas", "internet", "broadband", "telephone", "utility",
				"sewage", "kwh", "meter reading",
			},
		},
		{
			Name: models.CategoryOfficeSupplies,
			Keywords: []string{
				"stationery", "stationary", "paper", "printer", "toner",
				"cartridge", "ink", "office supplies", "pens", "notebook",
			},
		},
		{
			Name: models.CategoryTravel,
			Keywords: []string{
				"flight", "airline", "airways", "hotel", "taxi", "cab",
				"uber", "train", "railway", "bus ticket", "travel",
				"lodging", "fare", "boarding",
			},
		},
		{
			Name: models.CategoryFoodDining,
			Keywords: []string{
				"restaurant", "cafe", "coffee", "food", "dining", "pizza",
				"burger", "meal", "dhaba", "kitchen", "bakery", "biryani",
				"thali", "beverage",
			},
		},
		{
			Name: models.CategoryShopping,
			Keywords: []string{
				"store", "mart", "retail", "supermarket", "mall",
				"clothing", "apparel", "footwear", "electronics",
				"bazaar", "bazar",
			},
		},
		{
			Name: models.CategoryRentLease,
			Keywords: []string{
				"rent", "lease", "landlord", "tenant", "tenancy",
				"security deposit",
			},
		},
		{
			Name: models.CategoryInsurance,
			Keywords: []string{
				"insurance", "premium", "policy", "coverage", "assurance",
				"insured",
			},
		},
		{
			Name: models.CategoryServices,
			Keywords: []string{
				"service", "repair", "maintenance", "consulting",
				"cleaning", "subscription", "salon", "laundry",
				"installation",
			},
		},
	}
}
