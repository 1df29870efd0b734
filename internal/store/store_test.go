package store

import (
	"os"
	"path/filepath"
	"testing"

	"akaul/billsnap/internal/logging"
	"akaul/billsnap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestLoadCategories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	writeFile(t, path, `categories:
  - name: Utilities
    keywords:
      - electricity
      - water
  - name: Travel
    keywords:
      - flight
`)

	s := NewConfigStore(path, "", &logging.MockLogger{})
	categories, err := s.LoadCategories()
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Utilities", categories[0].Name)
	assert.Equal(t, []string{"electricity", "water"}, categories[0].Keywords)
	assert.Equal(t, "Travel", categories[1].Name)
}

func TestLoadCategoriesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	s := NewConfigStore(path, "", &logging.MockLogger{})
	categories, err := s.LoadCategories()

	require.NoError(t, err, "missing file falls back to the built-in table")
	assert.Empty(t, categories)
}

func TestLoadCategoriesMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	writeFile(t, path, "categories: [unterminated")

	s := NewConfigStore(path, "", &logging.MockLogger{})
	_, err := s.LoadCategories()
	assert.Error(t, err)
}

func TestLoadVendorRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendors.yaml")
	writeFile(t, path, `vendors:
  - name: coffee-chain
    match_all:
      - bean there
      - espresso
    vendor: Bean There
    category: Food & Dining
    description: Coffee at Bean There
    amount_pattern: 'total\s*(\d+\.\d{2})'
`)

	s := NewConfigStore("", path, &logging.MockLogger{})
	rules, err := s.LoadVendorRules()
	require.NoError(t, err)

	require.Len(t, rules, 1)
	assert.Equal(t, "coffee-chain", rules[0].Name)
	assert.Equal(t, []string{"bean there", "espresso"}, rules[0].MatchAll)
	assert.Equal(t, "Bean There", rules[0].Vendor)
	assert.Equal(t, models.CategoryFoodDining, rules[0].Category)
	assert.NotEmpty(t, rules[0].AmountPattern)
}

func TestLoadVendorRulesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	s := NewConfigStore("", path, &logging.MockLogger{})
	rules, err := s.LoadVendorRules()

	require.NoError(t, err, "missing file falls back to the built-in rules")
	assert.Empty(t, rules)
}

func TestSaveCategoriesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "categories.yaml")

	s := NewConfigStore(path, "", &logging.MockLogger{})
	in := []models.CategoryConfig{
		{Name: "Utilities", Keywords: []string{"electricity"}},
		{Name: "Pets", Keywords: []string{"veterinary", "kennel"}},
	}
	require.NoError(t, s.SaveCategories(in))

	out, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.yaml")
	writeFile(t, path, "ok: true\n")

	s := NewConfigStore("", "", &logging.MockLogger{})

	found, err := s.FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = s.FindConfigFile(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
