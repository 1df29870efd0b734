// Package store provides loading and saving of the category keyword table
// and vendor override rules from YAML files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"akaul/billsnap/internal/logging"
	"akaul/billsnap/internal/models"

	"gopkg.in/yaml.v3"
)

// File permissions for configuration files and directories.
const (
	permConfigFile = 0600
	permDirectory  = 0750
)

// ConfigStore manages loading and saving of extraction configuration data.
type ConfigStore struct {
	CategoriesFile string
	VendorsFile    string

	logger logging.Logger
}

// NewConfigStore creates a store for the category table and vendor rules.
func NewConfigStore(categoriesFile, vendorsFile string, logger logging.Logger) *ConfigStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ConfigStore{
		CategoriesFile: categoriesFile,
		VendorsFile:    vendorsFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *ConfigStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Check the user's home directory under .config/billsnap/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "billsnap", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the category keyword table from the YAML file.
// A missing file is not an error; the caller falls back to the built-in
// table.
func (s *ConfigStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Categories file not found, using built-in table",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	s.logger.Debug("Loaded categories",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(config.Categories)})

	return config.Categories, nil
}

// LoadVendorRules loads vendor override rule configuration from the YAML
// file. A missing file is not an error; the caller falls back to the
// built-in registry.
func (s *ConfigStore) LoadVendorRules() ([]models.VendorRuleConfig, error) {
	filename := s.VendorsFile
	if filename == "" {
		filename = "vendors.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Vendors file not found, using built-in rules",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return []models.VendorRuleConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving vendors file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading vendors file: %w", err)
	}

	var config models.VendorRulesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing vendors file: %w", err)
	}

	s.logger.Debug("Loaded vendor rules",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(config.Vendors)})

	return config.Vendors, nil
}

// SaveCategories writes the category keyword table back to its YAML file.
func (s *ConfigStore) SaveCategories(categories []models.CategoryConfig) error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, permDirectory); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(filename, data, permConfigFile); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	return nil
}
