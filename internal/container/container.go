// Package container provides dependency injection for the billsnap
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"akaul/billsnap/internal/config"
	"akaul/billsnap/internal/dateutils"
	"akaul/billsnap/internal/export"
	"akaul/billsnap/internal/extractor"
	"akaul/billsnap/internal/logging"
	"akaul/billsnap/internal/ocr"
	"akaul/billsnap/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation: fields are private and accessed through getters, preventing
// accidental modification after initialization.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *store.ConfigStore
	ocrEngine ocr.Engine
	engine    *extractor.Engine
	csvWriter *export.Writer
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first, everything else logs through it
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	configStore := store.NewConfigStore(cfg.Files.Categories, cfg.Files.Vendors, logger)

	categories, err := configStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	ruleConfigs, err := configStore.LoadVendorRules()
	if err != nil {
		return nil, fmt.Errorf("loading vendor rules: %w", err)
	}
	rules := extractor.DefaultVendorRules()
	rules = append(rules, extractor.RulesFromConfig(ruleConfigs, logger)...)

	engine := extractor.NewEngine(categories, rules, dateutils.SystemClock, logger)

	var ocrEngine ocr.Engine
	if cfg.OCR.APIKey != "" {
		ocrEngine, err = ocr.NewGeminiEngine(
			cfg.OCR.APIKey,
			cfg.OCR.Model,
			time.Duration(cfg.OCR.TimeoutSeconds)*time.Second,
			logger,
		)
		if err != nil {
			return nil, fmt.Errorf("creating OCR engine client: %w", err)
		}
	} else {
		logger.Warn("No OCR API key configured; scan command is unavailable")
	}

	delimiter := ','
	if cfg.CSV.Delimiter != "" {
		delimiter = []rune(cfg.CSV.Delimiter)[0]
	}
	csvWriter := export.NewWriter(delimiter, logger)

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     configStore,
		ocrEngine: ocrEngine,
		engine:    engine,
		csvWriter: csvWriter,
	}, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger {
	return c.logger
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Store returns the configuration store.
func (c *Container) Store() *store.ConfigStore {
	return c.store
}

// OCREngine returns the OCR engine client, or nil when none is configured.
func (c *Container) OCREngine() ocr.Engine {
	return c.ocrEngine
}

// Engine returns the extraction engine.
func (c *Container) Engine() *extractor.Engine {
	return c.engine
}

// CSVWriter returns the CSV ledger writer.
func (c *Container) CSVWriter() *export.Writer {
	return c.csvWriter
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.ocrEngine != nil {
		return c.ocrEngine.Close()
	}
	return nil
}
