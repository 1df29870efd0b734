// Package extractor turns raw recognized bill text into a structured
// BillRecord through cascading pattern matching, positional heuristics,
// keyword-frequency classification, and vendor-specific override rules.
//
// The pipeline is deterministic given the same input text and clock, and a
// single Engine is safe for concurrent use: the keyword table and override
// registry are read-only after construction.
package extractor

import (
	"strings"

	"akaul/billsnap/internal/dateutils"
	"akaul/billsnap/internal/logging"
	"akaul/billsnap/internal/models"
	"akaul/billsnap/internal/textutils"
)

// Engine is the extraction pipeline orchestrator.
type Engine struct {
	classifier *Classifier
	rules      []VendorRule
	clock      dateutils.Clock
	logger     logging.Logger
}

// NewEngine creates an extraction engine. A nil clock uses the system
// clock; an empty rule slice still runs the generic extractors; a nil
// logger uses the default.
func NewEngine(categories []models.CategoryConfig, rules []VendorRule, clock dateutils.Clock, logger logging.Logger) *Engine {
	if clock == nil {
		clock = dateutils.SystemClock
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		classifier: NewClassifier(categories),
		rules:      rules,
		clock:      clock,
		logger:     logger,
	}
}

// Extract runs the full pipeline over recognized text and returns a
// complete BillRecord. Extraction never fails: every field has a defined
// default, so ambiguous input degrades rather than errors.
func (e *Engine) Extract(text string) models.BillRecord {
	lower := strings.ToLower(text)

	var rule *VendorRule
	for i := range e.rules {
		if e.rules[i].Matches(lower) {
			rule = &e.rules[i]
			e.logger.Debug("Vendor override rule matched",
				logging.Field{Key: logging.FieldRule, Value: rule.Name})
			break
		}
	}

	record := models.BillRecord{
		Vendor: identifyVendor(text),
		Amount: extractAmount(text),
		Date:   extractDate(text, e.clock),
	}

	if rule != nil && rule.Vendor != "" {
		record.Vendor = rule.Vendor
	}
	if rule != nil && rule.Amount != nil {
		if amount, ok := rule.Amount(text); ok {
			record.Amount = amount
		}
	}

	if rule != nil && rule.Category != "" {
		record.Category = rule.Category
	} else {
		record.Category = e.classifier.Classify(text)
	}

	if rule != nil && rule.Description != "" {
		record.Description = textutils.Truncate(rule.Description, models.MaxDescriptionLen)
	} else {
		record.Description = extractDescription(text, record.Vendor)
	}

	e.logger.Debug("Extraction complete",
		logging.Field{Key: logging.FieldVendor, Value: record.Vendor},
		logging.Field{Key: logging.FieldCategory, Value: record.Category})

	return record
}

// ClassifyCategory classifies text without running the full pipeline.
func (e *Engine) ClassifyCategory(text string) string {
	return e.classifier.Classify(text)
}
