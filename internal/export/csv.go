// Package export writes extracted bill records to a CSV ledger.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"akaul/billsnap/internal/currencyutils"
	"akaul/billsnap/internal/logging"
	"akaul/billsnap/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// Row is one CSV ledger row: a record identifier, the extracted fields as
// recognized, and a normalized amount column for downstream arithmetic.
type Row struct {
	ID               string `csv:"ID"`
	Vendor           string `csv:"Vendor"`
	Amount           string `csv:"Amount"`
	NormalizedAmount string `csv:"NormalizedAmount"`
	Date             string `csv:"Date"`
	Category         string `csv:"Category"`
	Description      string `csv:"Description"`
}

// Writer writes bill records to CSV files.
type Writer struct {
	delimiter rune
	logger    logging.Logger
}

// NewWriter creates a CSV writer with the given delimiter.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Writer{delimiter: delimiter, logger: logger}
}

// WriteRecords writes records to csvFile, creating parent directories as
// needed. Each record gets a fresh UUID and a normalized amount column;
// records whose amount does not parse keep an empty normalized column.
func (w *Writer) WriteRecords(records []models.BillRecord, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	w.logger.Info("Writing bill records to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, toRow(record))
	}

	writer := csv.NewWriter(file)
	writer.Comma = w.delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	return nil
}

// ReadRows reads a previously written ledger back into rows.
func (w *Writer) ReadRows(csvFile string) ([]Row, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = w.delimiter

	var rows []Row
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return rows, nil
}

func toRow(record models.BillRecord) Row {
	row := Row{
		ID:          uuid.NewString(),
		Vendor:      record.Vendor,
		Amount:      record.Amount,
		Date:        record.Date,
		Category:    record.Category,
		Description: record.Description,
	}

	if record.Amount != "" {
		if amount, err := currencyutils.ParseAmount(record.Amount); err == nil {
			row.NormalizedAmount = currencyutils.FormatAmount(amount)
		}
	}

	return row
}
