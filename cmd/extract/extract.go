// Package extract implements the extract command: recognized text in,
// bill record out. Useful when OCR output is already available.
package extract

import (
	"fmt"
	"os"

	"akaul/billsnap/cmd/root"
	"akaul/billsnap/internal/models"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract bill fields from a recognized-text file",
	Long: `Extract runs the extraction pipeline over a plain-text file of
recognized bill text and prints the resulting record. With --output the
record is written to a CSV ledger after validation.`,
	RunE: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input text file is required (use -i)")
	}

	data, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return fmt.Errorf("reading text file: %w", err)
	}

	record := root.App.Engine().Extract(string(data))

	out, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("rendering record: %w", err)
	}
	fmt.Print(string(out))

	if root.SharedFlags.Output == "" {
		return nil
	}

	if err := models.Validate(record); err != nil {
		return fmt.Errorf("record not saved: %w", err)
	}
	return root.App.CSVWriter().WriteRecords([]models.BillRecord{record}, root.SharedFlags.Output)
}
