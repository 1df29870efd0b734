// Package scan implements the scan command: image in, bill record out.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"akaul/billsnap/cmd/root"
	"akaul/billsnap/internal/extracterror"
	"akaul/billsnap/internal/models"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the scan command.
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Recognize a bill image and extract its fields",
	Long: `Scan submits a bill image to the OCR engine, runs the extraction
pipeline over the recognized text, and prints the resulting record.
With --output the record is written to a CSV ledger after validation.`,
	RunE: scanFunc,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func init() {
	Cmd.Flags().StringVarP(&root.Language, "language", "l", "", "Language code for recognition (default from config)")
}

func scanFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input image file is required (use -i)")
	}

	engine := root.App.OCREngine()
	if engine == nil {
		return fmt.Errorf("no OCR engine configured: set GEMINI_API_KEY")
	}

	ext := strings.ToLower(filepath.Ext(root.SharedFlags.Input))
	if !imageExtensions[ext] {
		return &extracterror.InvalidImageError{
			FilePath: root.SharedFlags.Input,
			Reason:   fmt.Sprintf("unsupported file type %q", ext),
		}
	}

	image, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return fmt.Errorf("reading image file: %w", err)
	}

	language := root.Language
	if language == "" {
		language = root.App.Config().OCR.Language
	}

	text, err := engine.Recognize(cmd.Context(), image, language)
	if err != nil {
		// Recognition failure is terminal: the extraction engine is
		// never invoked and no partial record is produced.
		return err
	}

	record := root.App.Engine().Extract(text)
	printRecord(record)

	if root.SharedFlags.Output == "" {
		return nil
	}

	if err := models.Validate(record); err != nil {
		return fmt.Errorf("record not saved: %w", err)
	}
	return root.App.CSVWriter().WriteRecords([]models.BillRecord{record}, root.SharedFlags.Output)
}

func printRecord(record models.BillRecord) {
	out, err := yaml.Marshal(record)
	if err != nil {
		root.Log.WithError(err).Error("Failed to render record")
		return
	}
	fmt.Print(string(out))
}
